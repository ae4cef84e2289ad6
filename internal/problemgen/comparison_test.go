package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mamchoi/internal/question"
)

func TestShouldForceEquals(t *testing.T) {
	tests := []struct {
		equals       int
		last         bool
		index, total int
		want         bool
	}{
		{0, false, 0, 25, false},
		{0, false, 20, 25, true},
		{0, false, 19, 25, false},
		{1, false, 22, 25, true},
		{2, false, 24, 25, true},
		{2, true, 24, 25, false},
		{3, false, 24, 25, false},
	}
	for _, tc := range tests {
		got := shouldForceEquals(tc.equals, tc.last, tc.index, tc.total)
		if got != tc.want {
			t.Errorf("shouldForceEquals(%d, %v, %d, %d) = %v, want %v",
				tc.equals, tc.last, tc.index, tc.total, got, tc.want)
		}
	}
}

func comparisons(answers ...question.Relation) []*question.ComparisonQuestion {
	out := make([]*question.ComparisonQuestion, len(answers))
	for i, a := range answers {
		out[i] = &question.ComparisonQuestion{Answer: a}
	}
	return out
}

func answersOf(qs []*question.ComparisonQuestion) []question.Relation {
	out := make([]question.Relation, len(qs))
	for i, q := range qs {
		out[i] = q.Answer
	}
	return out
}

func TestSpaceEquals(t *testing.T) {
	eq, lt, gt := question.Equal, question.Less, question.Greater

	qs := comparisons(eq, eq, eq, lt, gt, lt)
	spaceEquals(qs)
	assert.Equal(t, []question.Relation{eq, lt, eq, gt, eq, lt}, answersOf(qs))

	// Trailing pair with nothing after it borrows from the front.
	qs = comparisons(lt, gt, eq, eq)
	spaceEquals(qs)
	assertNoAdjacentEquals(t, answersOf(qs))

	// Impossible layouts are left alone without looping forever.
	qs = comparisons(eq, eq, eq)
	spaceEquals(qs)
	assert.Equal(t, []question.Relation{eq, eq, eq}, answersOf(qs))
}

func assertNoAdjacentEquals(t *testing.T, rs []question.Relation) {
	t.Helper()
	for i := 1; i < len(rs); i++ {
		if rs[i] == question.Equal && rs[i-1] == question.Equal {
			t.Fatalf("adjacent = at %d in %v", i, rs)
		}
	}
}

func TestGenerateComparisonBatch_Choi(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rc := newContext(seed, question.DifficultyChoi)
		qs := GenerateComparisonBatch(rc, 25)
		require.Len(t, qs, 25)

		answers := answersOf(qs)
		equals := 0
		for _, q := range qs {
			assert.Equal(t, question.Compare(q.Number1, q.Number2), q.Answer)
			assert.GreaterOrEqual(t, q.Number1, 1)
			assert.LessOrEqual(t, q.Number1, 20)
			if q.Answer == question.Equal {
				equals++
			}
		}
		assert.GreaterOrEqual(t, equals, MinEqualsPerRound)
		assertNoAdjacentEquals(t, answers)
	}
}

func TestComparisonRound_ShortRoundsReachEqualsQuota(t *testing.T) {
	for _, d := range question.AllDifficulties {
		for count := 1; count <= 25; count++ {
			for seed := uint64(1); seed <= 10; seed++ {
				rc := newContext(seed, d)
				var answers []question.Relation
				if d == question.DifficultyChoi {
					answers = answersOf(GenerateComparisonBatch(rc, count))
				} else {
					for _, q := range fillRound(rc, question.ModeComparison, count) {
						answers = append(answers, q.(*question.ComparisonQuestion).Answer)
					}
				}
				require.Len(t, answers, count, "%s count=%d seed=%d", d, count, seed)

				equals := 0
				for _, a := range answers {
					if a == question.Equal {
						equals++
					}
				}
				want := min(MinEqualsPerRound, (count+1)/2)
				assert.GreaterOrEqual(t, equals, want, "%s count=%d seed=%d: %v", d, count, seed, answers)
				assertNoAdjacentEquals(t, answers)
			}
		}
	}
}

func TestGenerateComparison_MamQuota(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		rc := newContext(seed, question.DifficultyMam)
		qs := fillRound(rc, question.ModeComparison, 20)
		require.Len(t, qs, 20)

		var answers []question.Relation
		equals := 0
		for _, q := range qs {
			c := q.(*question.ComparisonQuestion)
			assert.LessOrEqual(t, c.Number1, 10)
			assert.LessOrEqual(t, c.Number2, 10)
			answers = append(answers, c.Answer)
			if c.Answer == question.Equal {
				equals++
			}
		}
		assert.GreaterOrEqual(t, equals, MinEqualsPerRound)
		assertNoAdjacentEquals(t, answers)
	}
}

func TestClaimComparison_Mirror(t *testing.T) {
	rc := newContext(1, question.DifficultyMam)
	require.True(t, rc.claimComparison(3, 7))
	assert.False(t, rc.claimComparison(7, 3))
	assert.True(t, rc.claimComparison(4, 4))
	assert.False(t, rc.claimComparison(4, 4))
}
