package allocator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mamchoi/internal/randutil"
)

func TestPrioritize(t *testing.T) {
	p := Prioritize([]string{"a", "b", "", "c", "a", " ", "d"}, []string{"b", "d", "zz"})
	assert.Equal(t, []string{"a", "c", "b", "d"}, p.Icons)
	assert.Equal(t, 2, p.Fresh)
}

func TestSelectCandidates_PrefersUnused(t *testing.T) {
	pool := Prioritize([]string{"a", "b", "c", "d", "e"}, nil)
	round := randutil.NewSet("a", "b")
	mode := randutil.NewSet("c")

	got := SelectCandidates(randutil.New(1), pool, round, mode, 2)
	assert.ElementsMatch(t, []string{"d", "e"}, got)
}

func TestSelectCandidates_RelaxesModeThenRound(t *testing.T) {
	pool := Prioritize([]string{"a", "b", "c", "d"}, nil)
	round := randutil.NewSet("a", "b")
	mode := randutil.NewSet("a", "c")

	// d is unused everywhere, b is only used this round, a and c are used
	// by the mode.
	got := SelectCandidates(randutil.New(2), pool, round, mode, 2)
	assert.ElementsMatch(t, []string{"d", "b"}, got)

	got = SelectCandidates(randutil.New(2), pool, round, mode, 4)
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got)
}

func TestSelectCandidates_Exclude(t *testing.T) {
	pool := Prioritize([]string{"a", "b", "c"}, nil)
	for seed := range uint64(20) {
		got := SelectCandidates(randutil.New(seed), pool, nil, nil, 3, "b")
		require.Len(t, got, 2)
		assert.NotContains(t, got, "b")
	}
}

func TestSelectCandidates_PrefersFresh(t *testing.T) {
	pool := Prioritize([]string{"a", "b", "c", "d"}, []string{"a", "b"})
	for seed := range uint64(20) {
		got := SelectCandidates(randutil.New(seed), pool, nil, nil, 2)
		assert.ElementsMatch(t, []string{"c", "d"}, got)
	}
}

func TestSelectCandidates_Empty(t *testing.T) {
	assert.Empty(t, SelectCandidates(randutil.New(1), Pool{}, nil, nil, 3))
	assert.Nil(t, SelectCandidates(randutil.New(1), Prioritize([]string{"a"}, nil), nil, nil, 0))
}
