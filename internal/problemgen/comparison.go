package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const comparisonPrompt = "Chọn dấu thích hợp (<, >, =):"

// MinEqualsPerRound is the number of "=" answers a comparison round aims for.
const MinEqualsPerRound = 3

func comparisonSignature(a, b int) string {
	return fmt.Sprintf("comp-%dvs%d", a, b)
}

// claimComparison registers a pair and its mirror. It fails when the
// ordered pair was seen before.
func (rc *RoundContext) claimComparison(a, b int) bool {
	if !rc.Signatures.Claim(comparisonSignature(a, b)) {
		return false
	}
	if a != b {
		rc.Signatures.Add(comparisonSignature(b, a))
	}
	return true
}

func (rc *RoundContext) newComparison(a, b int) *question.ComparisonQuestion {
	return &question.ComparisonQuestion{
		Base:    rc.header(question.ModeComparison, comparisonPrompt, comparisonSignature(a, b)),
		Number1: a,
		Number2: b,
		Answer:  question.Compare(a, b),
	}
}

// noteComparison updates the "=" quota after a comparison is accepted.
func (rc *RoundContext) noteComparison(q *question.ComparisonQuestion) {
	if q.Answer == question.Equal {
		rc.equalsGenerated++
		rc.lastWasEquals = true
		return
	}
	rc.lastWasEquals = false
}

// shouldForceEquals reports whether slot index of total must be "=" to
// still reach the quota with at least one other answer between two "=".
func shouldForceEquals(equals int, lastWasEquals bool, index, total int) bool {
	need := MinEqualsPerRound - equals
	if need <= 0 || lastWasEquals {
		return false
	}
	remaining := total - index
	return remaining <= 2*need-1
}

// GenerateComparison produces the comparison for slot index of a round of
// total questions, forcing "=" when the quota would otherwise be missed
// and never producing two "=" in a row.
func GenerateComparison(rc *RoundContext, index, total int) (*question.ComparisonQuestion, bool) {
	limit := 20
	if rc.mam() {
		limit = 10
	}
	force := shouldForceEquals(rc.equalsGenerated, rc.lastWasEquals, index, total)

	pair, ok := randutil.TryN(comparisonAttempts, func() ([2]int, bool) {
		a := rc.Rand.Between(1, limit)
		if force {
			return [2]int{a, a}, true
		}
		b := rc.Rand.Between(1, limit)
		if a == b && rc.lastWasEquals {
			return [2]int{}, false
		}
		return [2]int{a, b}, true
	}, func(p [2]int) bool {
		return rc.claimComparison(p[0], p[1])
	})
	if !ok {
		return nil, false
	}
	q := rc.newComparison(pair[0], pair[1])
	rc.noteComparison(q)
	return q, true
}

// generateBandedComparison draws n1 from [min1, max1] and n2 from
// [min2, max2]. Unless forceEquals is set, an accidental tie is rerolled a
// few times first.
func (rc *RoundContext) generateBandedComparison(min1, max1, min2, max2 int, forceEquals bool) (*question.ComparisonQuestion, bool) {
	pair, ok := randutil.TryN(comparisonAttempts, func() ([2]int, bool) {
		a := rc.Rand.Between(min1, max1)
		if forceEquals {
			return [2]int{a, a}, true
		}
		b := rc.Rand.Between(min2, max2)
		for i := 0; a == b && i < 10; i++ {
			b = rc.Rand.Between(min2, max2)
		}
		return [2]int{a, b}, true
	}, func(p [2]int) bool {
		return rc.claimComparison(p[0], p[1])
	})
	if !ok {
		return nil, false
	}
	return rc.newComparison(pair[0], pair[1]), true
}

// GenerateComparisonBatch builds a whole Chồi round up front: the forced
// "=" answers, a fixed mix of number bands, topped up by GenerateComparison, shuffled, then spaced
// so that no two "=" answers are adjacent where that is possible.
func GenerateComparisonBatch(rc *RoundContext, count int) []*question.ComparisonQuestion {
	var out []*question.ComparisonQuestion
	add := func(times, min1, max1, min2, max2 int, forceEquals bool) {
		for i := 0; i < times && len(out) < count; i++ {
			if q, ok := rc.generateBandedComparison(min1, max1, min2, max2, forceEquals); ok {
				out = append(out, q)
			}
		}
	}
	// The "=" slots go first so short rounds still reach the quota, capped
	// at what can be laid out without two "=" in a row.
	add(min(MinEqualsPerRound, (count+1)/2), 1, 20, 1, 20, true)
	add(3, 1, 10, 1, 10, false)
	add(2, 10, 20, 1, 9, false)
	add(2, 1, 9, 10, 20, false)
	add(count-len(out), 10, 20, 10, 20, false)

	rc.equalsGenerated, rc.lastWasEquals = 0, false
	for _, q := range out {
		rc.noteComparison(q)
	}
	for len(out) < count {
		q, ok := GenerateComparison(rc, len(out), count)
		if !ok {
			break
		}
		out = append(out, q)
	}

	out = randutil.Shuffle(rc.Rand, out)
	spaceEquals(out)

	rc.equalsGenerated, rc.lastWasEquals = 0, false
	for _, q := range out {
		rc.noteComparison(q)
	}
	return out
}

// spaceEquals breaks up adjacent "=" answers. For a pair at i, i+1 the
// first non-"=" after the pair is swapped into i+1; failing that, the first
// non-"=" before i is swapped into i. Passes repeat until nothing moves.
func spaceEquals(qs []*question.ComparisonQuestion) {
	isEq := func(i int) bool { return qs[i].Answer == question.Equal }
	for pass := 0; pass < len(qs); pass++ {
		moved := false
		for i := 0; i+1 < len(qs); i++ {
			if !isEq(i) || !isEq(i+1) {
				continue
			}
			swapped := false
			for k := i + 2; k < len(qs); k++ {
				if !isEq(k) {
					qs[i+1], qs[k] = qs[k], qs[i+1]
					swapped = true
					break
				}
			}
			if !swapped {
				for k := 0; k < i; k++ {
					if !isEq(k) {
						qs[i], qs[k] = qs[k], qs[i]
						swapped = true
						break
					}
				}
			}
			moved = moved || swapped
		}
		if !moved {
			return
		}
	}
}
