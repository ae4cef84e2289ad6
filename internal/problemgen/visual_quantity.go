package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const quantityShown = 3

// quantityTerms returns the count sequence of a quantity rule and the
// explanation that goes with it.
func (rc *RoundContext) quantityTerms(rule question.PatternRule) ([]int, string) {
	switch rule {
	case question.RuleChoiProgressiveQty:
		step, _ := randutil.Pick(rc.Rand, []int{1, 2, -1})
		start := rc.Rand.Between(1, 3)
		if step < 0 {
			start = rc.Rand.Between(4, 6)
		}
		terms := make([]int, 5)
		for i := range terms {
			terms[i] = start + i*step
		}
		verb, size := "tăng", step
		if step < 0 {
			verb, size = "giảm", -step
		}
		return terms, explainPhrase(fmt.Sprintf("số lượng %s %d ở mỗi bước", verb, size))
	case question.RuleChoiDoublingQty:
		s := rc.Rand.Between(1, 2)
		return []int{s, 2 * s, 4 * s, 8 * s}, explain(rule)
	case question.RuleChoiFibonacciQty:
		return []int{1, 1, 2, 3, 5}, explain(rule)
	case question.RuleChoiNonLinearQty:
		terms := []int{rc.Rand.Between(1, 2)}
		for i := range 4 {
			delta := 2
			if i%2 == 1 {
				delta = -1
			}
			terms = append(terms, terms[i]+delta)
		}
		return terms, explain(rule)
	default:
		panic(fmt.Sprintf("problemgen: %q is not a quantity rule", rule))
	}
}

// buildQuantity shows piles of one icon whose sizes follow a numeric rule;
// the next pile is the answer. Distractors are one more, one less, the
// last shown size, then two more or the first size when those collide.
func buildQuantity(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	picked := rc.candidates(nil, 1)
	if len(picked) == 0 {
		return nil, false
	}
	icon := picked[0]
	terms, explanation := rc.quantityTerms(rule)
	for _, t := range terms[:quantityShown+1] {
		if t <= 0 {
			return nil, false
		}
	}

	answer := terms[quantityShown]
	var distractors []*question.PatternStep
	for _, n := range []int{answer + 1, answer - 1, terms[quantityShown-1], answer + 2, terms[0]} {
		if n > 0 && n != answer {
			distractors = append(distractors, emojiStep(repeatIcon(icon, n)))
		}
	}
	displayed := make([]*question.PatternStep, quantityShown)
	for i := range displayed {
		displayed[i] = emojiStep(repeatIcon(icon, terms[i]))
	}

	return &patternDraft{
		rule:        rule,
		prompt:      promptNext,
		displayed:   displayed,
		correct:     emojiStep(repeatIcon(icon, answer)),
		distractors: distractors,
		explanation: explanation,
		icons:       []string{icon},
	}, true
}

// buildInterleavingQuantity alternates a single A with a growing pile of
// B: A, B×s, A, B×(s+1), ...
func buildInterleavingQuantity(rc *RoundContext, rule question.PatternRule) (*patternDraft, bool) {
	icons := rc.candidates(nil, 2)
	if len(icons) < 2 {
		return nil, false
	}
	a, b := icons[0], icons[1]
	startB := rc.Rand.Between(1, 2)

	var full []*question.PatternStep
	for i := range 5 {
		full = append(full, emojiStep(a), emojiStep(repeatIcon(b, startB+i)))
	}
	correctB := startB + quantityShown/2

	return &patternDraft{
		rule:      rule,
		prompt:    promptNext,
		displayed: full[:quantityShown],
		correct:   full[quantityShown],
		distractors: []*question.PatternStep{
			emojiStep(repeatIcon(b, correctB+1)),
			emojiStep(b),
			emojiStep(repeatIcon(a, correctB)),
		},
		explanation: explain(rule),
		icons:       icons,
	}, true
}
