package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
)

// Generate draws one question of mode for slot index of a round of total
// slots. Visual patterns take the next rule of the round's playlist. An
// unknown mode panics.
func Generate(rc *RoundContext, mode question.Mode, index, total int) (question.Question, bool) {
	switch mode {
	case question.ModeAddition:
		return wrap(GenerateAddition(rc))
	case question.ModeSubtraction:
		return wrap(GenerateSubtraction(rc))
	case question.ModeComparison:
		return wrap(GenerateComparison(rc, index, total))
	case question.ModeCounting:
		return wrap(GenerateCounting(rc))
	case question.ModeNumberRecognition:
		return wrap(GenerateNumberRecognition(rc))
	case question.ModeMatchingPairs:
		return wrap(GenerateMatchingPairs(rc))
	case question.ModeNumberSequence:
		return wrap(GenerateNumberSequence(rc))
	case question.ModeVisualPattern:
		return wrap(GenerateVisualPattern(rc, rc.NextPatternRule()))
	case question.ModeOddOneOut:
		return wrap(GenerateOddOneOut(rc))
	default:
		panic(fmt.Sprintf("problemgen: unknown mode %q", mode))
	}
}

// wrap keeps a failed draw from turning into a non-nil interface holding
// a nil pointer.
func wrap[Q question.Question](q Q, ok bool) (question.Question, bool) {
	if !ok {
		return nil, false
	}
	return q, true
}
