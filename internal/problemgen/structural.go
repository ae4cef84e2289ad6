package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
)

// StructuralValidator checks that required fields are present and that
// each variant has the shape its mode promises.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q question.Question) *ValidationError {
	h := q.Header()
	if h.ID == "" {
		return invalid(v, "id is empty")
	}
	if !h.Mode.Valid() {
		return invalid(v, "unknown mode %q", h.Mode)
	}
	if !h.Difficulty.Valid() {
		return invalid(v, "unknown difficulty %q", h.Difficulty)
	}
	if strings.TrimSpace(h.PromptText) == "" {
		return invalid(v, "prompt is empty")
	}
	if h.Signature == "" {
		return invalid(v, "signature is empty")
	}
	if !slices.Contains(kindModes(q.Kind()), h.Mode) {
		return invalid(v, "%s question carries mode %q", q.Kind(), h.Mode)
	}

	switch q := q.(type) {
	case *question.MathQuestion:
		return v.math(q)
	case *question.ComparisonQuestion:
		return nil
	case *question.CountingQuestion:
		return v.counting(q)
	case *question.NumberRecognitionQuestion:
		return v.recognition(q)
	case *question.MatchingPairsQuestion:
		return v.matching(q)
	case *question.NumberSequenceQuestion:
		return v.sequence(q)
	case *question.VisualPatternQuestion:
		return v.visual(q)
	case *question.OddOneOutQuestion:
		return v.oddOneOut(q)
	default:
		panic(fmt.Sprintf("problemgen: unhandled question type %T", q))
	}
}

// kindModes lists the modes a question kind may be generated for.
func kindModes(k question.Kind) []question.Mode {
	if k == question.KindMath {
		return []question.Mode{question.ModeAddition, question.ModeSubtraction}
	}
	return []question.Mode{question.Mode(k)}
}

func (v *StructuralValidator) math(q *question.MathQuestion) *ValidationError {
	switch q.UnknownSlot {
	case question.SlotOperand1, question.SlotOperand2, question.SlotResult:
	default:
		return invalid(v, "unknown slot %q", q.UnknownSlot)
	}
	want := question.OpAdd
	if q.Mode == question.ModeSubtraction {
		want = question.OpSub
	}
	if q.Operator != want {
		return invalid(v, "operator %q does not match mode %q", q.Operator, q.Mode)
	}
	return nil
}

func (v *StructuralValidator) counting(q *question.CountingQuestion) *ValidationError {
	if q.Answer < 1 || len(q.Shapes) != q.Answer {
		return invalid(v, "%d shapes for answer %d", len(q.Shapes), q.Answer)
	}
	for _, s := range q.Shapes {
		if s != q.IconType {
			return invalid(v, "shape %q differs from icon %q", s, q.IconType)
		}
	}
	return nil
}

func (v *StructuralValidator) recognition(q *question.NumberRecognitionQuestion) *ValidationError {
	if len(q.Options) != recognitionOptions {
		return invalid(v, "expected %d options, got %d", recognitionOptions, len(q.Options))
	}
	for _, o := range q.Options {
		switch q.Variant {
		case question.NumberToItems:
			if len(o.Items) == 0 || o.Numeral != "" {
				return invalid(v, "number-to-items option %s must hold items only", o.ID)
			}
		case question.ItemsToNumber:
			if o.Numeral == "" || len(o.Items) != 0 {
				return invalid(v, "items-to-number option %s must hold a numeral only", o.ID)
			}
		default:
			return invalid(v, "unknown variant %q", q.Variant)
		}
	}
	if q.Variant == question.ItemsToNumber && len(q.TargetItems) == 0 {
		return invalid(v, "items-to-number question has no target items")
	}
	if q.Variant == question.NumberToItems && q.TargetNumber < 1 {
		return invalid(v, "number-to-items target must be positive")
	}
	return nil
}

// matching checks the board is a perfect pairing of one numeral with one
// icon group of that size.
func (v *StructuralValidator) matching(q *question.MatchingPairsQuestion) *ValidationError {
	if len(q.Items) == 0 {
		return invalid(v, "board is empty")
	}
	byMatch := make(map[string][]question.MatchableItem)
	for _, it := range q.Items {
		byMatch[it.MatchID] = append(byMatch[it.MatchID], it)
	}
	for id, pair := range byMatch {
		if len(pair) != 2 || pair[0].VisualType == pair[1].VisualType {
			return invalid(v, "match %s is not a digit/icon pair", id)
		}
		digit, group := pair[0], pair[1]
		if digit.VisualType != question.VisualDigit {
			digit, group = group, digit
		}
		n, err := strconv.Atoi(digit.Display)
		if err != nil || n < 1 {
			return invalid(v, "digit %q is not a positive number", digit.Display)
		}
		if !repeatsUnit(group.Display, n) {
			return invalid(v, "icon group %q is not %d copies of one icon", group.Display, n)
		}
	}
	return nil
}

// repeatsUnit reports whether s is exactly n copies of the same string.
func repeatsUnit(s string, n int) bool {
	if s == "" || len(s)%n != 0 {
		return false
	}
	return strings.Repeat(s[:len(s)/n], n) == s
}

func (v *StructuralValidator) sequence(q *question.NumberSequenceQuestion) *ValidationError {
	if len(q.Answers) == 0 {
		return invalid(v, "sequence has no blanks")
	}
	values, ok := q.Filled()
	if !ok {
		return invalid(v, "%d answers do not fill the blanks", len(q.Answers))
	}
	step := 1
	if q.Direction == question.Descending {
		step = -1
	} else if q.Direction != question.Ascending {
		return invalid(v, "unknown direction %q", q.Direction)
	}
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] != step {
			return invalid(v, "filled sequence %v is not a %s run", values, q.Direction)
		}
	}
	return nil
}

func (v *StructuralValidator) visual(q *question.VisualPatternQuestion) *ValidationError {
	if !slices.Contains(question.PatternRulesFor(q.Difficulty), q.RuleType) {
		return invalid(v, "rule %q is not a %s rule", q.RuleType, q.Difficulty)
	}
	if len(q.DisplayedSequence) == 0 {
		return invalid(v, "nothing is displayed")
	}
	if len(q.Options) != 4 {
		return invalid(v, "expected 4 options, got %d", len(q.Options))
	}
	if q.Explanation == "" {
		return invalid(v, "explanation is empty")
	}
	return nil
}

func (v *StructuralValidator) oddOneOut(q *question.OddOneOutQuestion) *ValidationError {
	want := 4
	if q.Difficulty == question.DifficultyMam {
		want = 3
	}
	if len(q.Options) != want {
		return invalid(v, "expected %d options, got %d", want, len(q.Options))
	}
	if q.Explanation == "" || q.Rule == "" {
		return invalid(v, "rule and explanation are required")
	}
	return nil
}
