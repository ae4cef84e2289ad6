package question

import (
	"fmt"

	"github.com/google/uuid"
)

// Mode identifies one of the nine game modes.
type Mode string

const (
	ModeAddition          Mode = "addition"
	ModeSubtraction       Mode = "subtraction"
	ModeComparison        Mode = "comparison"
	ModeCounting          Mode = "counting"
	ModeNumberRecognition Mode = "number_recognition"
	ModeMatchingPairs     Mode = "matching_pairs"
	ModeNumberSequence    Mode = "number_sequence"
	ModeVisualPattern     Mode = "visual_pattern"
	ModeOddOneOut         Mode = "odd_one_out"
)

// AllModes lists the game modes in menu order.
var AllModes = []Mode{
	ModeAddition,
	ModeSubtraction,
	ModeComparison,
	ModeCounting,
	ModeNumberRecognition,
	ModeMatchingPairs,
	ModeNumberSequence,
	ModeVisualPattern,
	ModeOddOneOut,
}

// DisplayName returns the Vietnamese menu label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeAddition:
		return "PHÉP CỘNG (+)"
	case ModeSubtraction:
		return "PHÉP TRỪ (-)"
	case ModeComparison:
		return "SO SÁNH (<, >, =)"
	case ModeCounting:
		return "ĐẾM HÌNH"
	case ModeNumberRecognition:
		return "NHẬN BIẾT SỐ"
	case ModeMatchingPairs:
		return "TÌM CẶP TƯƠNG ỨNG"
	case ModeNumberSequence:
		return "HOÀN THIỆN DÃY SỐ"
	case ModeVisualPattern:
		return "TÌM QUY LUẬT HÌNH ẢNH"
	case ModeOddOneOut:
		return "TÌM VẬT KHÁC BIỆT"
	default:
		return string(m)
	}
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	for _, known := range AllModes {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMode converts an identifier such as "odd_one_out" into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mode %q", s)
	}
	return m, nil
}

// Difficulty is the age tier a question targets.
type Difficulty string

const (
	DifficultyMam  Difficulty = "mam"  // 3-4 years
	DifficultyChoi Difficulty = "choi" // 4-5 years
)

// AllDifficulties lists the tiers from easiest to hardest.
var AllDifficulties = []Difficulty{DifficultyMam, DifficultyChoi}

// DisplayName returns the Vietnamese label for the tier.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyMam:
		return "Mầm (3-4 tuổi)"
	case DifficultyChoi:
		return "Chồi (4-5 tuổi)"
	default:
		return string(d)
	}
}

// Valid reports whether d is a known tier.
func (d Difficulty) Valid() bool {
	return d == DifficultyMam || d == DifficultyChoi
}

// ParseDifficulty converts "mam" or "choi" into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q: must be mam or choi", s)
	}
	return d, nil
}

// NewID returns a fresh unique identifier for questions, options and items.
func NewID() string {
	return uuid.New().String()
}

// Base holds the fields shared by every question variant.
type Base struct {
	ID         string     `json:"id"`
	Mode       Mode       `json:"mode"`
	Difficulty Difficulty `json:"difficulty"`
	PromptText string     `json:"promptText"`

	// Signature is the content fingerprint used for duplicate rejection.
	Signature string `json:"signature"`
}

// Question is the closed set of generated question variants.
// Only the types in this package implement it.
type Question interface {
	Header() *Base
	Kind() Kind
	isQuestion()
}

// Kind is the JSON discriminator of a question variant.
type Kind string

const (
	KindMath              Kind = "math"
	KindComparison        Kind = "comparison"
	KindCounting          Kind = "counting"
	KindNumberRecognition Kind = "number_recognition"
	KindMatchingPairs     Kind = "matching_pairs"
	KindNumberSequence    Kind = "number_sequence"
	KindVisualPattern     Kind = "visual_pattern"
	KindOddOneOut         Kind = "odd_one_out"
)

func (b *Base) Header() *Base { return b }

// Operator is the arithmetic operator of a math question.
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
)

// Slot names the hidden part of a math equation.
type Slot string

const (
	SlotOperand1 Slot = "operand1"
	SlotOperand2 Slot = "operand2"
	SlotResult   Slot = "result"
)

// MathQuestion is an addition or subtraction equation with one hidden slot.
type MathQuestion struct {
	Base
	Operand1True int      `json:"operand1True"`
	Operand2True int      `json:"operand2True"`
	ResultTrue   int      `json:"resultTrue"`
	Operator     Operator `json:"operator"`
	UnknownSlot  Slot     `json:"unknownSlot"`
	Answer       int      `json:"answer"`
}

// SlotValue returns the true value of the given slot.
func (q *MathQuestion) SlotValue(s Slot) int {
	switch s {
	case SlotOperand1:
		return q.Operand1True
	case SlotOperand2:
		return q.Operand2True
	default:
		return q.ResultTrue
	}
}

// Relation is the answer of a comparison question.
type Relation string

const (
	Less    Relation = "<"
	Greater Relation = ">"
	Equal   Relation = "="
)

// Compare returns the relation between a and b.
func Compare(a, b int) Relation {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// ComparisonQuestion asks which relation holds between two numbers.
type ComparisonQuestion struct {
	Base
	Number1 int      `json:"number1"`
	Number2 int      `json:"number2"`
	Answer  Relation `json:"answer"`
}

// CountingQuestion shows Answer copies of IconType.
type CountingQuestion struct {
	Base
	Shapes   []string `json:"shapes"`
	IconType string   `json:"iconType"`
	Answer   int      `json:"answer"`
}

// RecognitionVariant selects the direction of a number recognition question.
type RecognitionVariant string

const (
	NumberToItems RecognitionVariant = "number-to-items"
	ItemsToNumber RecognitionVariant = "items-to-number"
)

// RecognitionOption is either a group of icons or a numeral.
// Exactly one of Items and Numeral is set.
type RecognitionOption struct {
	ID        string   `json:"id"`
	Items     []string `json:"items,omitempty"`
	Numeral   string   `json:"numeral,omitempty"`
	IsCorrect bool     `json:"isCorrect"`
}

// NumberRecognitionQuestion links numerals and item counts.
type NumberRecognitionQuestion struct {
	Base
	Variant        RecognitionVariant  `json:"variant"`
	TargetNumber   int                 `json:"targetNumber,omitempty"`
	TargetItems    []string            `json:"targetItems,omitempty"`
	TargetItemIcon string              `json:"targetItemIcon,omitempty"`
	Options        []RecognitionOption `json:"options"`
}

// VisualType is how a matchable item is drawn.
type VisualType string

const (
	VisualDigit     VisualType = "digit"
	VisualEmojiIcon VisualType = "emoji_icon"
)

// MatchableItem is one tile of a matching-pairs board.
// IsMatched and IsSelected change during play only.
type MatchableItem struct {
	ID         string     `json:"id"`
	MatchID    string     `json:"matchId"`
	Display    string     `json:"display"`
	VisualType VisualType `json:"visualType"`
	IsMatched  bool       `json:"isMatched"`
	IsSelected bool       `json:"isSelected"`
}

// MatchingPairsQuestion is a board of digit/icon-group pairs.
type MatchingPairsQuestion struct {
	Base
	Items []MatchableItem `json:"items"`
}

// Direction is the ordering of a number sequence.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// NumberSequenceQuestion is a run of consecutive numbers with blanks.
// A nil entry in Sequence is a blank; Answers fills blanks left to right.
type NumberSequenceQuestion struct {
	Base
	Sequence  []*int    `json:"sequence"`
	Answers   []int     `json:"answers"`
	Direction Direction `json:"direction"`
}

// Filled returns the sequence with each blank replaced by its answer.
// ok is false when the number of blanks and answers differ.
func (q *NumberSequenceQuestion) Filled() (values []int, ok bool) {
	next := 0
	for _, v := range q.Sequence {
		if v != nil {
			values = append(values, *v)
			continue
		}
		if next >= len(q.Answers) {
			return nil, false
		}
		values = append(values, q.Answers[next])
		next++
	}
	return values, next == len(q.Answers)
}

// VisualContent is a single glyph with optional transforms.
type VisualContent struct {
	Emoji          string  `json:"emoji"`
	Rotation       int     `json:"rotation,omitempty"`
	Scale          float64 `json:"scale,omitempty"`
	FlipHorizontal bool    `json:"flipHorizontal,omitempty"`
	FlipVertical   bool    `json:"flipVertical,omitempty"`
}

// GridPlacement places an element inside a rows x cols grid.
type GridPlacement struct {
	Rows    int           `json:"rows"`
	Cols    int           `json:"cols"`
	Row     int           `json:"row"`
	Col     int           `json:"col"`
	Element VisualContent `json:"element"`
}

// PatternStep is either bare content or a grid placement.
type PatternStep struct {
	Content *VisualContent `json:"content,omitempty"`
	Grid    *GridPlacement `json:"grid,omitempty"`
}

// Emoji returns the glyph string of the step regardless of its shape.
func (s *PatternStep) Emoji() string {
	switch {
	case s == nil:
		return ""
	case s.Grid != nil:
		return s.Grid.Element.Emoji
	case s.Content != nil:
		return s.Content.Emoji
	default:
		return ""
	}
}

// PatternOption is a candidate answer of a visual pattern question.
type PatternOption struct {
	ID        string      `json:"id"`
	Display   PatternStep `json:"display"`
	IsCorrect bool        `json:"isCorrect"`
}

// VisualPatternQuestion asks for the next (or missing) step of a pattern.
type VisualPatternQuestion struct {
	Base
	RuleType          PatternRule     `json:"ruleType"`
	DisplayedSequence []*PatternStep  `json:"displayedSequence"`
	Options           []PatternOption `json:"options"`
	Explanation       string          `json:"explanation"`
}

// OddOneOutOption is one selectable item.
type OddOneOutOption struct {
	ID    string `json:"id"`
	Emoji string `json:"emoji"`
}

// OddOneOutQuestion asks which item does not belong with the rest.
// Rule records the attribute that separates the odd item.
type OddOneOutQuestion struct {
	Base
	Options         []OddOneOutOption `json:"options"`
	CorrectAnswerID string            `json:"correctAnswerId"`
	Rule            string            `json:"rule"`
	Explanation     string            `json:"explanation"`
}

// CorrectOption returns the option referenced by CorrectAnswerID.
func (q *OddOneOutQuestion) CorrectOption() (OddOneOutOption, bool) {
	for _, o := range q.Options {
		if o.ID == q.CorrectAnswerID {
			return o, true
		}
	}
	return OddOneOutOption{}, false
}

func (*MathQuestion) Kind() Kind { return KindMath }
func (*ComparisonQuestion) Kind() Kind { return KindComparison }
func (*CountingQuestion) Kind() Kind { return KindCounting }
func (*NumberRecognitionQuestion) Kind() Kind { return KindNumberRecognition }
func (*MatchingPairsQuestion) Kind() Kind { return KindMatchingPairs }
func (*NumberSequenceQuestion) Kind() Kind { return KindNumberSequence }
func (*VisualPatternQuestion) Kind() Kind { return KindVisualPattern }
func (*OddOneOutQuestion) Kind() Kind { return KindOddOneOut }

func (*MathQuestion) isQuestion() {}
func (*ComparisonQuestion) isQuestion() {}
func (*CountingQuestion) isQuestion() {}
func (*NumberRecognitionQuestion) isQuestion() {}
func (*MatchingPairsQuestion) isQuestion() {}
func (*NumberSequenceQuestion) isQuestion() {}
func (*VisualPatternQuestion) isQuestion() {}
func (*OddOneOutQuestion) isQuestion() {}
