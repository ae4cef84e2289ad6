package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
)

// CheckAnswer compares the learner's input against the correct answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed
// - For integers: leading zeros are ignored (e.g., "07" matches "7")
// - For options: matches the 1-based option index or the option id
//   (odd-one-out also takes the emoji)
// - For sequences: blanks are given left to right, separated by commas or spaces
// - For matching pairs: "a-b" pairs of 1-based item positions covering the board
func CheckAnswer(q question.Question, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	switch q := q.(type) {
	case *question.MathQuestion:
		return integerEquals(answer, q.Answer)
	case *question.ComparisonQuestion:
		return answer == string(q.Answer)
	case *question.CountingQuestion:
		return integerEquals(answer, q.Answer)
	case *question.NumberRecognitionQuestion:
		return checkRecognition(answer, q)
	case *question.MatchingPairsQuestion:
		return checkMatching(answer, q)
	case *question.NumberSequenceQuestion:
		return checkSequence(answer, q.Answers)
	case *question.VisualPatternQuestion:
		idx, ok := optionIndex(answer, len(q.Options))
		if !ok {
			for i, o := range q.Options {
				if o.ID == answer {
					idx, ok = i, true
				}
			}
		}
		return ok && q.Options[idx].IsCorrect
	case *question.OddOneOutQuestion:
		correct, ok := q.CorrectOption()
		if !ok {
			return false
		}
		if idx, ok := optionIndex(answer, len(q.Options)); ok {
			return q.Options[idx].ID == correct.ID
		}
		return answer == correct.ID || answer == correct.Emoji
	default:
		panic(fmt.Sprintf("problemgen: unhandled question type %T", q))
	}
}

// optionIndex parses a 1-based option number into a 0-based index.
func optionIndex(answer string, n int) (int, bool) {
	idx, err := strconv.Atoi(answer)
	if err != nil || idx < 1 || idx > n {
		return 0, false
	}
	return idx - 1, true
}

func integerEquals(answer string, want int) bool {
	n, err := strconv.Atoi(answer)
	return err == nil && n == want
}

// checkRecognition takes the numeral itself for items-to-number
// questions, where an option number would read as a count, and the option
// number for number-to-items ones. The option id works for both.
func checkRecognition(answer string, q *question.NumberRecognitionQuestion) bool {
	for i, o := range q.Options {
		if o.ID == answer {
			return o.IsCorrect
		}
		if q.Variant == question.ItemsToNumber && o.IsCorrect {
			n, err := strconv.Atoi(o.Numeral)
			if err == nil && integerEquals(answer, n) {
				return true
			}
		}
		if q.Variant == question.NumberToItems {
			if idx, ok := optionIndex(answer, len(q.Options)); ok && idx == i {
				return o.IsCorrect
			}
		}
	}
	return false
}

func fields(answer string) []string {
	return strings.FieldsFunc(answer, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
}

func checkSequence(answer string, want []int) bool {
	parts := fields(answer)
	if len(parts) != len(want) {
		return false
	}
	for i, p := range parts {
		if !integerEquals(p, want[i]) {
			return false
		}
	}
	return true
}

// checkMatching requires every item to appear in exactly one correct pair.
func checkMatching(answer string, q *question.MatchingPairsQuestion) bool {
	parts := fields(answer)
	if len(parts)*2 != len(q.Items) {
		return false
	}
	used := make(map[int]bool, len(q.Items))
	for _, p := range parts {
		left, right, ok := strings.Cut(p, "-")
		if !ok {
			return false
		}
		i, ok1 := optionIndex(left, len(q.Items))
		j, ok2 := optionIndex(right, len(q.Items))
		if !ok1 || !ok2 || i == j || used[i] || used[j] {
			return false
		}
		used[i], used[j] = true, true
		a, b := q.Items[i], q.Items[j]
		if a.MatchID != b.MatchID || a.VisualType == b.VisualType {
			return false
		}
	}
	return true
}
