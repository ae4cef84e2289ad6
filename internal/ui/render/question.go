// Package render draws questions and round results for a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/ui/theme"
)

const blank = "?"

// Question renders q with its prompt, the content to look at and the
// numbered choices, followed by a hint on how to answer.
func Question(q question.Question) string {
	var body, hint string
	switch q := q.(type) {
	case *question.MathQuestion:
		body, hint = mathBody(q), "Nhập số còn thiếu."
	case *question.ComparisonQuestion:
		body = fmt.Sprintf("%d  %s  %d", q.Number1, theme.Blank.Render(blank), q.Number2)
		hint = "Nhập <, > hoặc =."
	case *question.CountingQuestion:
		body, hint = strings.Join(q.Shapes, " "), "Đếm rồi nhập số."
	case *question.NumberRecognitionQuestion:
		body, hint = recognitionBody(q)
	case *question.MatchingPairsQuestion:
		body, hint = Board(q), "Chọn hai ô, ví dụ 1-3."
	case *question.NumberSequenceQuestion:
		body, hint = sequenceBody(q), "Nhập các số còn thiếu, cách nhau bởi dấu phẩy."
	case *question.VisualPatternQuestion:
		body, hint = patternBody(q), "Nhập số thứ tự của đáp án."
	case *question.OddOneOutQuestion:
		opts := make([]string, len(q.Options))
		for i, o := range q.Options {
			opts[i] = o.Emoji
		}
		body, hint = options(opts), "Nhập số thứ tự của hình khác loại."
	default:
		body = fmt.Sprintf("(%T)", q)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Prompt.Render(q.Header().PromptText),
		"",
		body,
		"",
		theme.Hint.Render(hint),
	)
}

func mathBody(q *question.MathQuestion) string {
	values := map[question.Slot]string{
		question.SlotOperand1: strconv.Itoa(q.Operand1True),
		question.SlotOperand2: strconv.Itoa(q.Operand2True),
		question.SlotResult:   strconv.Itoa(q.ResultTrue),
	}
	values[q.UnknownSlot] = theme.Blank.Render(blank)
	return fmt.Sprintf("%s %s %s = %s",
		values[question.SlotOperand1], q.Operator, values[question.SlotOperand2], values[question.SlotResult])
}

func recognitionBody(q *question.NumberRecognitionQuestion) (string, string) {
	opts := make([]string, len(q.Options))
	if q.Variant == question.NumberToItems {
		for i, o := range q.Options {
			opts[i] = strings.Join(o.Items, "")
		}
		target := theme.Card.Render(theme.Title.Render(strconv.Itoa(q.TargetNumber)))
		return lipgloss.JoinVertical(lipgloss.Left, target, options(opts)), "Nhập số thứ tự của nhóm đúng."
	}
	for i, o := range q.Options {
		opts[i] = o.Numeral
	}
	target := theme.Card.Render(strings.Join(q.TargetItems, " "))
	return lipgloss.JoinVertical(lipgloss.Left, target, options(opts)), "Nhập số em đếm được."
}

func sequenceBody(q *question.NumberSequenceQuestion) string {
	cells := make([]string, len(q.Sequence))
	for i, v := range q.Sequence {
		if v == nil {
			cells[i] = theme.Tile.Render(theme.Blank.Render(blank))
			continue
		}
		cells[i] = theme.Tile.Render(strconv.Itoa(*v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func patternBody(q *question.VisualPatternQuestion) string {
	steps := make([]string, 0, len(q.DisplayedSequence))
	for _, s := range q.DisplayedSequence {
		steps = append(steps, Step(s))
	}
	opts := make([]string, len(q.Options))
	for i := range q.Options {
		opts[i] = Step(&q.Options[i].Display)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, steps...),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, numbered(opts)...),
	)
}

// Step renders one pattern step: bare content in a tile, a grid placement
// as a drawn grid, nil as the blank to fill.
func Step(s *question.PatternStep) string {
	switch {
	case s == nil:
		return theme.Tile.Render(theme.Blank.Render(blank))
	case s.Grid != nil:
		return Grid(*s.Grid)
	case s.Content != nil:
		return theme.Tile.Render(Content(*s.Content))
	default:
		return theme.Tile.Render(" ")
	}
}

// Content renders a glyph followed by marks for its transforms.
func Content(c question.VisualContent) string {
	var b strings.Builder
	b.WriteString(c.Emoji)
	if c.Rotation != 0 {
		fmt.Fprintf(&b, " ↻%d°", c.Rotation)
	}
	if c.FlipHorizontal {
		b.WriteString(" ⇆")
	}
	if c.FlipVertical {
		b.WriteString(" ⇅")
	}
	if c.Scale != 0 && c.Scale != 1 {
		b.WriteString(" ×" + strconv.FormatFloat(c.Scale, 'g', -1, 64))
	}
	return b.String()
}

// Grid draws a rows x cols board with the element in its cell and a dot
// in every other cell.
func Grid(g question.GridPlacement) string {
	element := Content(g.Element)
	cell := lipgloss.NewStyle().Width(max(4, lipgloss.Width(element)+2)).Align(lipgloss.Center)
	rows := make([]string, g.Rows)
	for r := range g.Rows {
		cells := make([]string, g.Cols)
		for c := range g.Cols {
			if r == g.Row && c == g.Col {
				cells[c] = cell.Render(element)
				continue
			}
			cells[c] = cell.Render("·")
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return theme.GridFrame.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Board renders the tiles of a matching board, numbered from 1, marking
// the selected and matched ones.
func Board(q *question.MatchingPairsQuestion) string {
	tiles := make([]string, len(q.Items))
	for i, it := range q.Items {
		label := theme.OptionIndex.Render(strconv.Itoa(i+1)+".") + " " + it.Display
		switch {
		case it.IsMatched:
			tiles[i] = theme.TileMatched.Render(label + " ✓")
		case it.IsSelected:
			tiles[i] = theme.TileSelected.Render(label)
		default:
			tiles[i] = theme.Tile.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func options(opts []string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, numbered(opts)...)
}

func numbered(opts []string) []string {
	out := make([]string, len(opts))
	for i, o := range opts {
		index := theme.OptionIndex.Render(strconv.Itoa(i+1) + ".")
		out[i] = lipgloss.JoinHorizontal(lipgloss.Center, " ", index, " ", o, "  ")
	}
	return out
}

// Answer describes the expected answer of q, used to reveal it after a
// mistake. Matching boards have no single answer and return "".
func Answer(q question.Question) string {
	switch q := q.(type) {
	case *question.MathQuestion:
		return strconv.Itoa(q.Answer)
	case *question.ComparisonQuestion:
		return string(q.Answer)
	case *question.CountingQuestion:
		return strconv.Itoa(q.Answer)
	case *question.NumberRecognitionQuestion:
		for i, o := range q.Options {
			if !o.IsCorrect {
				continue
			}
			if q.Variant == question.ItemsToNumber {
				return o.Numeral
			}
			return fmt.Sprintf("%d. %s", i+1, strings.Join(o.Items, ""))
		}
	case *question.NumberSequenceQuestion:
		parts := make([]string, len(q.Answers))
		for i, a := range q.Answers {
			parts[i] = strconv.Itoa(a)
		}
		return strings.Join(parts, ", ")
	case *question.VisualPatternQuestion:
		for i, o := range q.Options {
			if o.IsCorrect {
				return fmt.Sprintf("%d. %s", i+1, o.Display.Emoji())
			}
		}
	case *question.OddOneOutQuestion:
		for i, o := range q.Options {
			if o.ID == q.CorrectAnswerID {
				return fmt.Sprintf("%d. %s", i+1, o.Emoji)
			}
		}
	}
	return ""
}

// Explanation returns the rule explanation of pattern and odd-one-out
// questions.
func Explanation(q question.Question) string {
	switch q := q.(type) {
	case *question.VisualPatternQuestion:
		return q.Explanation
	case *question.OddOneOutQuestion:
		return q.Explanation
	}
	return ""
}
