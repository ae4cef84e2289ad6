package render

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mamchoi/internal/rewards"
	"github.com/abhisek/mamchoi/internal/session"
	"github.com/abhisek/mamchoi/internal/ui/theme"
)

// ProgressBar shows how far into the round the child is.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

// View renders "Câu n/total" followed by the bar.
func (p ProgressBar) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Render(fmt.Sprintf("Câu %d/%d", p.Current, p.Total)) + "  "

	barWidth := max(p.Width-lipgloss.Width(label), 4)
	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	filled = min(max(filled, 0), barWidth)

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))
}

// StarRow renders n filled stars out of rewards.MaxStarsPerRound.
func StarRow(n int) string {
	n = min(max(n, 0), rewards.MaxStarsPerRound)
	return theme.Stars.Render(strings.Repeat("⭐", n)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.Repeat("☆", rewards.MaxStarsPerRound-n))
}

// Feedback renders the reaction to one answer. Plain selections of a
// matching tile render as "".
func Feedback(fb session.Feedback) string {
	switch fb.Result {
	case session.ResultCorrect:
		return theme.Correct.Render("✔ " + fb.Message)
	case session.ResultIncorrect:
		return theme.Incorrect.Render("✘ " + fb.Message)
	default:
		return ""
	}
}

// Summary renders the end-of-round screen. award is nil when progress is
// not being saved.
func Summary(sum session.Summary, award *rewards.Award) string {
	lines := []string{
		theme.Title.Render("Hoàn thành!"),
		fmt.Sprintf("Đúng %d/%d câu  %s", sum.Score, sum.Total, StarRow(sum.Stars)),
		theme.Hint.Render("Thời gian: " + sum.Duration.Round(time.Second).String()),
	}

	if award != nil {
		msg := award.Message.Text
		if len(award.Message.Icons) > 0 {
			msg += " " + strings.Join(award.Message.Icons, " ")
		}
		lines = append(lines, "", msg, fmt.Sprintf("Tổng số sao: %d", award.TotalStars))
		for _, set := range award.NewSets {
			lines = append(lines, theme.Correct.Render("Mở khóa: "+set.Name+" "+strings.Join(set.Icons, "")))
		}
		if next, ok := rewards.NextUnlock(award.TotalStars); ok {
			lines = append(lines, theme.Hint.Render(fmt.Sprintf("Còn %d sao nữa để mở %s", next.StarsRequired-award.TotalStars, next.Name)))
		}
	}

	if len(sum.IncorrectAttempts) > 0 {
		lines = append(lines, "", theme.Incorrect.Render("Cần luyện thêm:"))
		for _, a := range sum.IncorrectAttempts {
			lines = append(lines, fmt.Sprintf("  • %s  %s", a.Prompt, theme.Hint.Render("(đã trả lời: "+a.Answer+")")))
		}
	}

	return theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
