package session

import (
	"time"

	"github.com/abhisek/mamchoi/internal/rewards"
	"github.com/abhisek/mamchoi/internal/store"
)

// Summary holds the data displayed when a round ends.
type Summary struct {
	Score             int
	Total             int
	Stars             int
	IncorrectAttempts []Attempt
	Duration          time.Duration
}

// Accuracy returns Score/Total, 0 for an empty round.
func (s Summary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Score) / float64(s.Total)
}

// Summary reports the session so far. Duration stops at the last answer.
func (s *Session) Summary() Summary {
	end := s.EndTime
	if !s.Done() {
		end = s.now()
	}
	total := len(s.Questions)
	return Summary{
		Score:             s.Score,
		Total:             total,
		Stars:             rewards.StarsForScore(s.Score, total),
		IncorrectAttempts: s.Incorrect,
		Duration:          end.Sub(s.StartTime),
	}
}

// Outcome converts the session into the input of the rewards service.
func (s *Session) Outcome() rewards.Outcome {
	sum := s.Summary()
	attempts := make([]store.IncorrectAttempt, len(sum.IncorrectAttempts))
	for i, a := range sum.IncorrectAttempts {
		attempts[i] = store.IncorrectAttempt{QuestionID: a.QuestionID, Prompt: a.Prompt, Answer: a.Answer}
	}
	return rewards.Outcome{
		Mode:              string(s.Mode),
		Difficulty:        string(s.Difficulty),
		Score:             sum.Score,
		Total:             sum.Total,
		IncorrectAttempts: attempts,
		IconsUsed:         s.IconsUsed,
		Duration:          sum.Duration,
	}
}
