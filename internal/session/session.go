// Package session plays a generated round: it checks answers, runs the
// matching-board selection, keeps score and builds the summary.
package session

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mamchoi/internal/problemgen"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
	"github.com/abhisek/mamchoi/internal/rewards"
	"github.com/abhisek/mamchoi/internal/round"
)

var (
	// ErrDone is returned when answering after the last question.
	ErrDone = errors.New("session: no question left")

	// ErrUseSelection is returned by Submit on a matching board.
	ErrUseSelection = errors.New("session: matching boards are answered by selecting tiles")

	// ErrNotMatching is returned by SelectItem on other question kinds.
	ErrNotMatching = errors.New("session: current question is not a matching board")
)

// Option configures a Session.
type Option func(*State)

// WithRand fixes the source used to pick feedback phrases.
func WithRand(r *randutil.Rand) Option {
	return func(s *State) { s.rand = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *State) { s.now = now }
}

// Session plays one round.
type Session struct {
	State
}

// New starts a session over a generated round.
func New(mode question.Mode, d question.Difficulty, res round.Result, opts ...Option) *Session {
	s := &Session{State: State{
		ID:         uuid.NewString(),
		Mode:       mode,
		Difficulty: d,
		Questions:  res.Questions,
		IconsUsed:  res.IconsUsed,
		now:        time.Now,
	}}
	for _, opt := range opts {
		opt(&s.State)
	}
	if s.rand == nil {
		s.rand = randutil.NewRandom()
	}
	s.StartTime = s.now()
	s.enter(0)
	return s
}

// enter makes question i current, or ends the session past the last one.
func (s *Session) enter(i int) {
	s.Index = i
	s.Board = nil
	if i >= len(s.Questions) {
		s.Phase = PhaseDone
		s.EndTime = s.now()
		return
	}
	if m, ok := s.Questions[i].(*question.MatchingPairsQuestion); ok {
		board := *m
		board.Items = slices.Clone(m.Items)
		for j := range board.Items {
			board.Items[j].IsMatched = false
			board.Items[j].IsSelected = false
		}
		s.Board = &board
	}
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.Phase == PhaseDone
}

// Current returns the question being played, nil when done. For a
// matching board it is the working copy with selection state.
func (s *Session) Current() question.Question {
	if s.Done() {
		return nil
	}
	if s.Board != nil {
		return s.Board
	}
	return s.Questions[s.Index]
}

// Position returns the 1-based number of the current question and the
// round length.
func (s *Session) Position() (int, int) {
	return min(s.Index+1, len(s.Questions)), len(s.Questions)
}

// Submit checks an answer to the current question and moves on.
func (s *Session) Submit(answer string) (Feedback, error) {
	q := s.Current()
	if q == nil {
		return Feedback{}, ErrDone
	}
	if s.Board != nil {
		return Feedback{}, ErrUseSelection
	}

	correct := problemgen.CheckAnswer(q, answer)
	fb := Feedback{Result: ResultIncorrect, Message: rewards.Feedback(s.rand, correct), Advanced: true}
	if correct {
		fb.Result = ResultCorrect
		s.Score++
	} else {
		s.recordMistake(q, answer)
	}
	s.enter(s.Index + 1)
	return fb, nil
}

// SelectItem toggles a tile of the current matching board. When two
// unmatched tiles are selected they either form a pair (same match ID,
// different visual type) and stay matched, or both are deselected and the
// attempt counts as a mistake. Matching the last pair scores the board and
// moves on. Selecting an already matched tile does nothing.
func (s *Session) SelectItem(itemID string) (Feedback, error) {
	if s.Done() {
		return Feedback{}, ErrDone
	}
	if s.Board == nil {
		return Feedback{}, ErrNotMatching
	}
	items := s.Board.Items
	idx := slices.IndexFunc(items, func(it question.MatchableItem) bool { return it.ID == itemID })
	if idx < 0 {
		return Feedback{}, fmt.Errorf("session: unknown item %q", itemID)
	}
	if items[idx].IsMatched {
		return Feedback{Result: ResultSelected}, nil
	}
	items[idx].IsSelected = !items[idx].IsSelected

	var selected []int
	for i, it := range items {
		if it.IsSelected && !it.IsMatched {
			selected = append(selected, i)
		}
	}
	if len(selected) < 2 {
		return Feedback{Result: ResultSelected}, nil
	}

	first, second := items[selected[0]], items[selected[1]]
	if first.MatchID != second.MatchID || first.VisualType == second.VisualType {
		items[selected[0]].IsSelected = false
		items[selected[1]].IsSelected = false
		s.recordMistake(s.Board, first.Display+" - "+second.Display)
		return Feedback{Result: ResultIncorrect, Message: rewards.Feedback(s.rand, false)}, nil
	}

	for i := range items {
		if items[i].MatchID == first.MatchID {
			items[i].IsMatched = true
		}
		items[i].IsSelected = false
	}
	fb := Feedback{Result: ResultCorrect, Message: rewards.Feedback(s.rand, true)}
	if !slices.ContainsFunc(items, func(it question.MatchableItem) bool { return !it.IsMatched }) {
		s.Score++
		s.enter(s.Index + 1)
		fb.Advanced = true
	}
	return fb, nil
}

func (s *Session) recordMistake(q question.Question, answer string) {
	h := q.Header()
	s.Incorrect = append(s.Incorrect, Attempt{QuestionID: h.ID, Prompt: h.PromptText, Answer: answer})
}
