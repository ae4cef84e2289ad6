package session

import (
	"time"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseActive Phase = iota // Serving questions
	PhaseDone                // Every question answered
)

// Result is the kind of reaction an answer or a tile selection gets.
type Result int

const (
	ResultSelected  Result = iota // One tile selected, waiting for its partner
	ResultCorrect                 // Right answer or matched pair
	ResultIncorrect               // Wrong answer or mismatched pair
)

// Feedback describes what happened after an answer or a tile selection.
type Feedback struct {
	Result Result

	// Message is the short phrase shown to the child; empty for
	// ResultSelected.
	Message string

	// Advanced is set when the question is over and the session moved to
	// the next one (or finished).
	Advanced bool
}

// Attempt records one wrong answer or mismatched pair.
type Attempt struct {
	QuestionID string
	Prompt     string
	Answer     string
}

// State tracks the runtime state of a play session.
type State struct {
	// ID is the UUID for this session.
	ID string

	Mode       question.Mode
	Difficulty question.Difficulty

	// Questions is the generated round, in play order.
	Questions []question.Question

	// IconsUsed are the icons the round shows, moved to the front of the
	// stored history when the session ends.
	IconsUsed []string

	// Index points at the current question.
	Index int

	// Score counts questions answered correctly. A matching board counts
	// once, when its last pair is matched.
	Score int

	// Incorrect lists every wrong answer in order.
	Incorrect []Attempt

	// Board is the working copy of the current matching question, nil for
	// other kinds.
	Board *question.MatchingPairsQuestion

	Phase     Phase
	StartTime time.Time
	EndTime   time.Time

	rand *randutil.Rand
	now  func() time.Time
}
