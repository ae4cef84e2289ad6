package problemgen

import (
	"github.com/abhisek/mamchoi/internal/allocator"
	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// SessionMemory outlives a single round: visual pattern and number
// sequence signatures are rejected across the whole play session.
// It is not safe for concurrent use.
type SessionMemory struct {
	Patterns  randutil.Set
	Sequences randutil.Set
}

// NewSessionMemory returns an empty memory.
func NewSessionMemory() *SessionMemory {
	return &SessionMemory{
		Patterns:  randutil.NewSet(),
		Sequences: randutil.NewSet(),
	}
}

// RoundContext is the ephemeral state of one round generation. A new
// context is built for every round and dropped afterwards.
type RoundContext struct {
	Rand       *randutil.Rand
	Catalog    *catalog.Catalog
	Difficulty question.Difficulty

	// BaseIcons is the unlocked icon set, Pool the same icons ordered
	// fresh-first.
	BaseIcons []string
	Pool      allocator.Pool

	Signatures  randutil.Set
	UsedInRound randutil.Set
	Memory      *SessionMemory

	usedByMode map[question.Mode]randutil.Set

	// Comparison quota bookkeeping.
	equalsGenerated int
	lastWasEquals   bool

	patternPlaylist []question.PatternRule
	patternNext     int
}

// NewRoundContext prepares the state for one round. A nil memory gets a
// fresh one, so pattern repeats are then only rejected within the round.
func NewRoundContext(r *randutil.Rand, cat *catalog.Catalog, d question.Difficulty, baseIcons, recentIcons []string, memory *SessionMemory) *RoundContext {
	if memory == nil {
		memory = NewSessionMemory()
	}
	pool := allocator.Prioritize(baseIcons, recentIcons)
	return &RoundContext{
		Rand:        r,
		Catalog:     cat,
		Difficulty:  d,
		BaseIcons:   pool.Icons,
		Pool:        pool,
		Signatures:  randutil.NewSet(),
		UsedInRound: randutil.NewSet(),
		Memory:      memory,
		usedByMode:  make(map[question.Mode]randutil.Set),
	}
}

// UsedInMode returns the used-icon set of a mode, creating it on demand.
func (rc *RoundContext) UsedInMode(m question.Mode) randutil.Set {
	s, ok := rc.usedByMode[m]
	if !ok {
		s = randutil.NewSet()
		rc.usedByMode[m] = s
	}
	return s
}

// IconsUsed lists every icon drawn on this round, sorted.
func (rc *RoundContext) IconsUsed() []string {
	return rc.UsedInRound.Sorted()
}

func (rc *RoundContext) mam() bool { return rc.Difficulty == question.DifficultyMam }

// candidates draws icons through the allocator. A nil usedMode only
// avoids icons used this round.
func (rc *RoundContext) candidates(usedMode randutil.Set, count int, exclude ...string) []string {
	return allocator.SelectCandidates(rc.Rand, rc.Pool, rc.UsedInRound, usedMode, count, exclude...)
}

// header fills the shared fields of a new question.
func (rc *RoundContext) header(mode question.Mode, prompt, signature string) question.Base {
	return question.Base{
		ID:         question.NewID(),
		Mode:       mode,
		Difficulty: rc.Difficulty,
		PromptText: prompt,
		Signature:  signature,
	}
}

// NextPatternRule walks a shuffled playlist of the tier's pattern rules,
// reshuffling once it is exhausted.
func (rc *RoundContext) NextPatternRule() question.PatternRule {
	if rc.patternNext >= len(rc.patternPlaylist) {
		rc.patternPlaylist = randutil.Shuffle(rc.Rand, question.PatternRulesFor(rc.Difficulty))
		rc.patternNext = 0
	}
	rule := rc.patternPlaylist[rc.patternNext]
	rc.patternNext++
	return rule
}
