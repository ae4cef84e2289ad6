// Package round assembles a full round of questions for one mode and tier.
package round

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/problemgen"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// Request describes the round to build.
type Request struct {
	Mode           question.Mode
	Difficulty     question.Difficulty
	UnlockedSetIDs []string
	RecentIcons    []string

	// Count is the number of questions wanted; 0 means DefaultCount.
	Count int

	// Seed makes the round reproducible; 0 draws a random seed.
	Seed uint64

	// Memory carries pattern and sequence repeats across the rounds of a
	// play session. Nil scopes them to this round.
	Memory *problemgen.SessionMemory
}

// Result is a generated round. It may hold fewer questions than
// Requested when the icon supply or the rule space ran out.
type Result struct {
	Questions []question.Question
	IconsUsed []string
	Requested int
	Seed      uint64
}

// Short reports whether some slots stayed empty.
func (r Result) Short() bool { return len(r.Questions) < r.Requested }

// DefaultCount is the usual round length of a mode and tier.
func DefaultCount(m question.Mode, d question.Difficulty) int {
	switch {
	case m == question.ModeComparison && d == question.DifficultyChoi:
		return 25
	case m == question.ModeVisualPattern, m == question.ModeOddOneOut, m == question.ModeNumberSequence:
		if d == question.DifficultyMam {
			return 10
		}
		return 15
	default:
		return 20
	}
}

// Generator builds rounds. It holds no round state and is safe for
// concurrent use.
type Generator struct {
	cfg     problemgen.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithCatalog replaces the built-in icon catalog.
func WithCatalog(c *catalog.Catalog) Option {
	return func(g *Generator) { g.catalog = c }
}

// New returns a Generator using cfg.
func New(cfg problemgen.Config, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, catalog: catalog.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	// Odd-one-out checks must resolve icons against the catalog in use.
	g.cfg.Validators = slices.Clone(cfg.Validators)
	for i, v := range g.cfg.Validators {
		if ov, ok := v.(*problemgen.OptionsValidator); ok && ov.Catalog == nil {
			g.cfg.Validators[i] = &problemgen.OptionsValidator{Catalog: g.catalog}
		}
	}
	if g.cfg.AttemptsPerSlot <= 0 {
		g.cfg.AttemptsPerSlot = problemgen.DefaultAttemptsPerSlot
	}
	return g
}

// Generate builds the round described by req. Slots that cannot be
// filled are skipped; only an invalid request or a cancelled context is an
// error.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	if !req.Mode.Valid() {
		return Result{}, fmt.Errorf("generate round: unknown mode %q", req.Mode)
	}
	if !req.Difficulty.Valid() {
		return Result{}, fmt.Errorf("generate round: unknown difficulty %q", req.Difficulty)
	}
	count := req.Count
	if count <= 0 {
		count = DefaultCount(req.Mode, req.Difficulty)
	}
	seed := req.Seed
	if seed == 0 {
		seed = randutil.RandomSeed()
	}

	log := g.logger.With(
		zap.String("mode", string(req.Mode)),
		zap.String("difficulty", string(req.Difficulty)),
		zap.Uint64("seed", seed),
	)
	rc := problemgen.NewRoundContext(randutil.New(seed), g.catalog, req.Difficulty,
		catalog.BaseIcons(req.UnlockedSetIDs), req.RecentIcons, req.Memory)

	res := Result{Requested: count, Seed: seed}
	if req.Mode == question.ModeComparison && req.Difficulty == question.DifficultyChoi {
		for _, q := range problemgen.GenerateComparisonBatch(rc, count) {
			if g.accept(log, q) {
				res.Questions = append(res.Questions, q)
			}
		}
	} else {
		for i := range count {
			if err := ctx.Err(); err != nil {
				return Result{}, fmt.Errorf("generate round: %w", err)
			}
			q, ok := g.fillSlot(log, rc, req.Mode, i, count)
			if !ok {
				log.Warn("slot skipped", zap.Int("slot", i), zap.Int("attempts", g.cfg.AttemptsPerSlot))
				continue
			}
			res.Questions = append(res.Questions, q)
		}
	}

	res.IconsUsed = rc.IconsUsed()
	if res.Short() {
		log.Warn("round is short", zap.Int("generated", len(res.Questions)), zap.Int("requested", count))
	} else {
		log.Debug("round generated", zap.Int("questions", len(res.Questions)), zap.Int("icons", len(res.IconsUsed)))
	}
	return res, nil
}

func (g *Generator) fillSlot(log *zap.Logger, rc *problemgen.RoundContext, mode question.Mode, index, total int) (question.Question, bool) {
	for range g.cfg.AttemptsPerSlot {
		q, ok := problemgen.Generate(rc, mode, index, total)
		if ok && g.accept(log, q) {
			return q, true
		}
	}
	return nil, false
}

// accept runs the validator chain on a finished question.
func (g *Generator) accept(log *zap.Logger, q question.Question) bool {
	if err := problemgen.RunValidators(g.cfg.Validators, q); err != nil {
		log.Debug("question rejected",
			zap.String("signature", q.Header().Signature),
			zap.String("validator", err.Validator),
			zap.String("reason", err.Message),
		)
		return false
	}
	return true
}
