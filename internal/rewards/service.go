package rewards

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/randutil"
	"github.com/abhisek/mamchoi/internal/store"
)

// MaxSessionsToStore is how many reviewable sessions are kept.
const MaxSessionsToStore = 3

// Outcome describes a finished round.
type Outcome struct {
	Mode              string
	Difficulty        string
	Score             int
	Total             int
	IncorrectAttempts []store.IncorrectAttempt
	IconsUsed         []string
	Duration          time.Duration
}

// Award is what a finished round earned.
type Award struct {
	Stars      int
	TotalStars int
	NewSets    []catalog.ImageSet
	Message    EndMessage
	// Saved reports whether the round was kept for review.
	Saved bool
}

// Progress is the stored state a new round starts from.
type Progress struct {
	TotalStars     int
	UnlockedSetIDs []string
	RecentIcons    []string
}

// Transactor runs fn with repositories whose writes commit or roll back
// together. *store.Store implements it.
type Transactor interface {
	WithTx(ctx context.Context, fn func(store.Repos) error) error
}

// Service applies round outcomes to the stored profile. With nil repos it
// only computes awards.
type Service struct {
	profile  store.ProfileRepo
	icons    store.IconHistoryRepo
	sessions store.SessionRepo
	tx       Transactor

	rand        *randutil.Rand
	logger      *zap.Logger
	maxRecent   int
	maxSessions int
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithRand fixes the source used to pick messages.
func WithRand(r *randutil.Rand) Option {
	return func(s *Service) { s.rand = r }
}

// WithTransactor makes FinishRound apply the session, stars and icon
// history in one transaction, so a failed round leaves nothing half
// written. The repos given to NewService still serve Progress.
func WithTransactor(t Transactor) Option {
	return func(s *Service) { s.tx = t }
}

// WithLimits overrides the icon history cap and the number of kept
// sessions. Values <= 0 keep the defaults.
func WithLimits(maxRecentIcons, maxSessions int) Option {
	return func(s *Service) {
		if maxRecentIcons > 0 {
			s.maxRecent = maxRecentIcons
		}
		if maxSessions > 0 {
			s.maxSessions = maxSessions
		}
	}
}

// NewService creates a Service over the given repos.
func NewService(profile store.ProfileRepo, icons store.IconHistoryRepo, sessions store.SessionRepo, opts ...Option) *Service {
	s := &Service{
		profile:     profile,
		icons:       icons,
		sessions:    sessions,
		logger:      zap.NewNop(),
		maxRecent:   MaxRecentIcons,
		maxSessions: MaxSessionsToStore,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rand == nil {
		s.rand = randutil.NewRandom()
	}
	return s
}

// Progress loads the stored star total, unlocked sets and icon history.
func (s *Service) Progress(ctx context.Context) (Progress, error) {
	var p Progress
	if s.profile != nil {
		total, err := s.profile.TotalStars(ctx)
		if err != nil {
			return p, fmt.Errorf("load stars: %w", err)
		}
		sets, err := s.profile.UnlockedSets(ctx)
		if err != nil {
			return p, fmt.Errorf("load unlocked sets: %w", err)
		}
		p.TotalStars, p.UnlockedSetIDs = total, sets
	}
	if s.icons != nil {
		icons, err := s.icons.RecentIcons(ctx)
		if err != nil {
			return p, fmt.Errorf("load recent icons: %w", err)
		}
		p.RecentIcons = icons
	}
	return p, nil
}

// FinishRound stores a reviewable session when the round had mistakes,
// adds the earned stars, unlocks every set the new total reaches and
// moves the round's icons to the front of the history.
func (s *Service) FinishRound(ctx context.Context, o Outcome) (*Award, error) {
	award := &Award{
		Stars:   StarsForScore(o.Score, o.Total),
		Message: EndOfRound(s.rand, o.Score, o.Total),
	}
	logger := s.logger.With(
		zap.String("mode", o.Mode),
		zap.String("difficulty", o.Difficulty),
		zap.Int("score", o.Score),
		zap.Int("total", o.Total),
	)

	apply := func(r store.Repos) error {
		if len(o.IncorrectAttempts) > 0 || o.Score < o.Total {
			saved, err := s.saveSession(ctx, r.Sessions, o, award.Stars)
			if err != nil {
				return err
			}
			award.Saved = saved
		}
		if err := s.addStars(ctx, r.Profile, award); err != nil {
			return err
		}
		return s.mergeIcons(ctx, r.Icons, o.IconsUsed)
	}

	var err error
	if s.tx != nil {
		err = s.tx.WithTx(ctx, apply)
	} else {
		err = apply(store.Repos{Profile: s.profile, Icons: s.icons, Sessions: s.sessions})
	}
	if err != nil {
		logger.Warn("round not recorded", zap.Error(err))
		return nil, err
	}

	logger.Info("round finished",
		zap.Int("stars", award.Stars),
		zap.Int("total_stars", award.TotalStars),
		zap.Int("new_sets", len(award.NewSets)),
		zap.Duration("duration", o.Duration),
	)
	return award, nil
}

func (s *Service) saveSession(ctx context.Context, sessions store.SessionRepo, o Outcome, stars int) (bool, error) {
	if sessions == nil {
		return false, nil
	}
	rec := &store.SessionRecord{
		Mode:              o.Mode,
		Difficulty:        o.Difficulty,
		Score:             o.Score,
		Total:             o.Total,
		Stars:             stars,
		IncorrectAttempts: o.IncorrectAttempts,
	}
	if err := sessions.Save(ctx, rec); err != nil {
		return false, fmt.Errorf("save session: %w", err)
	}
	if err := sessions.Prune(ctx, s.maxSessions); err != nil {
		return false, fmt.Errorf("prune sessions: %w", err)
	}
	return true, nil
}

func (s *Service) addStars(ctx context.Context, profile store.ProfileRepo, award *Award) error {
	if profile == nil {
		award.TotalStars = award.Stars
		award.NewSets = NewlyUnlocked(award.TotalStars, nil)
		return nil
	}
	total, err := profile.AddStars(ctx, award.Stars)
	if err != nil {
		return fmt.Errorf("add stars: %w", err)
	}
	award.TotalStars = total

	unlocked, err := profile.UnlockedSets(ctx)
	if err != nil {
		return fmt.Errorf("load unlocked sets: %w", err)
	}
	award.NewSets = NewlyUnlocked(total, unlocked)
	if len(award.NewSets) == 0 {
		return nil
	}
	ids := make([]string, len(award.NewSets))
	for i, set := range award.NewSets {
		ids[i] = set.ID
	}
	if err := profile.Unlock(ctx, ids...); err != nil {
		return fmt.Errorf("unlock sets: %w", err)
	}
	return nil
}

func (s *Service) mergeIcons(ctx context.Context, icons store.IconHistoryRepo, used []string) error {
	if icons == nil || len(used) == 0 {
		return nil
	}
	previous, err := icons.RecentIcons(ctx)
	if err != nil {
		return fmt.Errorf("load recent icons: %w", err)
	}
	merged := MergeRecentIcons(used, previous, s.maxRecent)
	if err := icons.ReplaceRecentIcons(ctx, merged); err != nil {
		return fmt.Errorf("save recent icons: %w", err)
	}
	return nil
}
