package rewards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mamchoi/internal/randutil"
	"github.com/abhisek/mamchoi/internal/store"
)

// mockSessionRepo implements store.SessionRepo for rewards tests.
type mockSessionRepo struct {
	saved   []store.SessionRecord
	pruned  []int
	saveErr error
}

func (m *mockSessionRepo) Save(_ context.Context, rec *store.SessionRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, *rec)
	return nil
}
func (m *mockSessionRepo) Recent(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return m.saved, nil
}
func (m *mockSessionRepo) Prune(_ context.Context, keep int) error {
	m.pruned = append(m.pruned, keep)
	return nil
}

// failingIcons makes the last write of FinishRound fail.
type failingIcons struct {
	store.IconHistoryRepo
}

func (failingIcons) ReplaceRecentIcons(context.Context, []string) error {
	return errors.New("icons table locked")
}

// brokenIconsTx hands FinishRound the store's transaction with the icon
// history swapped for failingIcons.
type brokenIconsTx struct {
	st *store.Store
}

func (b brokenIconsTx) WithTx(ctx context.Context, fn func(store.Repos) error) error {
	return b.st.WithTx(ctx, func(r store.Repos) error {
		r.Icons = failingIcons{r.Icons}
		return fn(r)
	})
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func newStoreService(t *testing.T, s *store.Store, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithRand(randutil.New(3)), WithTransactor(s)}, opts...)
	return NewService(s.ProfileRepo(), s.IconHistoryRepo(), s.SessionRepo(), opts...)
}

func TestFinishRoundWithoutRepos(t *testing.T) {
	svc := NewService(nil, nil, nil, WithRand(randutil.New(1)))

	award, err := svc.FinishRound(context.Background(), Outcome{Score: 9, Total: 10})
	require.NoError(t, err)
	assert.Equal(t, 5, award.Stars)
	assert.Equal(t, 5, award.TotalStars)
	assert.False(t, award.Saved)
	assert.Empty(t, award.NewSets)
	assert.Equal(t, MessageCongrats, award.Message.Kind)
}

func TestFinishRoundPerfectRoundNotSaved(t *testing.T) {
	sessions := &mockSessionRepo{}
	svc := NewService(nil, nil, sessions)

	award, err := svc.FinishRound(context.Background(), Outcome{Mode: "counting", Difficulty: "mam", Score: 10, Total: 10})
	require.NoError(t, err)
	assert.False(t, award.Saved)
	assert.Empty(t, sessions.saved)
}

func TestFinishRoundSavesImperfectRound(t *testing.T) {
	sessions := &mockSessionRepo{}
	svc := NewService(nil, nil, sessions, WithLimits(0, 5))

	attempts := []store.IncorrectAttempt{{QuestionID: "q1", Prompt: "Bé hãy tính:", Answer: "3"}}
	award, err := svc.FinishRound(context.Background(), Outcome{
		Mode: "addition", Difficulty: "choi", Score: 9, Total: 10, IncorrectAttempts: attempts,
	})
	require.NoError(t, err)
	assert.True(t, award.Saved)
	require.Len(t, sessions.saved, 1)
	assert.Equal(t, 5, sessions.saved[0].Stars)
	assert.Equal(t, attempts, sessions.saved[0].IncorrectAttempts)
	assert.Equal(t, []int{5}, sessions.pruned)
}

func TestFinishRoundSaveError(t *testing.T) {
	sessions := &mockSessionRepo{saveErr: errors.New("disk full")}
	svc := NewService(nil, nil, sessions)

	_, err := svc.FinishRound(context.Background(), Outcome{Score: 1, Total: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestFinishRoundUnlocksSets(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	_, err := s.ProfileRepo().AddStars(ctx, 17)
	require.NoError(t, err)

	svc := newStoreService(t, s)
	award, err := svc.FinishRound(ctx, Outcome{Mode: "counting", Difficulty: "mam", Score: 8, Total: 10})
	require.NoError(t, err)

	assert.Equal(t, 4, award.Stars)
	assert.Equal(t, 21, award.TotalStars)
	require.Len(t, award.NewSets, 1)
	assert.Equal(t, "farm_animals", award.NewSets[0].ID)

	progress, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 21, progress.TotalStars)
	assert.Equal(t, []string{"farm_animals"}, progress.UnlockedSetIDs)

	// A second round does not unlock the same set again.
	award, err = svc.FinishRound(ctx, Outcome{Mode: "counting", Difficulty: "mam", Score: 1, Total: 10})
	require.NoError(t, err)
	assert.Empty(t, award.NewSets)
	assert.Equal(t, 21, award.TotalStars)
}

func TestFinishRoundMergesIcons(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	require.NoError(t, s.IconHistoryRepo().ReplaceRecentIcons(ctx, []string{"🐶", "🐱", "🐭"}))

	svc := newStoreService(t, s, WithLimits(4, 0))
	_, err := svc.FinishRound(ctx, Outcome{Score: 10, Total: 10, IconsUsed: []string{"🚗", "🐱"}})
	require.NoError(t, err)

	icons, err := s.IconHistoryRepo().RecentIcons(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"🚗", "🐱", "🐶", "🐭"}, icons)
}

func TestFinishRoundKeepsLatestSessions(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	svc := newStoreService(t, s)

	for score := range 5 {
		_, err := svc.FinishRound(ctx, Outcome{Mode: "subtraction", Difficulty: "mam", Score: score, Total: 10})
		require.NoError(t, err)
	}

	recs, err := s.SessionRepo().Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, MaxSessionsToStore)
	assert.Equal(t, 4, recs[0].Score)
	assert.Equal(t, 2, recs[2].Score)
}

func TestFinishRoundFailureWritesNothing(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()
	_, err := s.ProfileRepo().AddStars(ctx, 18)
	require.NoError(t, err)

	svc := NewService(s.ProfileRepo(), s.IconHistoryRepo(), s.SessionRepo(),
		WithRand(randutil.New(3)), WithTransactor(brokenIconsTx{s}))
	award, err := svc.FinishRound(ctx, Outcome{
		Mode: "counting", Difficulty: "mam", Score: 8, Total: 10,
		IncorrectAttempts: []store.IncorrectAttempt{{QuestionID: "q1", Answer: "2"}},
		IconsUsed:         []string{"🐶"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "icons table locked")
	assert.Nil(t, award)

	progress, err := svc.Progress(ctx)
	require.NoError(t, err)
	assert.Equal(t, 18, progress.TotalStars)
	assert.Empty(t, progress.UnlockedSetIDs)
	assert.Empty(t, progress.RecentIcons)
	recs, err := s.SessionRepo().Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestFinishRoundLogs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	svc := NewService(nil, nil, nil, WithLogger(zap.New(core)))

	_, err := svc.FinishRound(context.Background(), Outcome{Mode: "counting", Difficulty: "mam", Score: 3, Total: 10})
	require.NoError(t, err)

	entries := logs.FilterMessage("round finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "counting", fields["mode"])
	assert.EqualValues(t, 1, fields["stars"])
}
