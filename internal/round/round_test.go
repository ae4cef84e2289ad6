package round

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mamchoi/internal/problemgen"
	"github.com/abhisek/mamchoi/internal/question"
)

func TestDefaultCount(t *testing.T) {
	tests := []struct {
		mode question.Mode
		d    question.Difficulty
		want int
	}{
		{question.ModeAddition, question.DifficultyMam, 20},
		{question.ModeComparison, question.DifficultyMam, 20},
		{question.ModeComparison, question.DifficultyChoi, 25},
		{question.ModeVisualPattern, question.DifficultyMam, 10},
		{question.ModeVisualPattern, question.DifficultyChoi, 15},
		{question.ModeOddOneOut, question.DifficultyMam, 10},
		{question.ModeNumberSequence, question.DifficultyChoi, 15},
		{question.ModeMatchingPairs, question.DifficultyChoi, 20},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DefaultCount(tc.mode, tc.d), "%s/%s", tc.mode, tc.d)
	}
}

func TestGenerate_InvalidRequest(t *testing.T) {
	g := New(problemgen.DefaultConfig())
	_, err := g.Generate(context.Background(), Request{Mode: "chess", Difficulty: question.DifficultyMam})
	assert.Error(t, err)
	_, err = g.Generate(context.Background(), Request{Mode: question.ModeAddition, Difficulty: "la"})
	assert.Error(t, err)
}

func TestGenerate_FullRound(t *testing.T) {
	g := New(problemgen.DefaultConfig())
	res, err := g.Generate(context.Background(), Request{
		Mode:       question.ModeAddition,
		Difficulty: question.DifficultyChoi,
		Seed:       7,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, res.Requested)
	assert.Len(t, res.Questions, 20)
	assert.False(t, res.Short())
	assert.Equal(t, uint64(7), res.Seed)

	sigs := map[string]bool{}
	for _, q := range res.Questions {
		assert.False(t, sigs[q.Header().Signature])
		sigs[q.Header().Signature] = true
	}
}

func TestGenerate_ChoiComparisonBatch(t *testing.T) {
	g := New(problemgen.DefaultConfig())
	res, err := g.Generate(context.Background(), Request{
		Mode:       question.ModeComparison,
		Difficulty: question.DifficultyChoi,
		Seed:       3,
	})
	require.NoError(t, err)
	require.Len(t, res.Questions, 25)

	equals := 0
	for i, q := range res.Questions {
		c := q.(*question.ComparisonQuestion)
		if c.Answer != question.Equal {
			continue
		}
		equals++
		if i > 0 {
			assert.NotEqual(t, question.Equal, res.Questions[i-1].(*question.ComparisonQuestion).Answer)
		}
	}
	assert.GreaterOrEqual(t, equals, problemgen.MinEqualsPerRound)
}

func TestGenerate_IconsUsedSorted(t *testing.T) {
	g := New(problemgen.DefaultConfig())
	res, err := g.Generate(context.Background(), Request{
		Mode:       question.ModeCounting,
		Difficulty: question.DifficultyMam,
		Count:      5,
		Seed:       1,
	})
	require.NoError(t, err)
	require.Len(t, res.Questions, 5)
	assert.IsNonDecreasing(t, res.IconsUsed)
	for _, q := range res.Questions {
		assert.Contains(t, res.IconsUsed, q.(*question.CountingQuestion).IconType)
	}
}

func TestGenerate_ShortRoundIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	g := New(problemgen.DefaultConfig(), WithLogger(zap.New(core)))

	res, err := g.Generate(context.Background(), Request{
		Mode:       question.ModeMatchingPairs,
		Difficulty: question.DifficultyMam,
		Count:      3,
		Seed:       1,
	})
	require.NoError(t, err)
	assert.Len(t, res.Questions, 3)
	assert.Zero(t, logs.FilterMessage("round is short").Len())

	// Mầm sequences run out long before 200 distinct ones.
	res, err = g.Generate(context.Background(), Request{
		Mode:       question.ModeNumberSequence,
		Difficulty: question.DifficultyMam,
		Count:      200,
		Seed:       1,
	})
	require.NoError(t, err)
	assert.True(t, res.Short())
	assert.Equal(t, 1, logs.FilterMessage("round is short").Len())
	assert.NotZero(t, logs.FilterMessage("slot skipped").Len())
}

func TestGenerate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(problemgen.DefaultConfig()).Generate(ctx, Request{
		Mode:       question.ModeAddition,
		Difficulty: question.DifficultyMam,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_SessionMemorySpansRounds(t *testing.T) {
	g := New(problemgen.DefaultConfig())
	memory := problemgen.NewSessionMemory()
	seen := map[string]bool{}
	for seed := uint64(1); seed <= 3; seed++ {
		res, err := g.Generate(context.Background(), Request{
			Mode:       question.ModeVisualPattern,
			Difficulty: question.DifficultyChoi,
			Seed:       seed,
			Memory:     memory,
		})
		require.NoError(t, err)
		for _, q := range res.Questions {
			sig := q.Header().Signature
			assert.False(t, seen[sig], "pattern %s repeated across rounds", sig)
			seen[sig] = true
		}
	}
}
