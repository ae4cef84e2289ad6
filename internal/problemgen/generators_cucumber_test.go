//go:build cucumber

package problemgen

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// TestGeneratorScenarios runs the worked-example feature scenarios.
func TestGeneratorScenarios(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "generators",
		ScenarioInitializer: InitializeGeneratorScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{filepath.Join("testdata", "features")},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeGeneratorScenario wires the generator steps.
func InitializeGeneratorScenario(ctx *godog.ScenarioContext) {
	state := &generatorScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*state = generatorScenarioState{}
		return ctx, nil
	})

	ctx.Step(`^a (Mầm|Chồi) round$`, state.givenRound)
	ctx.Step(`^the addition (\d+) \+ (\d+) with the result hidden$`, state.givenAddition)
	ctx.Step(`^the comparison of (\d+) and (\d+)$`, state.givenComparison)
	ctx.Step(`^an ascending sequence of length (\d+) from (\d+) with a blank at (\d+)$`, state.givenSequence)
	ctx.Step(`^the icons "([^"]+)"$`, state.givenIcons)
	ctx.Step(`^they are grouped by "([^"]+)"$`, state.whenGrouped)
	ctx.Step(`^the answer is (\d+)$`, state.thenIntAnswer)
	ctx.Step(`^the answer is "([^"]+)"$`, state.thenRelation)
	ctx.Step(`^the sequence reads "([^"]+)"$`, state.thenSequence)
	ctx.Step(`^the answers are "([^"]+)"$`, state.thenAnswers)
	ctx.Step(`^the question passes validation$`, state.thenValid)
	ctx.Step(`^"([^"]+)" is the odd one out$`, state.thenOdd)
	ctx.Step(`^no other rule singles out a different icon$`, state.thenUnambiguous)
}

type generatorScenarioState struct {
	rc    *RoundContext
	q     question.Question
	icons []catalog.IconData
	rule  catalog.Rule
	loner string
}

func (s *generatorScenarioState) givenRound(tier string) error {
	d := question.DifficultyMam
	if tier == "Chồi" {
		d = question.DifficultyChoi
	}
	s.rc = NewRoundContext(randutil.New(1), catalog.Default(), d, catalog.BaseIcons(nil), nil, nil)
	return nil
}

func (s *generatorScenarioState) givenAddition(a, b int) error {
	s.q = &question.MathQuestion{
		Base:         s.rc.header(question.ModeAddition, mathPrompt, mathSignature(question.OpAdd, a, b, a+b, question.SlotResult)),
		Operand1True: a,
		Operand2True: b,
		ResultTrue:   a + b,
		Operator:     question.OpAdd,
		UnknownSlot:  question.SlotResult,
		Answer:       a + b,
	}
	return nil
}

func (s *generatorScenarioState) givenComparison(a, b int) error {
	s.q = s.rc.newComparison(a, b)
	return nil
}

func (s *generatorScenarioState) givenSequence(length, start, blank int) error {
	s.q = s.rc.newSequence("m", question.Ascending, start, length, []int{blank})
	return nil
}

func (s *generatorScenarioState) givenIcons(list string) error {
	for _, e := range strings.Fields(list) {
		d, ok := catalog.Default().Lookup(e)
		if !ok {
			return fmt.Errorf("icon %s is not in the catalog", e)
		}
		s.icons = append(s.icons, d)
	}
	return nil
}

func (s *generatorScenarioState) whenGrouped(rule string) error {
	s.rule = catalog.Rule(rule)
	loner, ok := singleOut(s.icons, s.rule, false)
	if !ok {
		return fmt.Errorf("rule %s does not single out one icon", rule)
	}
	s.loner = loner
	return nil
}

func (s *generatorScenarioState) thenIntAnswer(want int) error {
	q, ok := s.q.(*question.MathQuestion)
	if !ok {
		return fmt.Errorf("expected a math question, got %T", s.q)
	}
	if q.Answer != want || !CheckAnswer(q, strconv.Itoa(want)) {
		return fmt.Errorf("answer %d, want %d", q.Answer, want)
	}
	return nil
}

func (s *generatorScenarioState) thenRelation(want string) error {
	q, ok := s.q.(*question.ComparisonQuestion)
	if !ok {
		return fmt.Errorf("expected a comparison question, got %T", s.q)
	}
	if string(q.Answer) != want {
		return fmt.Errorf("answer %q, want %q", q.Answer, want)
	}
	return nil
}

func (s *generatorScenarioState) thenSequence(want string) error {
	q := s.q.(*question.NumberSequenceQuestion)
	parts := make([]string, len(q.Sequence))
	for i, v := range q.Sequence {
		parts[i] = "_"
		if v != nil {
			parts[i] = strconv.Itoa(*v)
		}
	}
	if got := strings.Join(parts, ","); got != want {
		return fmt.Errorf("sequence %s, want %s", got, want)
	}
	return nil
}

func (s *generatorScenarioState) thenAnswers(want string) error {
	q := s.q.(*question.NumberSequenceQuestion)
	if !CheckAnswer(q, want) {
		return fmt.Errorf("answers %v do not match %s", q.Answers, want)
	}
	return nil
}

func (s *generatorScenarioState) thenValid() error {
	if err := RunValidators(DefaultConfig().Validators, s.q); err != nil {
		return err
	}
	return nil
}

func (s *generatorScenarioState) thenOdd(want string) error {
	if s.loner != want {
		return fmt.Errorf("odd one out %s, want %s", s.loner, want)
	}
	return nil
}

func (s *generatorScenarioState) thenUnambiguous() error {
	if IsAmbiguous(s.icons, s.loner, s.rule) {
		return fmt.Errorf("set is ambiguous")
	}
	return nil
}
