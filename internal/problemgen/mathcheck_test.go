package problemgen

import (
	"testing"

	"github.com/abhisek/mamchoi/internal/question"
)

func TestMathCheck_Correct(t *testing.T) {
	v := &MathCheckValidator{}
	if err := v.Validate(validMath()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	sub := &question.MathQuestion{
		Base:         base(question.ModeSubtraction),
		Operand1True: 9,
		Operand2True: 4,
		ResultTrue:   5,
		Operator:     question.OpSub,
		UnknownSlot:  question.SlotOperand2,
		Answer:       4,
	}
	if err := v.Validate(sub); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestMathCheck_WrongResult(t *testing.T) {
	q := validMath()
	q.ResultTrue = 8
	q.Answer = 8
	err := (&MathCheckValidator{}).Validate(q)
	if err == nil {
		t.Fatal("expected error for 3 + 4 = 8")
	}
	if err.Validator != "math-check" {
		t.Errorf("expected validator %q, got %q", "math-check", err.Validator)
	}
}

func TestMathCheck_AnswerNotSlot(t *testing.T) {
	q := validMath()
	q.UnknownSlot = question.SlotOperand1
	if (&MathCheckValidator{}).Validate(q) == nil {
		t.Fatal("expected error when answer is not the hidden operand")
	}
}

func TestMathCheck_Comparison(t *testing.T) {
	v := &MathCheckValidator{}
	tests := []struct {
		a, b int
		ans  question.Relation
		ok   bool
	}{
		{5, 5, question.Equal, true},
		{2, 9, question.Less, true},
		{9, 2, question.Greater, true},
		{9, 2, question.Less, false},
		{5, 5, question.Greater, false},
	}
	for _, tc := range tests {
		q := &question.ComparisonQuestion{Base: base(question.ModeComparison), Number1: tc.a, Number2: tc.b, Answer: tc.ans}
		err := v.Validate(q)
		if (err == nil) != tc.ok {
			t.Errorf("%d %s %d: got %v", tc.a, tc.ans, tc.b, err)
		}
	}
}

func TestMathCheck_OtherVariantsPass(t *testing.T) {
	if err := (&MathCheckValidator{}).Validate(validSequence()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
