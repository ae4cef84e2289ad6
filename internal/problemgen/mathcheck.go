package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
)

// MathCheckValidator independently recomputes the arithmetic behind math
// and comparison questions. Other variants pass through.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q question.Question) *ValidationError {
	switch q := q.(type) {
	case *question.MathQuestion:
		computed, err := compute(q.Operand1True, q.Operator, q.Operand2True)
		if err != nil {
			return invalid(v, "%v", err)
		}
		if computed != q.ResultTrue {
			return invalid(v, "computed %d but question claims %d", computed, q.ResultTrue)
		}
		if q.Operand1True < 0 || q.Operand2True < 0 || q.ResultTrue < 0 {
			return invalid(v, "negative value in %d %s %d = %d", q.Operand1True, q.Operator, q.Operand2True, q.ResultTrue)
		}
		if want := q.SlotValue(q.UnknownSlot); q.Answer != want {
			return invalid(v, "answer %d does not match %s value %d", q.Answer, q.UnknownSlot, want)
		}
	case *question.ComparisonQuestion:
		if want := question.Compare(q.Number1, q.Number2); q.Answer != want {
			return invalid(v, "%d ? %d should be %q, not %q", q.Number1, q.Number2, want, q.Answer)
		}
	}
	return nil
}

func compute(a int, op question.Operator, b int) (int, error) {
	switch op {
	case question.OpAdd:
		return a + b, nil
	case question.OpSub:
		return a - b, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", op)
	}
}
