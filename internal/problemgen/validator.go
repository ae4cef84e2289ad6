package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
)

// Validator checks a generated question for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "structural", "options", "math-check".
	Name() string

	// Validate checks the question and returns nil if it passes.
	Validate(q question.Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// RunValidators runs the chain in order and returns the first failure.
func RunValidators(validators []Validator, q question.Question) *ValidationError {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}

func invalid(v Validator, format string, args ...any) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf(format, args...),
		Retryable: true,
	}
}
