package problemgen

// Draw budgets of the individual generators. A generator gives up and
// reports failure once its budget is spent.
const (
	mathAttempts        = 50
	comparisonAttempts  = 50
	countingAttempts    = 20
	recognitionAttempts = 30
	matchingAttempts    = 50
	sequenceAttempts    = 50
	visualAttempts      = 20
	oddOneOutAttempts   = 500
)

// DefaultAttemptsPerSlot is how often a round slot is retried before it
// is skipped.
const DefaultAttemptsPerSlot = 20

// Config controls how finished questions are checked and how hard a round
// slot is retried.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// AttemptsPerSlot bounds the generator calls for one question slot.
	AttemptsPerSlot int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&OptionsValidator{},
			&MathCheckValidator{},
		},
		AttemptsPerSlot: DefaultAttemptsPerSlot,
	}
}
