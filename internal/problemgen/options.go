package problemgen

import (
	"github.com/abhisek/mamchoi/internal/catalog"
	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// OptionsValidator checks multiple-choice integrity: unique option ids,
// exactly one correct option, and for odd-one-out a correct answer that
// is still the only icon its rule isolates.
type OptionsValidator struct {
	// Catalog resolves odd-one-out emojis. Nil uses catalog.Default().
	Catalog *catalog.Catalog
}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q question.Question) *ValidationError {
	switch q := q.(type) {
	case *question.NumberRecognitionQuestion:
		ids := make([]string, len(q.Options))
		correct := 0
		for i, o := range q.Options {
			ids[i] = o.ID
			if o.IsCorrect {
				correct++
			}
		}
		return v.check(ids, correct)
	case *question.VisualPatternQuestion:
		ids := make([]string, len(q.Options))
		correct := 0
		for i, o := range q.Options {
			ids[i] = o.ID
			if o.IsCorrect {
				correct++
			}
		}
		return v.check(ids, correct)
	case *question.MatchingPairsQuestion:
		ids := make([]string, len(q.Items))
		for i, it := range q.Items {
			ids[i] = it.ID
		}
		return v.unique(ids)
	case *question.OddOneOutQuestion:
		return v.oddOneOut(q)
	default:
		return nil
	}
}

func (v *OptionsValidator) check(ids []string, correct int) *ValidationError {
	if err := v.unique(ids); err != nil {
		return err
	}
	if correct != 1 {
		return invalid(v, "expected exactly one correct option, got %d", correct)
	}
	return nil
}

func (v *OptionsValidator) unique(ids []string) *ValidationError {
	seen := randutil.NewSet()
	for _, id := range ids {
		if id == "" || !seen.Claim(id) {
			return invalid(v, "option id %q is empty or repeated", id)
		}
	}
	return nil
}

func (v *OptionsValidator) oddOneOut(q *question.OddOneOutQuestion) *ValidationError {
	ids := make([]string, len(q.Options))
	emojis := randutil.NewSet()
	for i, o := range q.Options {
		ids[i] = o.ID
		if !emojis.Claim(o.Emoji) {
			return invalid(v, "emoji %s appears twice", o.Emoji)
		}
	}
	if err := v.unique(ids); err != nil {
		return err
	}
	odd, ok := q.CorrectOption()
	if !ok {
		return invalid(v, "correct answer %q is not an option", q.CorrectAnswerID)
	}

	cat := v.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	rule := catalog.Rule(q.Rule)
	if !rule.Valid() {
		return invalid(v, "unknown rule %q", q.Rule)
	}
	icons := make([]catalog.IconData, 0, len(q.Options))
	for _, o := range q.Options {
		d, ok := cat.Lookup(o.Emoji)
		if !ok {
			return invalid(v, "emoji %s is not in the catalog", o.Emoji)
		}
		icons = append(icons, d)
	}
	if loner, ok := singleOut(icons, rule, false); !ok || loner != odd.Emoji {
		return invalid(v, "rule %s does not single out %s", rule, odd.Emoji)
	}
	if IsAmbiguous(icons, odd.Emoji, rule) {
		return invalid(v, "another rule singles out a different option")
	}
	return nil
}
