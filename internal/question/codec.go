package question

import (
	"encoding/json"
	"fmt"
)

// Each variant marshals with a "type" discriminator so a List can be
// decoded back into concrete variants.

func (q *MathQuestion) MarshalJSON() ([]byte, error) {
	type plain MathQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindMath, (*plain)(q)})
}

func (q *ComparisonQuestion) MarshalJSON() ([]byte, error) {
	type plain ComparisonQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindComparison, (*plain)(q)})
}

func (q *CountingQuestion) MarshalJSON() ([]byte, error) {
	type plain CountingQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindCounting, (*plain)(q)})
}

func (q *NumberRecognitionQuestion) MarshalJSON() ([]byte, error) {
	type plain NumberRecognitionQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindNumberRecognition, (*plain)(q)})
}

func (q *MatchingPairsQuestion) MarshalJSON() ([]byte, error) {
	type plain MatchingPairsQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindMatchingPairs, (*plain)(q)})
}

func (q *NumberSequenceQuestion) MarshalJSON() ([]byte, error) {
	type plain NumberSequenceQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindNumberSequence, (*plain)(q)})
}

func (q *VisualPatternQuestion) MarshalJSON() ([]byte, error) {
	type plain VisualPatternQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindVisualPattern, (*plain)(q)})
}

func (q *OddOneOutQuestion) MarshalJSON() ([]byte, error) {
	type plain OddOneOutQuestion
	return json.Marshal(struct {
		Type Kind `json:"type"`
		*plain
	}{KindOddOneOut, (*plain)(q)})
}

// Decode restores a single question from its tagged JSON form.
func Decode(raw []byte) (Question, error) {
	var probe struct {
		Type Kind `json:"type"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}

	var q Question
	switch probe.Type {
	case KindMath:
		q = &MathQuestion{}
	case KindComparison:
		q = &ComparisonQuestion{}
	case KindCounting:
		q = &CountingQuestion{}
	case KindNumberRecognition:
		q = &NumberRecognitionQuestion{}
	case KindMatchingPairs:
		q = &MatchingPairsQuestion{}
	case KindNumberSequence:
		q = &NumberSequenceQuestion{}
	case KindVisualPattern:
		q = &VisualPatternQuestion{}
	case KindOddOneOut:
		q = &OddOneOutQuestion{}
	default:
		return nil, fmt.Errorf("decode question: unknown type %q", probe.Type)
	}

	if err := json.Unmarshal(raw, q); err != nil {
		return nil, fmt.Errorf("decode %s question: %w", probe.Type, err)
	}
	return q, nil
}

// List is an ordered set of questions that round-trips through JSON.
type List []Question

// UnmarshalJSON decodes each element by its "type" field.
func (l *List) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("decode question list: %w", err)
	}
	out := make(List, 0, len(raws))
	for i, raw := range raws {
		q, err := Decode(raw)
		if err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
		out = append(out, q)
	}
	*l = out
	return nil
}
