package problemgen

import (
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

type sequenceShape struct {
	lo, hi  int
	lengths []int
	blanks  []int
	tier    string
}

var (
	mamSequence  = sequenceShape{lo: 1, hi: 15, lengths: []int{3, 4, 5}, blanks: []int{1, 2}, tier: "m"}
	choiSequence = sequenceShape{lo: 10, hi: 30, lengths: []int{5, 6, 7}, blanks: []int{2, 3}, tier: "c"}
)

// GenerateNumberSequence builds a run of consecutive numbers with blanks.
// Blanks never take the first or last position, so both ends stay visible.
// Repeats are rejected for the whole session.
func GenerateNumberSequence(rc *RoundContext) (*question.NumberSequenceQuestion, bool) {
	shape := choiSequence
	dir := question.Ascending
	if rc.mam() {
		shape = mamSequence
	} else if rc.Rand.Chance(0.5) {
		dir = question.Descending
	}
	length, _ := randutil.Pick(rc.Rand, shape.lengths)
	blanks, _ := randutil.Pick(rc.Rand, shape.blanks)
	blanks = min(blanks, length-2)

	q, ok := randutil.TryN(sequenceAttempts, func() (*question.NumberSequenceQuestion, bool) {
		return rc.drawSequence(shape, dir, length, blanks), true
	}, func(q *question.NumberSequenceQuestion) bool {
		return !rc.Memory.Sequences.Has(q.Signature) && !rc.Signatures.Has(q.Signature)
	})
	if !ok {
		return nil, false
	}
	rc.Memory.Sequences.Add(q.Signature)
	rc.Signatures.Add(q.Signature)
	return q, true
}

func (rc *RoundContext) drawSequence(shape sequenceShape, dir question.Direction, length, blanks int) *question.NumberSequenceQuestion {
	var start int
	if dir == question.Ascending {
		start = rc.Rand.Between(shape.lo, shape.hi-length+1)
	} else {
		start = rc.Rand.Between(shape.lo+length-1, shape.hi)
	}

	interior := randutil.Shuffle(rc.Rand, intRange(1, length-2))[:blanks]
	return rc.newSequence(shape.tier, dir, start, length, interior)
}

// newSequence lays out length consecutive values from start, leaving the
// given positions blank.
func (rc *RoundContext) newSequence(tier string, dir question.Direction, start, length int, blankAt []int) *question.NumberSequenceQuestion {
	seq := make([]*int, length)
	answers := make([]int, 0, len(blankAt))
	parts := make([]string, length)
	for i := range seq {
		v := start + i
		if dir == question.Descending {
			v = start - i
		}
		if slices.Contains(blankAt, i) {
			answers = append(answers, v)
			parts[i] = "_"
			continue
		}
		seq[i] = &v
		parts[i] = strconv.Itoa(v)
	}

	prompt := "Hoàn thành dãy số tăng dần:"
	if dir == question.Descending {
		prompt = "Hoàn thành dãy số giảm dần:"
	}
	sig := "seq-" + tier + "-" + string(dir) + "-" + strings.Join(parts, ",")
	return &question.NumberSequenceQuestion{
		Base:      rc.header(question.ModeNumberSequence, prompt, sig),
		Sequence:  seq,
		Answers:   answers,
		Direction: dir,
	}
}
