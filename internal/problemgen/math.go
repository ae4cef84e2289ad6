package problemgen

import (
	"fmt"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const mathPrompt = "Bé hãy tính:"

// slotWeights orders result, operand2, operand1.
var (
	mamSlotWeights  = []float64{0.6, 0.2, 0.2}
	choiSlotWeights = []float64{0.4, 0.3, 0.3}
	weightedSlots   = []question.Slot{question.SlotResult, question.SlotOperand2, question.SlotOperand1}
)

func mathSignature(op question.Operator, a, b, res int, slot question.Slot) string {
	return fmt.Sprintf("math-%s-%d-%d-%d-%s", op, a, b, res, slot)
}

func (rc *RoundContext) pickSlot() question.Slot {
	w := choiSlotWeights
	if rc.mam() {
		w = mamSlotWeights
	}
	return weightedSlots[rc.Rand.Weighted(w)]
}

// band returns a value in [smallLo, 10] with probability pSmall, else in
// [11, 20].
func band(r *randutil.Rand, pSmall float64, smallLo int) int {
	if r.Chance(pSmall) {
		return r.Between(smallLo, 10)
	}
	return r.Between(11, 20)
}

// GenerateAddition returns a sum with one hidden slot. Mầm sums stay within
// 2-10; Chồi sums reach 20.
func GenerateAddition(rc *RoundContext) (*question.MathQuestion, bool) {
	return rc.generateMath(question.ModeAddition, question.OpAdd, func() *question.MathQuestion {
		slot := rc.pickSlot()
		var res int
		switch {
		case rc.mam():
			res = rc.Rand.Between(2, 10)
		case slot == question.SlotResult:
			res = band(rc.Rand, 0.4, 2)
		default:
			res = band(rc.Rand, 0.3, 2)
		}
		q := &question.MathQuestion{Operator: question.OpAdd, UnknownSlot: slot, ResultTrue: res}
		if slot == question.SlotOperand1 {
			q.Operand2True = rc.Rand.Between(1, res-1)
			q.Operand1True = res - q.Operand2True
		} else {
			q.Operand1True = rc.Rand.Between(1, res-1)
			q.Operand2True = res - q.Operand1True
		}
		return q
	})
}

// GenerateSubtraction returns a difference with one hidden slot. Every
// value stays non-negative and within the tier's range.
func GenerateSubtraction(rc *RoundContext) (*question.MathQuestion, bool) {
	return rc.generateMath(question.ModeSubtraction, question.OpSub, func() *question.MathQuestion {
		slot := rc.pickSlot()
		q := &question.MathQuestion{Operator: question.OpSub, UnknownSlot: slot}
		switch slot {
		case question.SlotResult:
			if rc.mam() {
				q.Operand1True = rc.Rand.Between(1, 10)
			} else {
				q.Operand1True = band(rc.Rand, 0.4, 1)
			}
			q.Operand2True = rc.Rand.Between(0, q.Operand1True)
			q.ResultTrue = q.Operand1True - q.Operand2True
		case question.SlotOperand2:
			if rc.mam() {
				q.Operand1True = rc.Rand.Between(2, 10)
			} else {
				q.Operand1True = band(rc.Rand, 0.3, 2)
			}
			q.ResultTrue = rc.Rand.Between(0, q.Operand1True-1)
			q.Operand2True = q.Operand1True - q.ResultTrue
		default:
			limit, maxB := 20, 10
			if rc.mam() {
				limit, maxB = 10, 5
			}
			q.Operand2True = rc.Rand.Between(1, maxB)
			q.ResultTrue = rc.Rand.Between(0, limit-q.Operand2True)
			q.Operand1True = q.Operand2True + q.ResultTrue
		}
		return q
	})
}

func (rc *RoundContext) generateMath(mode question.Mode, op question.Operator, draw func() *question.MathQuestion) (*question.MathQuestion, bool) {
	q, ok := randutil.TryN(mathAttempts, func() (*question.MathQuestion, bool) {
		q := draw()
		q.Answer = q.SlotValue(q.UnknownSlot)
		return q, true
	}, func(q *question.MathQuestion) bool {
		return rc.Signatures.Claim(mathSignature(op, q.Operand1True, q.Operand2True, q.ResultTrue, q.UnknownSlot))
	})
	if !ok {
		return nil, false
	}
	q.Base = rc.header(mode, mathPrompt, mathSignature(op, q.Operand1True, q.Operand2True, q.ResultTrue, q.UnknownSlot))
	return q, true
}
