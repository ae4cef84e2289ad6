package problemgen

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

const recognitionOptions = 3

// GenerateNumberRecognition links a numeral with a group of icons, in
// either direction, with one correct option and two distractors.
func GenerateNumberRecognition(rc *RoundContext) (*question.NumberRecognitionQuestion, bool) {
	if rc.Pool.Len() == 0 {
		return nil, false
	}
	prefix, maxN := "nr-c-", 20
	if rc.mam() {
		prefix, maxN = "nr-m-", 10
	}
	usedMode := rc.UsedInMode(question.ModeNumberRecognition)

	q, ok := randutil.TryN(recognitionAttempts, func() (*question.NumberRecognitionQuestion, bool) {
		picked := rc.candidates(usedMode, 1)
		if len(picked) == 0 {
			return nil, false
		}
		icon := picked[0]
		n := rc.Rand.Between(1, maxN)
		if rc.Rand.Chance(0.5) {
			return rc.numberToItems(icon, n, maxN, prefix), true
		}
		return rc.itemsToNumber(icon, n, maxN, prefix), true
	}, func(q *question.NumberRecognitionQuestion) bool {
		return q != nil && !rc.Signatures.Has(q.Signature)
	})
	if !ok {
		return nil, false
	}

	rc.Signatures.Add(q.Signature)
	icon := q.TargetItemIcon
	if q.Variant == question.NumberToItems {
		icon = correctRecognitionIcon(q)
	}
	rc.UsedInRound.Add(icon)
	usedMode.Add(icon)
	for _, o := range q.Options {
		rc.UsedInRound.Add(o.Items...)
	}
	q.Options = randutil.Shuffle(rc.Rand, q.Options)
	return q, true
}

func correctRecognitionIcon(q *question.NumberRecognitionQuestion) string {
	for _, o := range q.Options {
		if o.IsCorrect && len(o.Items) > 0 {
			return o.Items[0]
		}
	}
	return ""
}

func (rc *RoundContext) numberToItems(icon string, n, maxN int, prefix string) *question.NumberRecognitionQuestion {
	options := []question.RecognitionOption{{
		ID:        question.NewID(),
		Items:     slices.Repeat([]string{icon}, n),
		IsCorrect: true,
	}}
	taken := map[string]bool{groupKey(icon, n): true}

	others := rc.candidates(nil, rc.Pool.Len(), icon)

	// Each distractor needs a (count, icon) pair not already on the board.
	for guard := 0; len(options) < recognitionOptions && guard < 100; guard++ {
		count := rc.Rand.Between(1, maxN)
		di := icon
		if rc.Rand.Chance(0.3) {
			if alt, ok := randutil.Pick(rc.Rand, others); ok {
				di = alt
			}
		}
		key := groupKey(di, count)
		if taken[key] {
			continue
		}
		taken[key] = true
		options = append(options, question.RecognitionOption{
			ID:    question.NewID(),
			Items: slices.Repeat([]string{di}, count),
		})
	}
	if len(options) < recognitionOptions {
		return nil
	}

	return &question.NumberRecognitionQuestion{
		Base:         rc.header(question.ModeNumberRecognition, fmt.Sprintf("Tìm nhóm có %d %s:", n, icon), fmt.Sprintf("%sn2i-%d-%s", prefix, n, icon)),
		Variant:      question.NumberToItems,
		TargetNumber: n,
		Options:      options,
	}
}

func (rc *RoundContext) itemsToNumber(icon string, n, maxN int, prefix string) *question.NumberRecognitionQuestion {
	options := []question.RecognitionOption{{
		ID:        question.NewID(),
		Numeral:   strconv.Itoa(n),
		IsCorrect: true,
	}}
	seen := map[int]bool{n: true}
	for len(options) < recognitionOptions && len(seen) < maxN {
		wrong := rc.Rand.Between(1, maxN)
		if seen[wrong] {
			continue
		}
		seen[wrong] = true
		options = append(options, question.RecognitionOption{
			ID:      question.NewID(),
			Numeral: strconv.Itoa(wrong),
		})
	}
	if len(options) < recognitionOptions {
		return nil
	}

	return &question.NumberRecognitionQuestion{
		Base:           rc.header(question.ModeNumberRecognition, fmt.Sprintf("Có bao nhiêu %s ở đây?", icon), fmt.Sprintf("%si2n-%d-%s", prefix, n, icon)),
		Variant:        question.ItemsToNumber,
		TargetItems:    slices.Repeat([]string{icon}, n),
		TargetItemIcon: icon,
		Options:        options,
	}
}

func groupKey(icon string, n int) string {
	return icon + "#" + strconv.Itoa(n)
}
