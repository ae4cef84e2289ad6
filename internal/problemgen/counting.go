package problemgen

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/mamchoi/internal/question"
	"github.com/abhisek/mamchoi/internal/randutil"
)

// GenerateCounting shows a pile of one icon and asks for its size. The
// icon-level signature is recorded but only the icon+count signature is
// enforced, so an icon may come back with a different count.
func GenerateCounting(rc *RoundContext) (*question.CountingQuestion, bool) {
	icon, ok := rc.countingIcon()
	if !ok {
		return nil, false
	}
	lo, hi := 5, 20
	if rc.mam() {
		lo, hi = 1, 10
	}
	n, ok := randutil.TryN(countingAttempts, func() (int, bool) {
		return rc.Rand.Between(lo, hi), true
	}, func(n int) bool {
		return !rc.Signatures.Has(countingSignature(icon, n))
	})
	if !ok {
		return nil, false
	}

	sig := countingSignature(icon, n)
	rc.Signatures.Add("count-"+icon, sig)
	rc.UsedInRound.Add(icon)
	rc.UsedInMode(question.ModeCounting).Add(icon)

	return &question.CountingQuestion{
		Base:     rc.header(question.ModeCounting, fmt.Sprintf("Đếm số lượng %s trong hình:", icon), sig),
		Shapes:   slices.Repeat([]string{icon}, n),
		IconType: icon,
		Answer:   n,
	}, true
}

func countingSignature(icon string, n int) string {
	return "count-" + icon + "-" + strconv.Itoa(n)
}

func (rc *RoundContext) countingIcon() (string, bool) {
	if picked := rc.candidates(nil, 1); len(picked) > 0 {
		return picked[0], true
	}
	var fallback []string
	for _, icon := range rc.Pool.Icons {
		if !rc.Signatures.Has("count-" + icon) {
			fallback = append(fallback, icon)
		}
	}
	return randutil.Pick(rc.Rand, fallback)
}

// repeatIcon returns icon repeated n times as one string.
func repeatIcon(icon string, n int) string {
	return strings.Repeat(icon, n)
}
