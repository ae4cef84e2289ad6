// Package rewards turns a finished round into stars, unlocked image sets
// and the end-of-round message.
package rewards

import (
	"slices"

	"github.com/abhisek/mamchoi/internal/catalog"
)

// MaxStarsPerRound is the best a single round can earn.
const MaxStarsPerRound = 5

// StarsForScore returns the stars earned for correct answers out of total.
func StarsForScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	pct := float64(correct) * 100 / float64(total)
	switch {
	case pct >= 90:
		return 5
	case pct >= 75:
		return 4
	case pct >= 60:
		return 3
	case pct >= 40:
		return 2
	case pct >= 20:
		return 1
	default:
		return 0
	}
}

// NewlyUnlocked returns the sets whose threshold totalStars reaches and
// that are not already unlocked, in threshold order.
func NewlyUnlocked(totalStars int, alreadyUnlocked []string) []catalog.ImageSet {
	var out []catalog.ImageSet
	for _, s := range catalog.UnlockableSets {
		if s.StarsRequired <= totalStars && !slices.Contains(alreadyUnlocked, s.ID) {
			out = append(out, s)
		}
	}
	return out
}

// NextUnlock returns the cheapest set still locked at totalStars.
func NextUnlock(totalStars int) (catalog.ImageSet, bool) {
	for _, s := range catalog.UnlockableSets {
		if s.StarsRequired > totalStars {
			return s, true
		}
	}
	return catalog.ImageSet{}, false
}
