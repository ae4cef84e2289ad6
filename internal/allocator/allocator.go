// Package allocator spreads icons across a round so that fresh icons are
// shown first and repeats within a round or a mode are avoided when possible.
package allocator

import (
	"strings"

	"github.com/abhisek/mamchoi/internal/randutil"
)

// Pool is an ordered icon pool: the first Fresh icons were not used
// recently, the rest were.
type Pool struct {
	Icons []string
	Fresh int
}

// Len returns the number of icons in the pool.
func (p Pool) Len() int { return len(p.Icons) }

// Prioritize dedupes base, drops blank entries and moves icons that appear
// in recent to the back. Relative order inside each group is kept.
func Prioritize(base, recent []string) Pool {
	stale := randutil.NewSet(recent...)
	seen := randutil.NewSet()

	var fresh, old []string
	for _, icon := range base {
		if strings.TrimSpace(icon) == "" || !seen.Claim(icon) {
			continue
		}
		if stale.Has(icon) {
			old = append(old, icon)
		} else {
			fresh = append(fresh, icon)
		}
	}
	return Pool{Icons: append(fresh, old...), Fresh: len(fresh)}
}

// SelectCandidates returns up to count distinct icons from pool, never one
// listed in exclude. Icons unused in both the round and the mode come
// first; when there are too few, the mode constraint is relaxed, then the
// round one. Within each stage fresh icons are preferred over stale ones.
// usedMode may be nil. The result is shuffled.
func SelectCandidates(r *randutil.Rand, pool Pool, usedRound, usedMode randutil.Set, count int, exclude ...string) []string {
	if count <= 0 {
		return nil
	}
	excluded := randutil.NewSet(exclude...)
	inMode := func(icon string) bool { return usedMode != nil && usedMode.Has(icon) }

	picked := randutil.NewSet()
	var out []string
	take := func(keep func(string) bool) {
		var fresh, stale []string
		for i, icon := range pool.Icons {
			if excluded.Has(icon) || picked.Has(icon) || !keep(icon) {
				continue
			}
			if i < pool.Fresh {
				fresh = append(fresh, icon)
			} else {
				stale = append(stale, icon)
			}
		}
		for _, group := range [][]string{fresh, stale} {
			for _, icon := range randutil.Shuffle(r, group) {
				if len(out) == count {
					return
				}
				picked.Add(icon)
				out = append(out, icon)
			}
		}
	}

	take(func(icon string) bool { return !usedRound.Has(icon) && !inMode(icon) })
	if len(out) < count {
		take(func(icon string) bool { return !inMode(icon) })
	}
	if len(out) < count {
		take(func(string) bool { return true })
	}
	return randutil.Shuffle(r, out)
}
