package randutil

import "slices"

// TryN calls candidate up to n times and returns the first value that accept
// approves. A candidate that reports false is a failed attempt.
func TryN[T any](n int, candidate func() (T, bool), accept func(T) bool) (T, bool) {
	var zero T
	for range n {
		v, ok := candidate()
		if !ok {
			continue
		}
		if accept == nil || accept(v) {
			return v, true
		}
	}
	return zero, false
}

// Set is a set of strings: signatures or icons.
type Set map[string]struct{}

// NewSet returns a set holding items.
func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s Set) Add(items ...string) {
	for _, it := range items {
		s[it] = struct{}{}
	}
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Claim adds item and reports whether it was absent.
func (s Set) Claim(item string) bool {
	if s.Has(item) {
		return false
	}
	s[item] = struct{}{}
	return true
}

func (s Set) Len() int { return len(s) }

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for it := range s {
		out = append(out, it)
	}
	slices.Sort(out)
	return out
}
