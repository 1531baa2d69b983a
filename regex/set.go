package regex

import (
	"slices"
	"strings"
)

// Remainders is a set of unmatched suffixes of some text. The empty set means
// the pattern did not match.
type Remainders map[string]struct{}

// NewRemainders returns a set holding rems.
func NewRemainders(rems ...string) Remainders {
	s := make(Remainders, len(rems))

	for _, rem := range rems {
		s.Add(rem)
	}

	return s
}

// Add adds rem to the set.
func (s Remainders) Add(rem string) { s[rem] = struct{}{} }

// Contains reports whether s contains rem.
func (s Remainders) Contains(rem string) bool {
	_, ok := s[rem]
	return ok
}

// Len reports the number of remainders in s.
func (s Remainders) Len() int { return len(s) }

// AddAll adds every remainder of o to s.
func (s Remainders) AddAll(o Remainders) {
	for rem := range o {
		s.Add(rem)
	}
}

// Shortest returns the shortest remainder, which belongs to the longest match.
func (s Remainders) Shortest() (string, bool) {
	if len(s) == 0 {
		return "", false
	}

	first := true
	var shortest string

	for rem := range s {
		if first || len(rem) < len(shortest) {
			shortest, first = rem, false
		}
	}

	return shortest, true
}

// Sorted returns the remainders longest first, which is the order of the
// matches from shortest to longest.
func (s Remainders) Sorted() []string {
	out := make([]string, 0, len(s))

	for rem := range s {
		out = append(out, rem)
	}

	slices.SortFunc(out, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}

		return strings.Compare(a, b)
	})

	return out
}
