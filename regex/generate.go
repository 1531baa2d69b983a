package regex

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

// DotStandIn is what Generate produces for Dot, which could be any character.
const DotStandIn = "?"

// Generate returns the strings in the language of p whose length, in
// characters, is one of lengths. They come back sorted by length, then
// lexically.
func Generate(p Pattern, lengths ...int) []string {
	ns := map[int]bool{}

	for _, n := range lengths {
		if n >= 0 {
			ns[n] = true
		}
	}

	var out []string

	for s := range gen(p, ns) {
		out = append(out, s)
	}

	slices.SortFunc(out, func(a, b string) int {
		if la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b); la != lb {
			return la - lb
		}

		return strings.Compare(a, b)
	})

	return out
}

// gen returns the strings of p with a length in ns.
func gen(p Pattern, ns map[int]bool) map[string]bool {
	out := map[string]bool{}

	switch p := p.(type) {
	case literal:
		if ns[utf8.RuneCountInString(p.s)] {
			out[p.s] = true
		}
	case alternation:
		for s := range gen(p.x, ns) {
			out[s] = true
		}

		for s := range gen(p.y, ns) {
			out[s] = true
		}
	case sequence:
		return genSeq(p.x, p.y, ns, 0)
	case star:
		// x* is "" or x x*, where the leading x is at least one character
		// long so that the lengths left for x* keep shrinking.
		if ns[0] {
			out[""] = true
		}

		for s := range genSeq(p.x, p, ns, 1) {
			out[s] = true
		}
	case oneOf:
		if ns[1] {
			for _, ch := range p.chars {
				out[string(ch)] = true
			}
		}
	case dot:
		if ns[1] {
			out[DotStandIn] = true
		}
	case eol:
		if ns[0] {
			out[""] = true
		}
	default:
		panic(fmt.Sprintf("regex: unknown pattern %T", p))
	}

	return out
}

// genSeq returns the strings of xy with a length in ns, where the x part is
// at least minX characters long.
func genSeq(x, y Pattern, ns map[int]bool, minX int) map[string]bool {
	out := map[string]bool{}

	if len(ns) == 0 {
		return out
	}

	maxN := 0

	for n := range ns {
		maxN = max(maxN, n)
	}

	xLengths := map[int]bool{}

	for n := minX; n <= maxN; n++ {
		xLengths[n] = true
	}

	xMatches := gen(x, xLengths)
	yLengths := map[int]bool{}

	for m := range xMatches {
		lm := utf8.RuneCountInString(m)

		for n := range ns {
			if n >= lm {
				yLengths[n-lm] = true
			}
		}
	}

	yMatches := gen(y, yLengths)

	for m1 := range xMatches {
		for m2 := range yMatches {
			if ns[utf8.RuneCountInString(m1)+utf8.RuneCountInString(m2)] {
				out[m1+m2] = true
			}
		}
	}

	return out
}
