package regex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MatchSet matches p against the start of text and returns every possible
// remainder. For each remainder r, the match plus r is text. The set is empty
// when p does not match.
func MatchSet(p Pattern, text string) Remainders {
	switch p := p.(type) {
	case literal:
		if strings.HasPrefix(text, p.s) {
			return NewRemainders(text[len(p.s):])
		}
	case sequence:
		out := Remainders{}

		for r1 := range MatchSet(p.x, text) {
			out.AddAll(MatchSet(p.y, r1))
		}

		return out
	case alternation:
		out := MatchSet(p.x, text)
		out.AddAll(MatchSet(p.y, text))
		return out
	case dot:
		if text != "" {
			return NewRemainders(dropFirst(text))
		}
	case oneOf:
		if ch, _ := utf8.DecodeRuneInString(text); text != "" && strings.ContainsRune(p.chars, ch) {
			return NewRemainders(dropFirst(text))
		}
	case eol:
		if text == "" {
			return NewRemainders("")
		}
	case star:
		return starSet(text, func(t string) Remainders { return MatchSet(p.x, t) })
	default:
		panic(fmt.Sprintf("regex: unknown pattern %T", p))
	}

	return Remainders{}
}

// starSet applies x repeatedly, starting with zero times. Only remainders
// strictly shorter than the text x was applied to are followed, so an x that
// can match the empty string still terminates. A work list stands in for
// recursion so that long inputs do not grow the stack.
func starSet(text string, x func(string) Remainders) Remainders {
	out := Remainders{}
	work := []string{text}

	for len(work) > 0 {
		t := work[len(work)-1]
		work = work[:len(work)-1]

		if out.Contains(t) {
			continue
		}

		out.Add(t)

		for r := range x(t) {
			if r != t && !out.Contains(r) {
				work = append(work, r)
			}
		}
	}

	return out
}

func dropFirst(text string) string {
	_, size := utf8.DecodeRuneInString(text)
	return text[size:]
}

// Match returns the longest prefix of text that p matches.
func Match(p Pattern, text string) (string, bool) {
	return longest(MatchSet(p, text), text)
}

// Search returns the leftmost match of p in text, longest at that position.
func Search(p Pattern, text string) (string, bool) {
	return search(func(t string) Remainders { return MatchSet(p, t) }, text)
}

func longest(rems Remainders, text string) (string, bool) {
	shortest, ok := rems.Shortest()

	if !ok {
		return "", false
	}

	return text[:len(text)-len(shortest)], true
}

// search tries every start offset before the end of text, in order.
func search(m func(string) Remainders, text string) (string, bool) {
	return find(m, m, text)
}

// find is search with a different matcher at offset 0. A nil floating
// matcher never matches.
func find(atStart, floating func(string) Remainders, text string) (string, bool) {
	for i := range text {
		m := floating

		if i == 0 {
			m = atStart
		}

		if m == nil {
			return "", false
		}

		if match, ok := longest(m(text[i:]), text[i:]); ok {
			return match, true
		}
	}

	return "", false
}
