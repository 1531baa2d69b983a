package regex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Matcher is a compiled pattern: it maps text to the same remainders MatchSet
// would.
type Matcher func(text string) Remainders

// Compile turns p into a tree of closures, so that matching no longer
// inspects the pattern.
func Compile(p Pattern) Matcher {
	switch p := p.(type) {
	case literal:
		s := p.s
		return func(text string) Remainders {
			if strings.HasPrefix(text, s) {
				return NewRemainders(text[len(s):])
			}
			return Remainders{}
		}
	case sequence:
		x, y := Compile(p.x), Compile(p.y)
		return func(text string) Remainders {
			out := Remainders{}
			for r1 := range x(text) {
				out.AddAll(y(r1))
			}
			return out
		}
	case alternation:
		x, y := Compile(p.x), Compile(p.y)
		return func(text string) Remainders {
			out := x(text)
			out.AddAll(y(text))
			return out
		}
	case oneOf:
		chars := p.chars
		return func(text string) Remainders {
			if ch, _ := utf8.DecodeRuneInString(text); text != "" && strings.ContainsRune(chars, ch) {
				return NewRemainders(dropFirst(text))
			}
			return Remainders{}
		}
	case dot:
		return func(text string) Remainders {
			if text != "" {
				return NewRemainders(dropFirst(text))
			}
			return Remainders{}
		}
	case eol:
		return func(text string) Remainders {
			if text == "" {
				return NewRemainders("")
			}
			return Remainders{}
		}
	case star:
		x := Compile(p.x)
		return func(text string) Remainders {
			return starSet(text, x)
		}
	default:
		panic(fmt.Sprintf("regex: unknown pattern %T", p))
	}
}

// Match returns the longest prefix of text that m matches.
func (m Matcher) Match(text string) (string, bool) {
	return longest(m(text), text)
}

// Search returns the leftmost-longest match of m in text.
func (m Matcher) Search(text string) (string, bool) {
	return search(m, text)
}
