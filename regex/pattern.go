package regex

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a regular expression built from the constructors in this
// package. Patterns are immutable.
type Pattern interface {
	fmt.Stringer
	pattern()
}

type (
	literal     struct{ s string }
	sequence    struct{ x, y Pattern }
	alternation struct{ x, y Pattern }
	star        struct{ x Pattern }
	oneOf       struct{ chars string }
	dot         struct{}
	eol         struct{}
)

func (literal) pattern()     {}
func (sequence) pattern()    {}
func (alternation) pattern() {}
func (star) pattern()        {}
func (oneOf) pattern()       {}
func (dot) pattern()         {}
func (eol) pattern()         {}

var (
	// Dot matches any single character.
	Dot Pattern = dot{}
	// EOL matches only at the end of the text.
	EOL Pattern = eol{}
)

// Lit matches s exactly.
func Lit(s string) Pattern { return literal{s} }

// Seq matches x followed by y.
func Seq(x, y Pattern) Pattern { return sequence{x, y} }

// Alt matches x or y.
func Alt(x, y Pattern) Pattern { return alternation{x, y} }

// Star matches zero or more repetitions of x.
func Star(x Pattern) Pattern { return star{x} }

// OneOf matches any single character in chars.
func OneOf(chars string) Pattern { return oneOf{chars} }

// Plus matches one or more repetitions of x.
func Plus(x Pattern) Pattern { return Seq(x, Star(x)) }

// Opt matches x or nothing.
func Opt(x Pattern) Pattern { return Alt(Lit(""), x) }

// SeqOf chains patterns: SeqOf(a, b, c) is Seq(a, Seq(b, c)). With no
// arguments it matches the empty string.
func SeqOf(patterns ...Pattern) Pattern {
	return fold(Seq, patterns)
}

// AltOf is like SeqOf, for Alt.
func AltOf(patterns ...Pattern) Pattern {
	return fold(Alt, patterns)
}

func fold(f func(x, y Pattern) Pattern, patterns []Pattern) Pattern {
	switch len(patterns) {
	case 0:
		return Lit("")
	case 1:
		return patterns[0]
	default:
		return f(patterns[0], fold(f, patterns[1:]))
	}
}

func (p literal) String() string { return regexp.QuoteMeta(p.s) }

func (p sequence) String() string { return group(p.x, false) + group(p.y, false) }

func (p alternation) String() string { return p.x.String() + "|" + p.y.String() }

func (p star) String() string { return group(p.x, true) + "*" }

func (p oneOf) String() string {
	var sb strings.Builder
	sb.WriteByte('[')

	for _, ch := range p.chars {
		if strings.ContainsRune(`\]^-[`, ch) {
			sb.WriteByte('\\')
		}

		sb.WriteRune(ch)
	}

	sb.WriteByte(']')
	return sb.String()
}

func (dot) String() string { return "." }

func (eol) String() string { return "$" }

// group parenthesizes p where its syntax would otherwise bind wrongly.
func group(p Pattern, operand bool) string {
	switch q := p.(type) {
	case alternation:
		return "(" + q.String() + ")"
	case literal:
		if operand && len([]rune(q.s)) != 1 {
			return "(" + q.String() + ")"
		}
	case sequence, star:
		if operand {
			return "(" + q.String() + ")"
		}
	}

	return p.String()
}
