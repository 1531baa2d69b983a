package regex

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/common"
	"github.com/l-donovan/grammarian/grammars"
)

// SyntaxError reports a pattern that ParsePattern cannot read.
type SyntaxError struct {
	Pattern string
	Offset  int
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex: %s at offset %d in %q", e.Reason, e.Offset, e.Pattern)
}

// Expr is a pattern read from its surface syntax.
type Expr struct {
	Source string
	// Pattern is the alternation of every top-level branch, with any leading
	// ^ dropped. It is what matches at the start of the text.
	Pattern Pattern
	// Floating is the alternation of the branches that do not start with ^,
	// or nil when they all do. It is what matches anywhere else.
	Floating Pattern
}

var classEscapes = map[rune]string{
	'd': "0123456789",
	'w': "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_",
	's': " \t\n\r\f\v",
}

// ParsePattern reads the usual notation for the patterns this package
// supports: literal characters, ., [abc] and [a-z], \d \w \s, x* x+ x?, a|b,
// parentheses, and the anchors ^ and $. A ^ may only start a top-level
// alternative, so ^a|b anchors just the first branch. A backslash before any
// other character makes it literal.
func ParsePattern(source string) (*Expr, error) {
	tree, err := grammars.Regex.ParseAll("Regex", source)

	if err != nil {
		var parseErr grammarian.ParseError

		if errors.As(err, &parseErr) {
			return nil, &SyntaxError{Pattern: source, Offset: parseErr.Loc.Pos, Reason: "unexpected character"}
		}

		return nil, errors.Wrapf(err, "regex: parsing %q", source)
	}

	c := converter{source: source, root: tree}
	expr := &Expr{Source: source, Pattern: Lit(""), Floating: Lit("")}

	if alts, ok := tree.(common.Tree).Children()[0].(common.Tree); ok {
		var all, floating []Pattern

		for _, b := range c.branches(alts) {
			all = append(all, b.pattern)

			if !b.anchored {
				floating = append(floating, b.pattern)
			}
		}

		expr.Pattern = AltOf(all...)
		expr.Floating = nil

		if len(floating) > 0 {
			expr.Floating = AltOf(floating...)
		}
	}

	if c.err != nil {
		return nil, c.err
	}

	return expr, nil
}

// MustParsePattern is like ParsePattern but panics on a syntax error.
func MustParsePattern(source string) *Expr {
	expr, err := ParsePattern(source)

	if err != nil {
		panic(err)
	}

	return expr
}

func (e *Expr) String() string {
	return e.Source
}

// Match returns the longest match of e at the start of text.
func (e *Expr) Match(text string) (string, bool) {
	return Match(e.Pattern, text)
}

// Find returns the leftmost-longest match of e in text. Branches that start
// with ^ only match at the start of text.
func (e *Expr) Find(text string) (string, bool) {
	var floating func(string) Remainders

	if e.Floating != nil {
		floating = func(t string) Remainders { return MatchSet(e.Floating, t) }
	}

	return find(func(t string) Remainders { return MatchSet(e.Pattern, t) }, floating, text)
}

// Compile compiles both halves of e to closures.
func (e *Expr) Compile() *Program {
	prog := &Program{Source: e.Source, all: Compile(e.Pattern)}

	if e.Floating != nil {
		prog.floating = Compile(e.Floating)
	}

	return prog
}

// Program is a compiled Expr.
type Program struct {
	Source   string
	all      Matcher
	floating Matcher
}

func (p *Program) Match(text string) (string, bool) {
	return p.all.Match(text)
}

func (p *Program) Find(text string) (string, bool) {
	return find(p.all, p.floating, text)
}

// converter turns a Regex parse tree into a Pattern. The first error sticks.
type converter struct {
	source string
	root   common.Node
	err    error
}

type branch struct {
	pattern  Pattern
	anchored bool
}

func (c *converter) branches(t common.Tree) []branch {
	var out []branch

	for {
		children := t.Children()
		out = append(out, c.branch(children[0].(common.Tree)))

		if len(children) == 1 {
			return out
		}

		t = children[2].(common.Tree)
	}
}

func (c *converter) branch(t common.Tree) branch {
	b := branch{pattern: Lit("")}

	for _, child := range t.Children() {
		switch child := child.(type) {
		case string:
			b.anchored = true
		case common.Tree:
			b.pattern = c.seq(child)
		}
	}

	return b
}

// alts converts a parenthesized alternation.
func (c *converter) alts(t common.Tree) Pattern {
	var patterns []Pattern

	for i, b := range c.branches(t) {
		if b.anchored {
			c.fail(nthBranch(t, i), "^ is only supported at the start of a top-level alternative")
		}

		patterns = append(patterns, b.pattern)
	}

	return AltOf(patterns...)
}

func nthBranch(t common.Tree, n int) common.Tree {
	for ; n > 0; n-- {
		t = t.Children()[2].(common.Tree)
	}

	return t.Children()[0].(common.Tree)
}

func (c *converter) seq(t common.Tree) Pattern {
	var parts []Pattern
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			parts = append(parts, Lit(run.String()))
			run.Reset()
		}
	}

	for {
		children := t.Children()
		rep := children[0].(common.Tree).Children()

		if len(rep) == 1 {
			flush()
			parts = append(parts, EOL)
		} else if atom := c.atom(rep[0].(common.Tree)); isLiteral(atom) && rep[1] == "" {
			// Unrepeated literals are joined into one.
			run.WriteString(atom.(literal).s)
		} else {
			flush()
			parts = append(parts, repeat(atom, rep[1].(string)))
		}

		if len(children) == 1 {
			flush()
			return SeqOf(parts...)
		}

		t = children[1].(common.Tree)
	}
}

func isLiteral(p Pattern) bool {
	_, ok := p.(literal)
	return ok
}

func repeat(p Pattern, quantifier string) Pattern {
	switch quantifier {
	case "*":
		return Star(p)
	case "+":
		return Plus(p)
	case "?":
		return Opt(p)
	default:
		return p
	}
}

func (c *converter) atom(t common.Tree) Pattern {
	children := t.Children()

	switch first := children[0].(type) {
	case string:
		if first == "." {
			return Dot
		}

		return c.alts(children[1].(common.Tree))
	case common.Tree:
		token := first.Children()[0].(string)

		switch first.Symbol() {
		case "Class":
			return c.class(first)
		case "Escape":
			ch, _ := utf8.DecodeRuneInString(token[1:])

			if chars, ok := classEscapes[ch]; ok {
				return OneOf(chars)
			}

			return Lit(token[1:])
		default:
			return Lit(token)
		}
	}

	return Lit("")
}

// class expands a bracket expression such as [a-cx] into its characters.
func (c *converter) class(t common.Tree) Pattern {
	token := t.Children()[0].(string)
	body := []rune(token[1 : len(token)-1])

	if body[0] == '^' {
		c.fail(t, "negated character classes are not supported")
		return Lit("")
	}

	var chars strings.Builder

	for i := 0; i < len(body); i++ {
		ch := body[i]

		if ch == '\\' && i+1 < len(body) {
			i++

			if expanded, ok := classEscapes[body[i]]; ok {
				chars.WriteString(expanded)
			} else {
				chars.WriteRune(body[i])
			}

			continue
		}

		if i+2 < len(body) && body[i+1] == '-' {
			hi := body[i+2]

			if hi < ch {
				c.fail(t, "invalid character class range")
				return Lit("")
			}

			for r := ch; r <= hi; r++ {
				chars.WriteRune(r)
			}

			i += 2
			continue
		}

		chars.WriteRune(ch)
	}

	return OneOf(chars.String())
}

func (c *converter) fail(t common.Tree, reason string) {
	if c.err == nil {
		c.err = &SyntaxError{Pattern: c.source, Offset: offset(c.root, t), Reason: reason}
	}
}

// offset returns where target starts in the source. The regex grammar skips
// no whitespace, so that is the length of the leaves before it.
func offset(root common.Node, target common.Tree) int {
	pos := 0
	var walk func(n common.Node) bool

	walk = func(n common.Node) bool {
		switch n := n.(type) {
		case string:
			pos += len(n)
		case common.Tree:
			if len(n) > 0 && &n[0] == &target[0] {
				return true
			}

			for _, child := range n.Children() {
				if walk(child) {
					return true
				}
			}
		}

		return false
	}

	walk(root)
	return pos
}
