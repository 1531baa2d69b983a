package grammarian

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// DefaultWhitespace is skipped before every terminal unless the grammar
// overrides it.
const DefaultWhitespace = `\s*`

const (
	ruleSeparator        = " => "
	alternativeSeparator = " | "
)

type AtomKind int

const (
	NonTerminal AtomKind = iota
	Terminal
)

func (k AtomKind) String() string {
	switch k {
	case NonTerminal:
		return "NonTerminal"
	case Terminal:
		return "Terminal"
	default:
		return "AtomKind(?)"
	}
}

// Atom is one element of an alternative. Whether it names a rule or is a
// regular expression is decided once, when the grammar is compiled.
type Atom struct {
	Kind AtomKind
	Text string

	id      int
	pattern *regexp.Regexp // Terminal only: ^(?:whitespace)(Text)
	group   int            // submatch index of the token in pattern
}

func (a *Atom) String() string {
	return a.Text
}

// Alternative is an ordered sequence of atoms.
type Alternative []*Atom

func (alt Alternative) String() string {
	texts := make([]string, len(alt))

	for i, atom := range alt {
		texts[i] = atom.Text
	}

	return strings.Join(texts, " ")
}

// Rule holds the alternatives of one non-terminal in the order they are
// tried.
type Rule struct {
	Symbol       string
	Alternatives []Alternative
}

// Grammar is an immutable table of rules. Build one with Compile.
type Grammar struct {
	whitespace   string
	whitespaceRe *regexp.Regexp
	rules        map[string]*Rule
	order        []string
	atoms        map[string]*Atom
}

// Compile converts a description to a grammar, skipping DefaultWhitespace
// before every token. Each line of the description is a rule:
//
//	Symbol => A1 A2 ... | B1 B2 ... | C1 C2 ...
//
// The right-hand side is one or more alternatives separated by " | ", and each
// alternative is a sequence of atoms separated by spaces. An atom is either a
// symbol defined on some left-hand side or a regular expression that matches a
// token. Tabs count as spaces.
func Compile(description string) (*Grammar, error) {
	return CompileWhitespace(description, DefaultWhitespace)
}

// CompileWhitespace is like Compile, but skips whitespace (a regular
// expression) before every token instead. Pass "" to disallow anything
// between tokens.
func CompileWhitespace(description, whitespace string) (*Grammar, error) {
	// Each fragment must stand on its own, or splicing it into a larger
	// expression could change that expression's structure.
	if _, err := regexp.Compile(whitespace); err != nil {
		return nil, &CompileError{Text: whitespace, Err: errors.Wrap(ErrBadWhitespace, err.Error())}
	}

	whitespaceRe := regexp.MustCompile(`^(?:` + whitespace + `)`)

	g := &Grammar{
		whitespace:   whitespace,
		whitespaceRe: whitespaceRe,
		rules:        map[string]*Rule{},
		atoms:        map[string]*Atom{},
	}

	type pendingRule struct {
		line         int
		text         string
		symbol       string
		alternatives [][]string
	}

	var pending []pendingRule
	description = strings.ReplaceAll(description, "\t", " ")

	for i, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		sides := split(line, ruleSeparator, 2)

		if len(sides) != 2 {
			return nil, &CompileError{Line: i + 1, Text: line, Err: ErrMissingSeparator}
		}

		var alternatives [][]string

		for _, alt := range split(sides[1], alternativeSeparator, -1) {
			alternatives = append(alternatives, strings.Fields(alt))
		}

		if _, found := g.rules[sides[0]]; !found {
			g.order = append(g.order, sides[0])
		}

		g.rules[sides[0]] = &Rule{Symbol: sides[0]}
		pending = append(pending, pendingRule{i + 1, line, sides[0], alternatives})
	}

	// Every left-hand side is known now, so each atom can be resolved.
	for _, symbol := range g.order {
		if _, err := g.atom(symbol); err != nil {
			return nil, err
		}
	}

	for _, p := range pending {
		rule := &Rule{Symbol: p.symbol}

		for _, texts := range p.alternatives {
			alt := make(Alternative, len(texts))

			for j, text := range texts {
				atom, err := g.atom(text)

				if err != nil {
					return nil, &CompileError{Line: p.line, Text: p.text, Err: err}
				}

				alt[j] = atom
			}

			rule.Alternatives = append(rule.Alternatives, alt)
		}

		// A later definition of the same symbol replaces the earlier one.
		g.rules[p.symbol] = rule
	}

	return g, nil
}

// MustCompile is like Compile but panics if the description is malformed.
func MustCompile(description string) *Grammar {
	g, err := Compile(description)

	if err != nil {
		panic(err)
	}

	return g
}

// MustCompileWhitespace is like CompileWhitespace but panics if the
// description is malformed.
func MustCompileWhitespace(description, whitespace string) *Grammar {
	g, err := CompileWhitespace(description, whitespace)

	if err != nil {
		panic(err)
	}

	return g
}

// split splits text around sep, trims every piece and drops the empty ones.
func split(text, sep string, n int) []string {
	var out []string

	for _, piece := range strings.SplitN(strings.TrimSpace(text), sep, n) {
		if piece = strings.TrimSpace(piece); piece != "" {
			out = append(out, piece)
		}
	}

	return out
}

// atom interns the atom for text. Atoms are shared, so each one has a single
// id for the parser's memo.
func (g *Grammar) atom(text string) (*Atom, error) {
	if atom, found := g.atoms[text]; found {
		return atom, nil
	}

	atom := &Atom{Kind: NonTerminal, Text: text}

	if _, found := g.rules[text]; !found {
		var err error

		if atom, err = g.terminal(text); err != nil {
			return nil, err
		}
	}

	atom.id = len(g.atoms)
	g.atoms[text] = atom
	return atom, nil
}

func (g *Grammar) terminal(text string) (*Atom, error) {
	if _, err := regexp.Compile(text); err != nil {
		return nil, errors.Wrapf(ErrBadTerminal, "%q: %v", text, err)
	}

	pattern := regexp.MustCompile(`^(?:` + g.whitespace + `)(` + text + `)`)

	return &Atom{
		Kind:    Terminal,
		Text:    text,
		pattern: pattern,
		group:   g.whitespaceRe.NumSubexp() + 1,
	}, nil
}

// Whitespace returns the expression skipped before every token.
func (g *Grammar) Whitespace() string {
	return g.whitespace
}

// Symbols returns the non-terminals in the order they were first defined.
func (g *Grammar) Symbols() []string {
	return append([]string(nil), g.order...)
}

func (g *Grammar) Rule(symbol string) (Rule, bool) {
	rule, found := g.rules[symbol]

	if !found {
		return Rule{}, false
	}

	return *rule, true
}

// String renders the grammar back into description form.
func (g *Grammar) String() string {
	var sb strings.Builder
	width := 0

	for _, symbol := range g.order {
		width = max(width, len(symbol))
	}

	for _, symbol := range g.order {
		alts := make([]string, len(g.rules[symbol].Alternatives))

		for i, alt := range g.rules[symbol].Alternatives {
			alts[i] = alt.String()
		}

		sb.WriteString(symbol)
		sb.WriteString(strings.Repeat(" ", width-len(symbol)))
		sb.WriteString(ruleSeparator)
		sb.WriteString(strings.Join(alts, alternativeSeparator))
		sb.WriteByte('\n')
	}

	return sb.String()
}
