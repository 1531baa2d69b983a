// Package grammars bundles ready-made grammars.
package grammars

import (
	_ "embed"
	"slices"

	"github.com/l-donovan/grammarian"
)

var (
	//go:embed arithmetic.grammar
	arithmeticDescription string

	//go:embed json.grammar
	jsonDescription string

	//go:embed regex.grammar
	regexDescription string
)

var (
	// Arithmetic parses expressions such as "3*x + f(a, 2)". Start with Exp.
	Arithmetic = grammarian.MustCompile(arithmeticDescription)

	// JSON parses JSON documents. Start with value.
	JSON = grammarian.MustCompile(jsonDescription)

	// Regex parses the surface syntax of regular expressions, with no
	// whitespace allowed between tokens. Start with Regex.
	Regex = grammarian.MustCompileWhitespace(regexDescription, "")
)

var builtin = map[string]struct {
	grammar *grammarian.Grammar
	start   string
}{
	"arithmetic": {Arithmetic, "Exp"},
	"json":       {JSON, "value"},
	"regex":      {Regex, "Regex"},
}

// Lookup returns a bundled grammar and its start symbol by name.
func Lookup(name string) (g *grammarian.Grammar, start string, ok bool) {
	entry, ok := builtin[name]
	return entry.grammar, entry.start, ok
}

// Names lists the bundled grammars.
func Names() []string {
	names := make([]string, 0, len(builtin))

	for name := range builtin {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
