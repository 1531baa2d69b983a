package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/grammars"
)

const builtinPrefix = "builtin:"

// grammarArgs are the flags shared by commands that load a grammar.
type grammarArgs struct {
	grammar    string
	start      string
	whitespace string
}

func (a *grammarArgs) register(fs *flag.FlagSet) {
	fs.StringVar(&a.grammar, "grammar", builtinPrefix+"arithmetic",
		fmt.Sprintf("grammar file, or one of %s%s", builtinPrefix, strings.Join(grammars.Names(), "|"+builtinPrefix)))
	fs.StringVar(&a.start, "start", "", "start symbol (default: the grammar's first rule)")
	fs.StringVar(&a.whitespace, "whitespace", "", "whitespace expression skipped before tokens (default: the grammar's own)")
}

// load compiles the grammar the flags name, and picks its start symbol.
func (a *grammarArgs) load() (*grammarian.Grammar, string, error) {
	var g *grammarian.Grammar
	var start string

	if name, ok := strings.CutPrefix(a.grammar, builtinPrefix); ok {
		var found bool

		if g, start, found = grammars.Lookup(name); !found {
			return nil, "", errors.Errorf("unknown builtin grammar %q", name)
		}
	} else {
		description, err := os.ReadFile(a.grammar)

		if err != nil {
			return nil, "", errors.Wrap(err, "reading grammar")
		}

		if g, err = grammarian.Compile(string(description)); err != nil {
			return nil, "", errors.Wrapf(err, "compiling %s", a.grammar)
		}
	}

	if a.whitespace != "" && a.whitespace != g.Whitespace() {
		var err error

		if g, err = grammarian.CompileWhitespace(g.String(), a.whitespace); err != nil {
			return nil, "", errors.Wrapf(err, "compiling %s", a.grammar)
		}
	}

	if a.start != "" {
		start = a.start
	}

	if start == "" {
		symbols := g.Symbols()

		if len(symbols) == 0 {
			return nil, "", errors.Errorf("grammar %s has no rules", a.grammar)
		}

		start = symbols[0]
	}

	return g, start, nil
}
