package cli

import (
	"context"
	"flag"
	"strings"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/l-donovan/grammarian/common"
	"github.com/l-donovan/grammarian/regex"
)

// matchCmd builds the match and search commands, which differ only in where
// a match may start.
func matchCmd(name string) *ffcli.Command {
	var args struct {
		compiled bool
		all      bool
	}

	help := map[string]string{
		"match":  "Print the longest prefix of text matched by a pattern",
		"search": "Print the leftmost longest match of a pattern in text",
	}

	return &ffcli.Command{
		Name:       name,
		ShortUsage: "grammarian " + name + " [flags] <pattern> [text...]",
		ShortHelp:  help[name],
		FlagSet: (func() *flag.FlagSet {
			fs := newFlagSet(name)
			fs.BoolVar(&args.compiled, "compiled", false, "compile the pattern to closures first")
			fs.BoolVar(&args.all, "all", false, "print every remainder at the start of text instead")
			return fs
		})(),
		Exec: func(ctx context.Context, rest []string) error {
			if len(rest) == 0 {
				return flag.ErrHelp
			}

			expr, err := regex.ParsePattern(rest[0])

			if err != nil {
				return err
			}

			text, err := input(rest[1:])

			if err != nil {
				return err
			}

			logger := newLogger(false)
			logger.Debug("parsed pattern", "source", expr.Source, "pattern", expr.Pattern, "floating", expr.Floating)

			if args.all {
				for _, rem := range regex.MatchSet(expr.Pattern, text).Sorted() {
					outln(common.Format(rem))
				}

				return nil
			}

			var finder interface {
				Match(string) (string, bool)
				Find(string) (string, bool)
			} = expr

			if args.compiled {
				finder = expr.Compile()
			}

			find := finder.Find

			if name == "match" {
				find = finder.Match
			}

			found, ok := find(text)

			if !ok {
				return ErrNoMatch
			}

			outln(found)
			return nil
		},
	}
}

func generateCmd() *ffcli.Command {
	var args struct {
		max int
	}

	return &ffcli.Command{
		Name:       "generate",
		ShortUsage: "grammarian generate [flags] <pattern>",
		ShortHelp:  "List the strings a pattern matches, up to a length",
		LongHelp: `List every string of at most -max characters that the pattern matches
in full, shortest first. Any character (.) is shown as ` + regex.DotStandIn + `.`,
		FlagSet: (func() *flag.FlagSet {
			fs := newFlagSet("generate")
			fs.IntVar(&args.max, "max", 3, "longest string to generate")
			return fs
		})(),
		Exec: func(ctx context.Context, rest []string) error {
			if len(rest) != 1 {
				return flag.ErrHelp
			}

			if args.max < 0 {
				return errors.Errorf("-max must not be negative, got %d", args.max)
			}

			expr, err := regex.ParsePattern(rest[0])

			if err != nil {
				return err
			}

			lengths := make([]int, args.max+1)

			for i := range lengths {
				lengths[i] = i
			}

			outln(strings.Join(quoteAll(regex.Generate(expr.Pattern, lengths...)), " "))
			return nil
		},
	}
}

func quoteAll(texts []string) []string {
	out := make([]string, len(texts))

	for i, text := range texts {
		out[i] = common.Format(text)
	}

	return out
}
