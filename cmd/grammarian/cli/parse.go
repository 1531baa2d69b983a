package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/common"
)

func parseCmd() *ffcli.Command {
	var args struct {
		grammarArgs
		memoLimit int
		noMemo    bool
		trace     bool
		format    string
		indent    int
		tabs      bool
		full      bool
		context   int
	}

	return &ffcli.Command{
		Name:       "parse",
		ShortUsage: "grammarian parse [flags] [text...]",
		ShortHelp:  "Parse text with a grammar and print the tree",
		LongHelp: `Parse the arguments, or standard input when there are none, and print
the resulting tree and whatever input was left over.

With -format python the output is a (tree, remainder) pair, or (None, None)
when parsing failed. The indent and minify formats print the tree as JSON
arrays, followed by the remainder.`,
		FlagSet: (func() *flag.FlagSet {
			fs := newFlagSet("parse")
			args.grammarArgs.register(fs)
			fs.IntVar(&args.memoLimit, "memo-limit", 0, "most sub-parses to remember; 0 is unlimited")
			fs.BoolVar(&args.noMemo, "no-memo", false, "disable memoization")
			fs.BoolVar(&args.trace, "trace", false, "log every atom tried")
			fs.StringVar(&args.format, "format", "python", "output format: python, indent or minify")
			fs.IntVar(&args.indent, "indent", 2, "spaces per level for -format indent")
			fs.BoolVar(&args.tabs, "tabs", false, "indent with tabs for -format indent")
			fs.BoolVar(&args.full, "full", false, "fail unless all input is consumed")
			fs.IntVar(&args.context, "context", 2, "lines of context shown around a -full failure")
			return fs
		})(),
		Exec: func(ctx context.Context, rest []string) error {
			g, start, err := args.load()

			if err != nil {
				return err
			}

			text, err := input(rest)

			if err != nil {
				return err
			}

			logger := newLogger(args.trace)
			opts := []grammarian.Option{
				grammarian.WithLogger(logger),
				grammarian.WithTrace(args.trace),
				grammarian.WithMemoLimit(args.memoLimit),
			}

			if args.noMemo {
				opts = append(opts, grammarian.WithoutMemo())
			}

			var render func(common.Node) (string, error)

			switch args.format {
			case "python":
			case "indent":
				render = func(n common.Node) (string, error) { return common.Serialize(n, args.tabs, args.indent) }
			case "minify":
				render = common.Minify
			default:
				return errors.Errorf("unknown format %q", args.format)
			}

			if args.full {
				tree, err := g.ParseAll(start, text, opts...)

				var parseErr grammarian.ParseError

				if errors.As(err, &parseErr) {
					parseErr.PrintContext(Stderr, args.context, colorful(Stderr))
				}

				if err != nil {
					return err
				}

				if render == nil {
					outln(common.Format(tree))
					return nil
				}

				out, err := render(tree)

				if err != nil {
					return err
				}

				outln(out)
				return nil
			}

			result := g.Parse(start, text, opts...)
			logger.Debug("memo", "hits", result.Stats.Hits, "misses", result.Stats.Misses)

			if render == nil {
				outln(result)
			} else if result.OK() {
				out, err := render(result.Tree)

				if err != nil {
					return err
				}

				outln(out)
				printf("remainder: %s\n", common.Format(result.Remainder))
			}

			if !result.OK() {
				return ErrNoMatch
			}

			return nil
		},
	}
}

func verifyCmd() *ffcli.Command {
	var args grammarArgs

	return &ffcli.Command{
		Name:       "verify",
		ShortUsage: "grammarian verify [flags]",
		ShortHelp:  "Summarize a grammar's symbols and flag likely mistakes",
		FlagSet: (func() *flag.FlagSet {
			fs := newFlagSet("verify")
			args.register(fs)
			return fs
		})(),
		Exec: func(ctx context.Context, rest []string) error {
			g, _, err := args.load()

			if err != nil {
				return err
			}

			report := grammarian.Verify(g)
			fmt.Fprint(Stdout, report)

			if len(report.LeftRecursive) > 0 {
				newLogger(false).Warn("grammar is left recursive; parsing it will not terminate", "symbols", report.LeftRecursive)
			}

			return nil
		},
	}
}
