// Package cli contains the cmd/grammarian CLI code.
package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mattn/go-isatty"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
	"github.com/pkg/errors"
	"github.com/tailscale/hujson"
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ErrNoMatch is returned when a command ran fine but found nothing, so that
// callers can exit the way grep does.
var ErrNoMatch = errors.New("no match")

func printf(format string, a ...any) {
	fmt.Fprintf(Stdout, format, a...)
}

func outln(a ...any) {
	fmt.Fprintln(Stdout, a...)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.String("config", "", "HuJSON config file with flag values")
	return fs
}

// options are shared by every command. Flags may also come from a HuJSON
// config file or GRAMMARIAN_* environment variables.
func options() []ff.Option {
	return []ff.Option{
		ff.WithEnvVarPrefix("GRAMMARIAN"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(HuJSONParser),
		ff.WithAllowMissingConfigFile(false),
	}
}

// HuJSONParser is an ff.ConfigFileParser for JSON with comments and trailing
// commas.
func HuJSONParser(r io.Reader, set func(name, value string) error) error {
	raw, err := io.ReadAll(r)

	if err != nil {
		return err
	}

	std, err := hujson.Standardize(raw)

	if err != nil {
		return errors.Wrap(err, "config")
	}

	return ff.JSONParser(bytes.NewReader(std), set)
}

var rootArgs struct {
	logLevel string
}

// Run runs the CLI. The args do not include the binary name.
func Run(args []string) error {
	rootfs := newFlagSet("grammarian")
	rootfs.StringVar(&rootArgs.logLevel, "log-level", "warn", "log level: trace, debug, info, warn or error")

	rootCmd := &ffcli.Command{
		Name:       "grammarian",
		ShortUsage: "grammarian [flags] <subcommand> [command flags]",
		ShortHelp:  "Parse text with PEG grammars and match simple regular expressions.",
		LongHelp: strings.TrimSpace(`
For help on subcommands, add --help after: "grammarian parse --help".
`),
		Subcommands: []*ffcli.Command{
			parseCmd(),
			verifyCmd(),
			matchCmd("match"),
			matchCmd("search"),
			generateCmd(),
		},
		FlagSet: rootfs,
		Options: options(),
		Exec:    func(context.Context, []string) error { return flag.ErrHelp },
	}

	for _, c := range rootCmd.Subcommands {
		c.Options = options()
	}

	if err := rootCmd.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	err := rootCmd.Run(context.Background())

	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(Stderr, ffcli.DefaultUsageFunc(rootCmd))
		return nil
	}

	return err
}

func newLogger(trace bool) hclog.Logger {
	level := hclog.LevelFromString(rootArgs.logLevel)

	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	if trace {
		level = hclog.Trace
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "grammarian",
		Level:  level,
		Output: Stderr,
	})
}

// colorful reports whether w is a terminal that can show escape sequences.
func colorful(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// input joins args, or reads Stdin when there are none.
func input(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	raw, err := io.ReadAll(Stdin)

	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(raw), "\n"), nil
}
