package grammarian

import (
	"fmt"
	"io"
	"strings"

	"github.com/l-donovan/grammarian/common"
	"github.com/pkg/errors"
)

var (
	// ErrMissingSeparator indicates a rule line without " => ".
	ErrMissingSeparator = errors.New("grammarian: rule is missing \" => \"")
	// ErrBadTerminal indicates a terminal atom that is not a valid regular expression.
	ErrBadTerminal = errors.New("grammarian: terminal is not a valid regular expression")
	// ErrBadWhitespace indicates a whitespace override that is not a valid regular expression.
	ErrBadWhitespace = errors.New("grammarian: whitespace is not a valid regular expression")
)

// CompileError reports a malformed grammar description. Line is 1-based and
// zero when the problem is not tied to a line.
type CompileError struct {
	Line int
	Text string
	Err  error
}

func (e *CompileError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%v (%q)", e.Err, e.Text)
	}

	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// ParseError reports input that a grammar could not parse completely. Loc is
// the furthest point the parser reached.
type ParseError struct {
	Contents string
	Symbol   string
	Loc      common.StringPos
}

func (e ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: unexpected input at %s", e.Symbol, e.Loc)
}

func digitCount(input int) int {
	if input == 0 {
		return 1
	}

	count := 0

	for input != 0 {
		input /= 10
		count++
	}

	return count
}

// PrintContext writes the lines around the error to w and marks where
// parsing stopped. The marker is drawn with terminal escape sequences when
// color is set.
func (e ParseError) PrintContext(w io.Writer, contextLineCount int, color bool) {
	lines := strings.Split(e.Contents, "\n")
	startLineNum := max(0, e.Loc.Line-contextLineCount)
	endLineNum := min(e.Loc.Line+contextLineCount+1, len(lines))
	maxLineNumWidth := digitCount(endLineNum + 1)

	fmt.Fprintln(w, "Context:")

	for i := startLineNum; i < endLineNum; i++ {
		if i != e.Loc.Line {
			fmt.Fprintf(w, "%*d │ %s\n", maxLineNumWidth, i+1, lines[i])
			continue
		}

		line := lines[i]
		col := min(e.Loc.Col, len(line))

		// We're doing a "best effort" kinda thing here for characters with wide
		// printing widths, specifically tabs.
		tabCount := strings.Count(line[:col], "\t")
		left := strings.Repeat("\t", tabCount) + strings.Repeat(" ", col-tabCount)

		marked := " "
		rest := ""

		if col < len(line) {
			marked = line[col : col+1]
			rest = line[col+1:]
		}

		if color {
			marked = "\x1b[30;47m" + marked + "\x1b[m"
		}

		fmt.Fprintf(w, "%*d │ %s%s%s\n", maxLineNumWidth, i+1, line[:col], marked, rest)
		fmt.Fprintf(w, "%*s │ %s╰─── [Starting here]\n", maxLineNumWidth, "", left)
	}
}
