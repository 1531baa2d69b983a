// The grammarian command parses text with PEG grammars and matches simple
// regular expressions.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/l-donovan/grammarian/cmd/grammarian/cli"
)

func main() {
	err := cli.Run(os.Args[1:])

	switch {
	case err == nil:
	case errors.Is(err, cli.ErrNoMatch):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}
