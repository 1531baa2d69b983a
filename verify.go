package grammarian

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Report summarizes a grammar for a human checking it for mistakes.
type Report struct {
	// NonTerminals are the symbols the grammar defines.
	NonTerminals []string
	// Terminals are right-hand side atoms that are not defined as symbols.
	Terminals []string
	// Suspects are terminals made only of letters and digits, which are
	// usually misspelled symbols.
	Suspects []string
	// Orphans are symbols that no right-hand side mentions.
	Orphans []string
	// LeftRecursive are symbols that can reach themselves without consuming
	// input. Parsing them does not terminate.
	LeftRecursive []string
}

// Verify inspects g. It is a diagnostic only; Parse never consults it.
func Verify(g *Grammar) Report {
	var report Report
	mentioned := map[string]bool{}

	for _, symbol := range g.order {
		for _, alt := range g.rules[symbol].Alternatives {
			for _, atom := range alt {
				mentioned[atom.Text] = true
			}
		}
	}

	report.NonTerminals = slices.Sorted(slices.Values(g.order))

	for text := range mentioned {
		if _, defined := g.rules[text]; defined {
			continue
		}

		report.Terminals = append(report.Terminals, text)

		if isAlnum(text) {
			report.Suspects = append(report.Suspects, text)
		}
	}

	for _, symbol := range report.NonTerminals {
		if !mentioned[symbol] {
			report.Orphans = append(report.Orphans, symbol)
		}
	}

	report.LeftRecursive = leftRecursive(g)

	slices.Sort(report.Terminals)
	slices.Sort(report.Suspects)
	return report
}

func isAlnum(text string) bool {
	for _, ch := range text {
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) {
			return false
		}
	}

	return text != ""
}

// nullable works out which symbols can match without consuming input. A
// terminal is taken to be nullable when it matches the empty string.
func nullable(g *Grammar) map[string]bool {
	result := map[string]bool{}

	atomNullable := func(atom *Atom) bool {
		if atom.Kind == Terminal {
			return atom.pattern.MatchString("")
		}

		return result[atom.Text]
	}

	for changed := true; changed; {
		changed = false

		for _, symbol := range g.order {
			if result[symbol] {
				continue
			}

			for _, alt := range g.rules[symbol].Alternatives {
				if !slices.ContainsFunc(alt, func(atom *Atom) bool { return !atomNullable(atom) }) {
					result[symbol] = true
					changed = true
					break
				}
			}
		}
	}

	return result
}

func leftRecursive(g *Grammar) []string {
	canBeEmpty := nullable(g)

	// first[A] holds the symbols A may call before it consumes anything.
	first := map[string][]string{}

	for _, symbol := range g.order {
		for _, alt := range g.rules[symbol].Alternatives {
			for _, atom := range alt {
				if atom.Kind == NonTerminal {
					first[symbol] = append(first[symbol], atom.Text)

					if !canBeEmpty[atom.Text] {
						break
					}
				} else if !atom.pattern.MatchString("") {
					break
				}
			}
		}
	}

	var found []string

	for _, symbol := range g.order {
		seen := map[string]bool{}
		stack := slices.Clone(first[symbol])

		for len(stack) > 0 {
			next := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if next == symbol {
				found = append(found, symbol)
				break
			}

			if !seen[next] {
				seen[next] = true
				stack = append(stack, first[next]...)
			}
		}
	}

	slices.Sort(found)
	return found
}

func (r Report) String() string {
	var sb strings.Builder

	show := func(title string, tokens []string) {
		fmt.Fprintf(&sb, "%-13s = %s\n", title, strings.Join(tokens, " "))
	}

	show("Non-Terminals", r.NonTerminals)
	show("Terminals", r.Terminals)
	show("Suspects", r.Suspects)
	show("Orphans", r.Orphans)
	show("Left-Recurse", r.LeftRecursive)

	return sb.String()
}
