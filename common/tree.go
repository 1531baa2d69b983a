package common

import (
	"fmt"
	"strings"
)

// Node is an element of a parse tree: either a Tree, for a non-terminal, or a
// string holding the token a terminal matched.
type Node any

// Tree is the parse tree of a non-terminal. Tree[0] is the symbol name and
// Tree[1:] are its children in input order.
type Tree []Node

func NewTree(symbol string, children ...Node) Tree {
	tree := make(Tree, 0, len(children)+1)
	tree = append(tree, symbol)
	return append(tree, children...)
}

func (t Tree) Symbol() string {
	if len(t) == 0 {
		return ""
	}

	symbol, _ := t[0].(string)
	return symbol
}

func (t Tree) Children() []Node {
	if len(t) == 0 {
		return nil
	}

	return t[1:]
}

func (t Tree) String() string {
	return Format(t)
}

// Leaves returns the terminal tokens under n, left to right.
func Leaves(n Node) []string {
	var leaves []string
	walkLeaves(n, &leaves)
	return leaves
}

func walkLeaves(n Node, leaves *[]string) {
	switch val := n.(type) {
	case string:
		*leaves = append(*leaves, val)
	case Tree:
		for _, child := range val.Children() {
			walkLeaves(child, leaves)
		}
	}
}

// Format renders n as nested lists, e.g. ['Exp', ['Term', ['Var', 'a']]].
func Format(n Node) string {
	var sb strings.Builder
	format(&sb, n)
	return sb.String()
}

func format(sb *strings.Builder, n Node) {
	switch val := n.(type) {
	case nil:
		sb.WriteString("None")
	case string:
		sb.WriteString(quote(val))
	case Tree:
		sb.WriteByte('[')

		for i, item := range val {
			if i > 0 {
				sb.WriteString(", ")
			}

			format(sb, item)
		}

		sb.WriteByte(']')
	default:
		fmt.Fprintf(sb, "%v", val)
	}
}

// quote uses single quotes unless the string holds a single quote and no
// double quote.
func quote(s string) string {
	q := byte('\'')

	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteByte(q)

	for _, ch := range s {
		switch {
		case ch == rune(q) || ch == '\\':
			sb.WriteByte('\\')
			sb.WriteRune(ch)
		case ch == '\n':
			sb.WriteString(`\n`)
		case ch == '\t':
			sb.WriteString(`\t`)
		case ch == '\r':
			sb.WriteString(`\r`)
		case ch < 0x20 || ch == 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, ch)
		default:
			sb.WriteRune(ch)
		}
	}

	sb.WriteByte(q)
	return sb.String()
}
