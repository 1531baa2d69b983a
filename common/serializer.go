package common

import (
	"bytes"
	"encoding/json"
	"strings"
)

type SerializerConfig struct {
	useTabs    bool
	indentSize int
	minify     bool
}

func (c SerializerConfig) Indent(indentLevel int) string {
	if c.minify {
		return ""
	}

	if c.useTabs {
		return strings.Repeat("\t", indentLevel)
	}

	return strings.Repeat(" ", c.indentSize*indentLevel)
}

func (c SerializerConfig) Sep(separator string, alt string) string {
	if c.minify {
		return alt
	}

	return separator
}

// Serialize renders n as a JSON array tree, one node per line. The head/tail
// shape of Tree is kept, so consumers can read element 0 as the symbol.
func Serialize(n Node, useTabs bool, indentSize int) (string, error) {
	config := SerializerConfig{useTabs: useTabs, indentSize: indentSize}
	var sb strings.Builder
	err := config.serialize(&sb, n, 0)
	return sb.String(), err
}

func Minify(n Node) (string, error) {
	config := SerializerConfig{minify: true}
	var sb strings.Builder
	err := config.serialize(&sb, n, 0)
	return sb.String(), err
}

func (c SerializerConfig) serialize(sb *strings.Builder, n Node, indentLevel int) error {
	switch val := n.(type) {
	case string:
		encoded, err := jsonString(val)

		if err != nil {
			return err
		}

		sb.WriteString(encoded)
	case Tree:
		// Leaf-only trees stay on one line: ["Var", "a"]
		if flat(val) {
			sb.WriteByte('[')

			for i, item := range val {
				if i > 0 {
					sb.WriteString(c.Sep(", ", ","))
				}

				if err := c.serialize(sb, item, indentLevel); err != nil {
					return err
				}
			}

			sb.WriteByte(']')
			return nil
		}

		sb.WriteString("[" + c.Sep("\n", ""))

		for i, item := range val {
			sb.WriteString(c.Indent(indentLevel + 1))

			if err := c.serialize(sb, item, indentLevel+1); err != nil {
				return err
			}

			if i < len(val)-1 {
				sb.WriteByte(',')
			}

			sb.WriteString(c.Sep("\n", ""))
		}

		sb.WriteString(c.Indent(indentLevel) + "]")
	default:
		encoded, err := json.Marshal(val)

		if err != nil {
			return err
		}

		sb.Write(encoded)
	}

	return nil
}

func jsonString(s string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func flat(t Tree) bool {
	for _, item := range t {
		if _, ok := item.(string); !ok {
			return false
		}
	}

	return true
}
