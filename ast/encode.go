package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode transforms a node into its compact JSON representation: numbers
// as decimal integers, symbols as JSON strings, sequences as arrays.
func Encode(n *Node) []byte {
	var sb strings.Builder
	encodeNode(&sb, n)
	return []byte(sb.String())
}

// EncodeIndent transforms a node into pretty-printed JSON with two-space
// indentation and one array element per line.
func EncodeIndent(n *Node) []byte {
	var sb strings.Builder
	encodeNodeIndent(&sb, n, 0)
	return []byte(sb.String())
}

func encodeNode(sb *strings.Builder, n *Node) {
	if n == nil {
		sb.WriteString("null")
		return
	}

	switch n.Type() {
	case NodeTypeNumber:
		sb.WriteString(strconv.FormatInt(n.Int(), 10))

	case NodeTypeSymbol:
		sb.WriteString(escapeString(n.Text()))

	case NodeTypeSequence:
		sb.WriteString("[")
		for i, child := range n.List() {
			if i > 0 {
				sb.WriteString(",")
			}
			encodeNode(sb, child)
		}
		sb.WriteString("]")

	default:
		panic("unknown node type")
	}
}

func encodeNodeIndent(sb *strings.Builder, n *Node, level int) {
	if n == nil {
		sb.WriteString("null")
		return
	}

	switch n.Type() {
	case NodeTypeNumber, NodeTypeSymbol:
		encodeNode(sb, n)

	case NodeTypeSequence:
		list := n.List()
		if len(list) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteString("[\n")
		for i, child := range list {
			writeIndent(sb, level+1)
			encodeNodeIndent(sb, child, level+1)
			if i < len(list)-1 {
				sb.WriteString(",")
			}
			sb.WriteString("\n")
		}
		writeIndent(sb, level)
		sb.WriteString("]")

	default:
		panic("unknown node type")
	}
}

func writeIndent(sb *strings.Builder, level int) {
	sb.WriteString(strings.Repeat("  ", level))
}

// escapeString renders s as a JSON string literal. Runes outside the
// printable ASCII range are written as \u escapes.
func escapeString(s string) string {
	var sb strings.Builder
	sb.WriteString(`"`)

	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '/':
			sb.WriteString(`\/`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r > 0x7e {
				sb.WriteString(fmt.Sprintf(`\u%04x`, r))
			} else {
				sb.WriteRune(r)
			}
		}
	}

	sb.WriteString(`"`)
	return sb.String()
}
