package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeSequence:
		fmt.Printf("[%d]\n", n.Len())
		for _, child := range n.List() {
			printLevel(child, level+1)
		}

	case NodeTypeNumber:
		fmt.Printf("%d\n", n.Int())

	case NodeTypeSymbol:
		fmt.Printf("%q\n", n.Text())

	default:
		panic("unknown node type")
	}
}
