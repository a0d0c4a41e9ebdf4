package ast

import (
	"fmt"

	"github.com/xiam/minilisp/lexer"
)

// Node represents one node of the parse tree: a number, a symbol, or a
// sequence of child nodes. A node exclusively owns its children.
type Node struct {
	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		tok: tok,
		v:   v,
	}
}

// NewNumber creates and returns a node of type "number"
func NewNumber(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeNumber, tok, v)
}

// NewSymbol creates and returns a node of type "symbol"
func NewSymbol(tok *lexer.Token, v string) *Node {
	return newNode(NodeTypeSymbol, tok, v)
}

// NewSequence creates and returns an empty node of type "sequence"
func NewSequence(tok *lexer.Token) *Node {
	return newNode(NodeTypeSequence, tok, []*Node{})
}

// Token returns the token the node was built from, or nil for nodes
// synthesized by the parser's tree-building actions.
func (n *Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n *Node) Type() NodeType {
	return n.nt
}

// Int returns the value of a node of type "number"
func (n *Node) Int() int64 {
	return n.v.(int64)
}

// Text returns the value of a node of type "symbol"
func (n *Node) Text() string {
	return n.v.(string)
}

// List returns all the children elements of a node of type "sequence"
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

// Len returns the number of children of a node of type "sequence"
func (n *Node) Len() int {
	return len(n.List())
}

// Push appends a child node to a node of type "sequence"
func (n *Node) Push(node *Node) *Node {
	n.v = append(n.v.([]*Node), node)
	return n
}

// IsValue returns true if the node is a number or a symbol
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsVector returns true if the node is a sequence
func (n *Node) IsVector() bool {
	return n.nt&nodeTypeVector > 0
}

func (n *Node) String() string {
	if n.IsVector() {
		return fmt.Sprintf("(%v)[%d]", n.nt, n.Len())
	}
	return fmt.Sprintf("(%v): %v", n.nt, n.v)
}
