package parser

import (
	"github.com/xiam/minilisp/ast"
)

// symbolStack is the control stack: grammar symbols yet to be processed.
type symbolStack struct {
	items []symbol
}

func (s *symbolStack) push(sym symbol) {
	s.items = append(s.items, sym)
}

func (s *symbolStack) pop() symbol {
	sym := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return sym
}

func (s *symbolStack) len() int {
	return len(s.items)
}

// nodeStack is the value stack: partially and fully built tree fragments
// awaiting combination by semantic actions.
type nodeStack struct {
	items []*ast.Node
}

func (s *nodeStack) push(n *ast.Node) {
	s.items = append(s.items, n)
}

func (s *nodeStack) pop() *ast.Node {
	n := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return n
}

func (s *nodeStack) len() int {
	return len(s.items)
}
