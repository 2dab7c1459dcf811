package domain

import (
	"fmt"
	"strings"
)

// Position identifies the first character of a node in the source text.
// Line and Col are 1-based.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is an element of the parse tree: an atom or a List.
// Nodes are never mutated once the parser has built them.
type Node interface {
	// Pos returns the location of the node in the source text.
	Pos() Position
	// String returns the node in s-expression notation.
	String() string
}

// Symbol is a bare word made of letters, such as an operator or state name.
type Symbol struct {
	Name     string
	Position Position
}

// Integer is a whole-number literal. Text keeps the source lexeme.
type Integer struct {
	Value    int64
	Text     string
	Position Position
}

// Float is a decimal literal. Text keeps the source lexeme.
type Float struct {
	Value    float64
	Text     string
	Position Position
}

func (s Symbol) Pos() Position  { return s.Position }
func (s Symbol) String() string { return s.Name }

func (i Integer) Pos() Position  { return i.Position }
func (i Integer) String() string { return i.Text }

func (f Float) Pos() Position  { return f.Position }
func (f Float) String() string { return f.Text }

// List is an ordered sequence of nodes. By convention the first element is a
// Symbol naming the operation.
type List struct {
	elems    []Node
	Position Position
}

// NewList builds a List from elems. The slice is copied so later changes to
// the caller's slice are not observed.
func NewList(pos Position, elems ...Node) List {
	cp := make([]Node, len(elems))
	copy(cp, elems)
	return List{elems: cp, Position: pos}
}

func (l List) Pos() Position { return l.Position }

// Len returns the number of elements, head included.
func (l List) Len() int { return len(l.elems) }

// At returns the i-th element.
func (l List) At(i int) Node { return l.elems[i] }

// Head returns the operator symbol of the list.
// ok is false when the list is empty or its first element is not a Symbol.
func (l List) Head() (Symbol, bool) {
	if len(l.elems) == 0 {
		return Symbol{}, false
	}
	s, ok := l.elems[0].(Symbol)
	return s, ok
}

// HeadIs reports whether the list's operator symbol equals name.
func (l List) HeadIs(name string) bool {
	s, ok := l.Head()
	return ok && s.Name == name
}

// Args returns a copy of every element after the head.
func (l List) Args() []Node {
	if len(l.elems) < 2 {
		return nil
	}
	cp := make([]Node, len(l.elems)-1)
	copy(cp, l.elems[1:])
	return cp
}

func (l List) String() string {
	parts := make([]string, len(l.elems))
	for i, e := range l.elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// IsListWithHead reports whether n is a List whose operator is one of names.
func IsListWithHead(n Node, names ...string) bool {
	l, ok := n.(List)
	if !ok {
		return false
	}
	for _, name := range names {
		if l.HeadIs(name) {
			return true
		}
	}
	return false
}
