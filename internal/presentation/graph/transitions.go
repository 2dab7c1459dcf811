package graph

import (
	"github.com/aretw0/stepc/internal/compiler"
	"github.com/aretw0/stepc/pkg/domain"
)

// EntryNode is the pseudo-state used for assignments not guarded by any inState test.
const EntryNode = "start"

// Transition is an edge of the state diagram: somewhere under a condition that
// tests From, the program assigns To.
type Transition struct {
	From      string
	To        string
	Condition string
}

// Transitions extracts the state transitions of a program.
// Conditions are rendered with emitter so labels match the generated code.
func Transitions(root domain.Node, emitter *compiler.Emitter) ([]Transition, error) {
	c := &collector{emitter: emitter, seen: make(map[Transition]bool)}
	if err := c.walk(root, nil, ""); err != nil {
		return nil, err
	}
	return c.out, nil
}

type collector struct {
	emitter *compiler.Emitter
	seen    map[Transition]bool
	out     []Transition
}

func (c *collector) add(guards []string, to, cond string) {
	if len(guards) == 0 {
		guards = []string{EntryNode}
	}
	for _, from := range guards {
		t := Transition{From: from, To: to, Condition: cond}
		if !c.seen[t] {
			c.seen[t] = true
			c.out = append(c.out, t)
		}
	}
}

func (c *collector) walk(node domain.Node, guards []string, cond string) error {
	l, ok := node.(domain.List)
	if !ok {
		return nil
	}
	head, ok := l.Head()
	if !ok {
		return &domain.UnknownOperatorError{Pos: l.Pos(), Name: l.At(0).String()}
	}
	op, ok := domain.LookupOperator(head.Name)
	if !ok {
		return &domain.UnknownOperatorError{Pos: head.Pos(), Name: head.Name}
	}
	args := l.Args()

	switch op.Kind {
	case domain.KindProgram, domain.KindLogical:
		for _, child := range args {
			if err := c.walk(child, guards, cond); err != nil {
				return err
			}
		}

	case domain.KindConditional:
		if len(args) < 2 {
			return nil
		}
		text, err := c.emitter.Expression(args[0])
		if err != nil {
			return err
		}
		thenGuards := guards
		if tested := testedStates(args[0]); len(tested) > 0 {
			thenGuards = tested
		}
		if err := c.walk(args[1], thenGuards, text); err != nil {
			return err
		}
		if len(args) == 3 {
			if err := c.walk(args[2], guards, "!("+text+")"); err != nil {
				return err
			}
		}

	case domain.KindStateSet:
		if len(args) != 1 {
			return nil
		}
		sym, ok := args[0].(domain.Symbol)
		if !ok {
			return &domain.UnknownStateError{Pos: args[0].Pos(), Name: args[0].String()}
		}
		if _, ok := domain.StateCode(sym.Name); !ok {
			return &domain.UnknownStateError{Pos: sym.Pos(), Name: sym.Name}
		}
		c.add(guards, sym.Name, cond)

	case domain.KindStateConst:
		if st, ok := domain.StateByCode(op.Code); ok {
			c.add(guards, st.Name, cond)
		}
	}
	return nil
}

// testedStates returns the states a condition requires to hold: inState tests
// reachable through and/or, but not through not.
func testedStates(cond domain.Node) []string {
	l, ok := cond.(domain.List)
	if !ok {
		return nil
	}
	switch {
	case l.HeadIs(domain.OpInState):
		if l.Len() == 2 {
			if sym, ok := l.At(1).(domain.Symbol); ok {
				return []string{sym.Name}
			}
		}
	case l.HeadIs(domain.OpAnd), l.HeadIs(domain.OpOr):
		var out []string
		for _, child := range l.Args() {
			out = append(out, testedStates(child)...)
		}
		return out
	}
	return nil
}
