package validator

import (
	"fmt"

	"github.com/aretw0/stepc/pkg/domain"
)

// ValidateProgram checks the whole tree for unknown operators, unknown states
// and malformed arguments. Unlike the emitter, which stops at the first
// problem, it reports every problem it finds in source order of discovery
// (breadth-first) as a *domain.AggregateError.
func ValidateProgram(root domain.Node) error {
	var problems []error

	queue := []domain.Node{root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		l, ok := current.(domain.List)
		if !ok {
			continue // Atoms are always valid on their own
		}

		problems = append(problems, checkList(l)...)

		// Children are inspected even when the head is bad, so one typo does
		// not hide problems further down.
		for i := 0; i < l.Len(); i++ {
			if child, ok := l.At(i).(domain.List); ok {
				queue = append(queue, child)
			}
		}
	}

	if len(problems) > 0 {
		return &domain.AggregateError{Errors: problems}
	}
	return nil
}

func checkList(l domain.List) []error {
	head, ok := l.Head()
	if !ok {
		return []error{&domain.UnknownOperatorError{Pos: l.Pos(), Name: l.At(0).String()}}
	}
	op, ok := domain.LookupOperator(head.Name)
	if !ok {
		return []error{&domain.UnknownOperatorError{Pos: head.Pos(), Name: head.Name}}
	}

	args := l.Args()
	if !op.Accepts(len(args)) {
		return []error{&domain.ArgumentError{
			Pos:      l.Pos(),
			Operator: op.Name,
			Reason:   fmt.Sprintf("unexpected argument count %d", len(args)),
		}}
	}

	var problems []error
	switch op.Kind {
	case domain.KindStateTest, domain.KindStateSet:
		if !isKnownState(args[0]) {
			problems = append(problems, &domain.UnknownStateError{Pos: args[0].Pos(), Name: args[0].String()})
		}
	case domain.KindSpeed:
		for _, arg := range args {
			if !isNumber(arg) {
				problems = append(problems, &domain.ArgumentError{
					Pos:      arg.Pos(),
					Operator: op.Name,
					Reason:   fmt.Sprintf("expected numeric literal, got %s", arg),
				})
			}
		}
	case domain.KindRange:
		if _, ok := args[0].(domain.Integer); !ok {
			problems = append(problems, &domain.ArgumentError{
				Pos:      args[0].Pos(),
				Operator: op.Name,
				Reason:   fmt.Sprintf("expected integer literal, got %s", args[0]),
			})
		}
	}
	return problems
}

func isKnownState(n domain.Node) bool {
	sym, ok := n.(domain.Symbol)
	if !ok {
		return false
	}
	_, ok = domain.StateCode(sym.Name)
	return ok
}

func isNumber(n domain.Node) bool {
	switch n.(type) {
	case domain.Integer, domain.Float:
		return true
	}
	return false
}
