package compiler

import "github.com/aretw0/stepc/pkg/domain"

// IsStatementSequence reports whether an and/or list is used as a sequence of
// statements rather than as a boolean expression.
//
// A list is a sequence when its first argument is an if, or when its first
// argument is itself an and/or whose own first argument is an if. The peek
// goes exactly one level deeper; it does not recurse further.
func IsStatementSequence(l domain.List) bool {
	if l.Len() < 2 {
		return false
	}
	first := l.At(1)
	if domain.IsListWithHead(first, domain.OpIf) {
		return true
	}
	if !domain.IsListWithHead(first, domain.OpAnd, domain.OpOr) {
		return false
	}
	nested := first.(domain.List)
	return nested.Len() >= 2 && domain.IsListWithHead(nested.At(1), domain.OpIf)
}
