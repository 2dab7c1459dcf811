package compiler

import (
	"testing"

	"github.com/aretw0/stepc/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestIsStatementSequence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Leading if", "(and (if (eq 1 1) (drop)) (pickUp))", true},
		{"Leading if in or", "(or (if (eq 1 1) (drop)) (pickUp))", true},
		{"Nested and with leading if", "(and (and (if (eq 1 1) (drop)) (pickUp)) (drop))", true},
		{"Nested or with leading if", "(and (or (if (eq 1 1) (drop)) (pickUp)) (drop))", true},
		{"Boolean expression", "(and (lt 1 2) (gt 3 4))", false},
		{"If in second position", "(and (eq 1 1) (if (eq 1 1) (drop)))", false},
		{"Nested and without if", "(and (and (eq 1 1) (eq 2 2)) (drop))", false},
		{"Peek stops one level down", "(and (and (and (if (eq 1 1) (drop)) (drop)) (drop)) (drop))", false},
		{"Nested not is not a sequence", "(and (not (if (eq 1 1) (drop))) (drop))", false},
		{"Atom first child", "(and 1 2)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustParse(t, tt.input)
			assert.Equal(t, tt.want, IsStatementSequence(node.(domain.List)))
		})
	}
}

func TestIsStatementSequence_ShortList(t *testing.T) {
	l := domain.NewList(domain.Position{}, domain.Symbol{Name: "and"})
	assert.False(t, IsStatementSequence(l))
}
