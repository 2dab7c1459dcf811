package validator

import (
	"errors"
	"testing"

	"github.com/aretw0/stepc/internal/compiler"
	"github.com/aretw0/stepc/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProgram(t *testing.T) {
	parser := compiler.NewParser()

	// 1. Scenario A: Valid program
	valid, err := parser.ParseString(`(step
		(if (and (inState search) (gt (getWidth) 10)) (setState carry) (setSpeed 1 -1.5))
		(if (inState carry) (and (if (lt (getRange 3) 40) (drop)) (setState backup))))`)
	require.NoError(t, err)
	assert.NoError(t, ValidateProgram(valid))

	// 2. Scenario B: Several problems at different depths
	broken, err := parser.ParseString(`(step
		(fly)
		(if (inState bogus) (setSpeed fast 1))
		(not)
		(if (eq 1 1) (setState 4) (getRange 2.5)))`)
	require.NoError(t, err)

	err = ValidateProgram(broken)
	require.Error(t, err)

	problems := domain.Problems(err)
	require.Len(t, problems, 6, "got: %v", err)

	var opErr *domain.UnknownOperatorError
	assert.True(t, errors.As(problems[0], &opErr))
	assert.Equal(t, "fly", opErr.Name)

	var argErr *domain.ArgumentError
	assert.True(t, errors.As(problems[1], &argErr))
	assert.Equal(t, "not", argErr.Operator)

	var stateErr *domain.UnknownStateError
	assert.True(t, errors.As(problems[2], &stateErr))
	assert.Equal(t, "bogus", stateErr.Name)

	assert.True(t, errors.As(problems[3], &argErr))
	assert.Equal(t, "setSpeed", argErr.Operator)

	assert.True(t, errors.As(problems[4], &stateErr))
	assert.Equal(t, "4", stateErr.Name)

	assert.True(t, errors.As(problems[5], &argErr))
	assert.Equal(t, "getRange", argErr.Operator)
}

func TestValidateProgram_ChildrenOfUnknownHead(t *testing.T) {
	node, err := compiler.NewParser().ParseString("(loop (inState bogus))")
	require.NoError(t, err)

	problems := domain.Problems(ValidateProgram(node))
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0].Error(), `unknown operator "loop"`)
	assert.Contains(t, problems[1].Error(), `unknown state "bogus"`)
}
