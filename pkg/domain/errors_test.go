package domain

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	pos := Position{Line: 2, Col: 7}

	assert.Equal(t, "syntax error at 2:7: unexpected ')'", (&SyntaxError{Pos: pos, Msg: "unexpected ')'"}).Error())
	assert.Equal(t, `2:7: unknown operator "while"`, (&UnknownOperatorError{Pos: pos, Name: "while"}).Error())
	assert.Equal(t, `2:7: unknown state "bogus"`, (&UnknownStateError{Pos: pos, Name: "bogus"}).Error())
	assert.Equal(t, "2:7: not: expected 1 argument, got 2", (&ArgumentError{Pos: pos, Operator: "not", Reason: "expected 1 argument, got 2"}).Error())
}

func TestIOError_Unwrap(t *testing.T) {
	err := &IOError{Op: "read", Path: "in.step", Err: fs.ErrNotExist}

	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "failed to read in.step")
}

func TestAggregateError(t *testing.T) {
	single := &AggregateError{Errors: []error{&UnknownStateError{Name: "bogus"}}}
	assert.Equal(t, `0:0: unknown state "bogus"`, single.Error())

	multi := &AggregateError{Errors: []error{
		&UnknownStateError{Name: "bogus"},
		&UnknownOperatorError{Name: "while"},
	}}
	assert.Contains(t, multi.Error(), "2 problems:")
	assert.Contains(t, multi.Error(), `  2. 0:0: unknown operator "while"`)

	var opErr *UnknownOperatorError
	assert.True(t, errors.As(multi, &opErr))
	assert.Equal(t, "while", opErr.Name)

	assert.Len(t, Problems(multi), 2)
	assert.Nil(t, Problems(errors.New("plain")))
}
