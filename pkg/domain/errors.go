package domain

import (
	"fmt"
	"strings"
)

// SyntaxError is returned when the source text is not exactly one well-formed s-expression.
type SyntaxError struct {
	Pos Position
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// UnknownOperatorError is returned when a list head is not in the operator table.
type UnknownOperatorError struct {
	Pos  Position
	Name string // source text of the head
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("%s: unknown operator %q", e.Pos, e.Name)
}

// UnknownStateError is returned when a state name is absent from the state table.
type UnknownStateError struct {
	Pos  Position
	Name string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("%s: unknown state %q", e.Pos, e.Name)
}

// ArgumentError is returned when an operator gets the wrong number or kind of arguments.
type ArgumentError struct {
	Pos      Position
	Operator string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Operator, e.Reason)
}

// IOError wraps a failure to read the input or write the output.
type IOError struct {
	Op   string // "read" or "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UsageError is returned when the command line has the wrong shape.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string { return e.Msg }

// AggregateError represents multiple program problems found in one pass.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d problems:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual problems to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// Problems returns all problems if err is an AggregateError.
// Otherwise returns nil.
func Problems(err error) []error {
	if aggr, ok := err.(*AggregateError); ok {
		return aggr.Errors
	}
	return nil
}
