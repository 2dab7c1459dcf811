package compiler

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/aretw0/stepc/pkg/domain"
)

// DefaultIndentUnit is the text added per nesting level.
const DefaultIndentUnit = "  "

// errStopped signals that the consumer of Emit stopped iterating.
var errStopped = errors.New("emit stopped by consumer")

// Emitter renders a program tree into target-language line fragments.
// It holds no per-run state and can be shared.
type Emitter struct {
	unit string
}

// EmitterOption configures an Emitter.
type EmitterOption func(*Emitter)

// WithIndentUnit sets the text added for each nesting level.
func WithIndentUnit(unit string) EmitterOption {
	return func(e *Emitter) {
		e.unit = unit
	}
}

// NewEmitter creates an emitter with the given options.
func NewEmitter(opts ...EmitterOption) *Emitter {
	e := &Emitter{unit: DefaultIndentUnit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Emit lazily renders node at the given indent.
// Fragments are produced as the consumer pulls them. If rendering fails,
// a single ("", err) pair is yielded and the sequence ends.
func (e *Emitter) Emit(node domain.Node, indent string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := e.walk(node, indent, func(line string) bool {
			return yield(line, nil)
		})
		if err != nil && !errors.Is(err, errStopped) {
			yield("", err)
		}
	}
}

// Lines renders a whole program from the outermost indent.
func (e *Emitter) Lines(node domain.Node) ([]string, error) {
	return e.collect(node, "")
}

// Expression renders node as a single joined fragment.
func (e *Emitter) Expression(node domain.Node) (string, error) {
	parts, err := e.collect(node, "")
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}

func (e *Emitter) collect(node domain.Node, indent string) ([]string, error) {
	var out []string
	err := e.walk(node, indent, func(line string) bool {
		out = append(out, line)
		return true
	})
	return out, err
}

// joined renders node one level deeper and concatenates its fragments.
func (e *Emitter) joined(node domain.Node, indent string) (string, error) {
	parts, err := e.collect(node, indent+e.unit)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}

// walk is the single recursive dispatch over the tree. It returns errStopped
// when yield reports the consumer is done.
func (e *Emitter) walk(node domain.Node, indent string, yield func(string) bool) error {
	emit := func(line string) error {
		if !yield(line) {
			return errStopped
		}
		return nil
	}

	l, ok := node.(domain.List)
	if !ok {
		return emit(node.String())
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
	if !op.Accepts(len(args)) {
		return arityError(l, op, len(args))
	}

	switch op.Kind {
	case domain.KindProgram:
		if err := emit(fmt.Sprintf("%sint %s = 0;", indent, domain.StateVariable)); err != nil {
			return err
		}
		for _, child := range args {
			if err := e.walk(child, indent, yield); err != nil {
				return err
			}
		}
		return nil

	case domain.KindConditional:
		return e.walkIf(args, indent, emit)

	case domain.KindLogical:
		if IsStatementSequence(l) {
			for _, child := range args {
				if err := e.walk(child, indent, yield); err != nil {
					return err
				}
			}
			return nil
		}
		var operands []string
		for _, child := range args {
			parts, err := e.collect(child, indent+e.unit)
			if err != nil {
				return err
			}
			operands = append(operands, parts...)
		}
		return emit(strings.Join(operands, " "+op.Token+" "))

	case domain.KindPrefix:
		operand, err := e.joined(args[0], indent)
		if err != nil {
			return err
		}
		return emit(op.Token + operand)

	case domain.KindInfix:
		left, err := e.joined(args[0], indent)
		if err != nil {
			return err
		}
		right, err := e.joined(args[1], indent)
		if err != nil {
			return err
		}
		return emit(fmt.Sprintf("%s %s %s", left, op.Token, right))

	case domain.KindStateTest, domain.KindStateSet:
		code, err := stateCode(args[0])
		if err != nil {
			return err
		}
		return emit(fmt.Sprintf("%s %s %d", domain.StateVariable, op.Token, code))

	case domain.KindStateConst:
		return emit(fmt.Sprintf("%s %s %d", domain.StateVariable, op.Token, op.Code))

	case domain.KindSpeed:
		left, err := numericArg(op, args[0])
		if err != nil {
			return err
		}
		right, err := numericArg(op, args[1])
		if err != nil {
			return err
		}
		return emit(fmt.Sprintf("%s(%f, %f)", op.Name, left, right))

	case domain.KindRange:
		sensor, ok := args[0].(domain.Integer)
		if !ok {
			return &domain.ArgumentError{Pos: args[0].Pos(), Operator: op.Name, Reason: fmt.Sprintf("expected integer literal, got %s", args[0])}
		}
		return emit(fmt.Sprintf("%s(%d)", op.Name, sensor.Value))

	case domain.KindLeaf:
		return emit(op.Name + "()")
	}

	return &domain.UnknownOperatorError{Pos: head.Pos(), Name: head.Name}
}

func (e *Emitter) walkIf(args []domain.Node, indent string, emit func(string) error) error {
	cond, err := e.joined(args[0], indent)
	if err != nil {
		return err
	}
	if err := emit(fmt.Sprintf("%sif (%s) {", indent, cond)); err != nil {
		return err
	}
	if err := e.walkBody(args[1], indent, emit); err != nil {
		return err
	}
	if len(args) == 3 {
		if err := emit(indent + "} else {"); err != nil {
			return err
		}
		if err := e.walkBody(args[2], indent, emit); err != nil {
			return err
		}
	}
	return emit(indent + "}")
}

// walkBody writes a branch of an if. A single fragment becomes one terminated
// statement; several fragments are already complete lines.
func (e *Emitter) walkBody(body domain.Node, indent string, emit func(string) error) error {
	lines, err := e.collect(body, indent+e.unit)
	if err != nil {
		return err
	}
	if len(lines) == 1 {
		return emit(indent + e.unit + lines[0] + ";")
	}
	for _, line := range lines {
		if err := emit(line); err != nil {
			return err
		}
	}
	return nil
}

func stateCode(arg domain.Node) (int, error) {
	sym, ok := arg.(domain.Symbol)
	if !ok {
		return 0, &domain.UnknownStateError{Pos: arg.Pos(), Name: arg.String()}
	}
	code, ok := domain.StateCode(sym.Name)
	if !ok {
		return 0, &domain.UnknownStateError{Pos: sym.Pos(), Name: sym.Name}
	}
	return code, nil
}

func numericArg(op domain.Operator, arg domain.Node) (float64, error) {
	switch v := arg.(type) {
	case domain.Integer:
		return float64(v.Value), nil
	case domain.Float:
		return v.Value, nil
	}
	return 0, &domain.ArgumentError{Pos: arg.Pos(), Operator: op.Name, Reason: fmt.Sprintf("expected numeric literal, got %s", arg)}
}

func arityError(l domain.List, op domain.Operator, got int) error {
	var want string
	switch {
	case op.MaxArgs == domain.Unbounded:
		want = fmt.Sprintf("at least %d", op.MinArgs)
	case op.MinArgs == op.MaxArgs:
		want = fmt.Sprintf("%d", op.MinArgs)
	default:
		want = fmt.Sprintf("%d to %d", op.MinArgs, op.MaxArgs)
	}
	noun := "arguments"
	if op.MinArgs == 1 && op.MaxArgs == 1 {
		noun = "argument"
	}
	return &domain.ArgumentError{Pos: l.Pos(), Operator: op.Name, Reason: fmt.Sprintf("expected %s %s, got %d", want, noun, got)}
}
