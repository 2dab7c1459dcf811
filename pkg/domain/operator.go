package domain

// OperatorKind selects the rendering rule the emitter applies to a list.
type OperatorKind int

const (
	// KindProgram declares the state variable and emits each child in order.
	KindProgram OperatorKind = iota
	// KindConditional renders an if/else block.
	KindConditional
	// KindLogical renders either a statement sequence or an infix boolean expression.
	KindLogical
	// KindPrefix renders a unary prefix operator.
	KindPrefix
	// KindInfix renders a binary comparison.
	KindInfix
	// KindStateTest compares the state variable against a state code.
	KindStateTest
	// KindStateSet assigns a state code to the state variable.
	KindStateSet
	// KindStateConst assigns a fixed code to the state variable.
	KindStateConst
	// KindSpeed renders the two-argument speed primitive.
	KindSpeed
	// KindRange renders the single-argument range sensor call.
	KindRange
	// KindLeaf renders a zero-argument call to the identically named primitive.
	KindLeaf
)

// Unbounded marks an operator without an upper argument limit.
const Unbounded = -1

// Operator describes how a list with the given head renders.
type Operator struct {
	Name    string
	Kind    OperatorKind
	Token   string // target-language operator, when Kind uses one
	Code    int    // state code, for KindStateConst
	MinArgs int
	MaxArgs int // Unbounded for variadic operators
}

// Accepts reports whether n arguments satisfy the operator's arity.
func (o Operator) Accepts(n int) bool {
	if n < o.MinArgs {
		return false
	}
	return o.MaxArgs == Unbounded || n <= o.MaxArgs
}

var operators = map[string]Operator{
	OpStep:     {Name: OpStep, Kind: KindProgram, MinArgs: 0, MaxArgs: Unbounded},
	OpIf:       {Name: OpIf, Kind: KindConditional, MinArgs: 2, MaxArgs: 3},
	OpAnd:      {Name: OpAnd, Kind: KindLogical, Token: "&&", MinArgs: 2, MaxArgs: Unbounded},
	OpOr:       {Name: OpOr, Kind: KindLogical, Token: "||", MinArgs: 2, MaxArgs: Unbounded},
	OpNot:      {Name: OpNot, Kind: KindPrefix, Token: "!", MinArgs: 1, MaxArgs: 1},
	OpLt:       {Name: OpLt, Kind: KindInfix, Token: "<", MinArgs: 2, MaxArgs: 2},
	OpLte:      {Name: OpLte, Kind: KindInfix, Token: "<=", MinArgs: 2, MaxArgs: 2},
	OpGt:       {Name: OpGt, Kind: KindInfix, Token: ">", MinArgs: 2, MaxArgs: 2},
	OpGte:      {Name: OpGte, Kind: KindInfix, Token: ">=", MinArgs: 2, MaxArgs: 2},
	OpEq:       {Name: OpEq, Kind: KindInfix, Token: "==", MinArgs: 2, MaxArgs: 2},
	OpInState:  {Name: OpInState, Kind: KindStateTest, Token: "==", MinArgs: 1, MaxArgs: 1},
	OpSetState: {Name: OpSetState, Kind: KindStateSet, Token: "=", MinArgs: 1, MaxArgs: 1},
	OpSetSpeed: {Name: OpSetSpeed, Kind: KindSpeed, MinArgs: 2, MaxArgs: 2},
	OpGetRange: {Name: OpGetRange, Kind: KindRange, MinArgs: 1, MaxArgs: 1},

	// drop and pickUp keep the codes observed in deployed programs.
	OpDrop:   {Name: OpDrop, Kind: KindStateConst, Token: "=", Code: 1},
	OpPickUp: {Name: OpPickUp, Kind: KindStateConst, Token: "=", Code: 0},

	OpGetMidpoint:  {Name: OpGetMidpoint, Kind: KindLeaf},
	OpGetWidth:     {Name: OpGetWidth, Kind: KindLeaf},
	OpGetTravel:    {Name: OpGetTravel, Kind: KindLeaf},
	OpGetRotations: {Name: OpGetRotations, Kind: KindLeaf},
}

// LookupOperator returns the table entry for name.
func LookupOperator(name string) (Operator, bool) {
	op, ok := operators[name]
	return op, ok
}

// OperatorNames returns every recognized operator name, in no particular order.
func OperatorNames() []string {
	names := make([]string, 0, len(operators))
	for name := range operators {
		names = append(names, name)
	}
	return names
}
