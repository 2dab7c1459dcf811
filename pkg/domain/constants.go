package domain

// StateVariable is the name of the target-language variable holding the current state code.
const StateVariable = "current_state"

// Operator names recognized in list heads.
const (
	OpStep     = "step"
	OpIf       = "if"
	OpAnd      = "and"
	OpOr       = "or"
	OpNot      = "not"
	OpLt       = "lt"
	OpLte      = "lte"
	OpGt       = "gt"
	OpGte      = "gte"
	OpEq       = "eq"
	OpInState  = "inState"
	OpSetState = "setState"
	OpSetSpeed = "setSpeed"
	OpGetRange = "getRange"
	OpDrop     = "drop"
	OpPickUp   = "pickUp"

	OpGetMidpoint  = "getMidpoint"
	OpGetWidth     = "getWidth"
	OpGetTravel    = "getTravel"
	OpGetRotations = "getRotations"
)
