package domain

import "sort"

// State is a named control state of the robot.
type State struct {
	Name string
	Code int
}

// InitialState is the state the generated program declares before any step runs.
const InitialState = "search"

var states = map[string]int{
	"search": 0,
	"carry":  1,
	"backup": 2,
	"uturn":  3,
}

// StateCode returns the integer code of a named state.
func StateCode(name string) (int, bool) {
	code, ok := states[name]
	return code, ok
}

// StateByCode returns the state whose code is code.
func StateByCode(code int) (State, bool) {
	for name, c := range states {
		if c == code {
			return State{Name: name, Code: c}, true
		}
	}
	return State{}, false
}

// States returns the closed state table ordered by code.
func States() []State {
	out := make([]State, 0, len(states))
	for name, code := range states {
		out = append(out, State{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
