/*
Package domain contains the core models of a step program.

It defines the immutable parse tree produced by the parser, the fixed operator and
state tables the emitter dispatches on, and the error taxonomy shared by every stage.
This package is kept pure and free of I/O.

# Key Entities

  - Node: Either an atom (Symbol, Integer, Float) or an ordered List of nodes.
  - Operator: A row of the closed operator table (rendering kind, target token, arity).
  - State: A named control state and its integer code (search, carry, backup, uturn).
*/
package domain
