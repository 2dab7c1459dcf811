/*
Package stepc translates step programs into C statements for a robot controller.

A step program is a single s-expression describing a robot's finite-state
behavior: conditionals over sensor readings, tests of the current state, and
state assignments. stepc parses the program into an immutable tree, walks it
with a fixed operator table and renders target-language lines that run on the
controller.

# Pipeline

Conversion is a single linear pass:

	text --Parser--> tree --Emitter--> lines --writer--> file

Malformed input is a hard failure: a syntax error, unknown operator or unknown
state aborts the run and the output file is never partially written.

# Usage

	package main

	import (
		"log"

		"github.com/aretw0/stepc"
	)

	func main() {
		if err := stepc.Convert("forage.step", "forage.c"); err != nil {
			log.Fatal(err)
		}
	}

Use New with options to configure logging, indentation or metrics:

	conv := stepc.New(stepc.WithIndentUnit("\t"))
	lines, err := conv.Translate([]byte("(step (if (inState search) (setState carry)))"))
*/
package stepc
