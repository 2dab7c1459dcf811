package main

import (
	"fmt"

	"github.com/aretw0/stepc/internal/presentation/graph"
	"github.com/aretw0/stepc/internal/validator"
	"github.com/aretw0/stepc/pkg/domain"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <input>",
	Short: "Export the state transition diagram",
	Long:  `Inspects the program and outputs a Mermaid diagram (graph TD) of the state transitions it performs.`,
	Args:  exactArgs(1, "<input>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraph(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("state", "", "Highlight the given state on the diagram")
}

func runGraph(cmd *cobra.Command, path string) error {
	var overlay *graph.GraphOverlay
	if state, _ := cmd.Flags().GetString("state"); state != "" {
		if _, ok := domain.StateCode(state); !ok {
			return &domain.UnknownStateError{Name: state}
		}
		overlay = &graph.GraphOverlay{CurrentState: state}
	}

	conv, _, _, err := newConverter(cmd)
	if err != nil {
		return err
	}
	root, err := readProgram(conv, path)
	if err != nil {
		return err
	}
	if err := validator.ValidateProgram(root); err != nil {
		return err
	}

	transitions, err := graph.Transitions(root, conv.Emitter())
	if err != nil {
		return err
	}

	// Generate and print Mermaid graph
	fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(transitions, overlay))
	return nil
}
