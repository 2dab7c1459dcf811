package main

import (
	"fmt"

	"github.com/aretw0/stepc/internal/presentation/tui"
	"github.com/aretw0/stepc/internal/validator"
	"github.com/aretw0/stepc/pkg/domain"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <input>",
	Short: "Check a step program without writing any output",
	Long:  `Parses the program and reports every unknown operator, unknown state and malformed argument at once.`,
	Args:  exactArgs(1, "<input>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, path string) error {
	conv, _, _, err := newConverter(cmd)
	if err != nil {
		return err
	}
	root, err := readProgram(conv, path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := validator.ValidateProgram(root); err != nil {
		problems := domain.Problems(err)
		fmt.Fprintln(out, tui.Failure(fmt.Sprintf("%s: %d problem(s)", path, len(problems))))
		for _, p := range problems {
			fmt.Fprintf(out, "  %v\n", p)
		}
		return errReported
	}

	fmt.Fprintln(out, tui.Success(fmt.Sprintf("%s: program is valid", path)))
	return nil
}
