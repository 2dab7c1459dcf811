package main

import (
	"io"
	"os"
	"strings"

	"github.com/aretw0/stepc/internal/adapters/file"
	"github.com/aretw0/stepc/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showCmd = &cobra.Command{
	Use:   "show <input>",
	Short: "Print the generated code instead of writing a file",
	Long:  `Translates the program and prints the result. On a terminal the code is syntax-highlighted.`,
	Args:  exactArgs(1, "<input>"),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("plain", false, "Never highlight, even on a terminal")
}

func runShow(cmd *cobra.Command, path string) error {
	conv, _, _, err := newConverter(cmd)
	if err != nil {
		return err
	}
	src, err := file.Read(path)
	if err != nil {
		return err
	}
	lines, err := conv.Translate(src)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !isTerminal(out) {
		_, err := io.WriteString(out, strings.Join(lines, "\n")+"\n")
		return err
	}

	rendered, err := tui.NewRenderer()(lines)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
