package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stepc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stepc",
	Args:  exactArgs(0, "no arguments"),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stepc version %s\n", strings.TrimSpace(stepc.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
