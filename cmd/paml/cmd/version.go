package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/paml/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.String())
		if verbose {
			for _, c := range version.Components() {
				fmt.Fprintf(out, "  %-8s %s\n", c, version.ComponentVersion(c))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
