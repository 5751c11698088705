package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/suparena/enumb"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := enumb.GetVersionInfo()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "enumb enumgen version %s\n", info.Version)
		fmt.Fprintf(out, "Git commit: %s\n", info.GitCommit)
		fmt.Fprintf(out, "Build date: %s\n", info.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)
		if info.Modified {
			fmt.Fprintln(out, "Built from a modified working tree")
		}
	},
}
