package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/projecteru2/vmreport/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version, git revision, and build timestamp",
	// no config or logging needed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprint(cmd.OutOrStdout(), version.String())
	},
}
