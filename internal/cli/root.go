// Package cli implements the reengage command-line interface: signal batch
// processing, plan and decision inspection, action transitions, and fixture
// replay.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var configPath string

var rootCmd = &cobra.Command{
	Use:   "reengage",
	Short: "Re-engagement decision and planning engine for a VC deal pipeline",
	Long: `reengage watches public signals from dormant portfolio prospects and
decides when a company is worth re-engaging. Qualifying signal batches
produce an ordered, approval-gated action plan; risk signals route to an
internal review trail instead of outreach.

Every decision, including the ones that produce nothing, lands in an
auditable decision log.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("reengage %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .reengagerc.yaml in cwd or $HOME)")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
