package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/sagovc/reengage/internal/replay"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <fixture.json>",
	Short: "Replay a recorded scenario against an in-memory pipeline",
	Long: `Replay runs a fixture's signal batches through a fresh in-memory pipeline
and checks the outcomes against the fixture's expectations. Useful for
validating config changes against recorded scenarios before rollout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := replay.LoadFixture(args[0])
		if err != nil {
			return err
		}

		h, err := replay.NewHarness(f)
		if err != nil {
			return err
		}
		defer h.Close()

		results, err := h.Run(context.Background())
		if err != nil {
			return err
		}

		for i, r := range results {
			kinds := "-"
			if len(r.ActionKinds) > 0 {
				kinds = strings.Join(r.ActionKinds, ", ")
			}
			fmt.Printf("batch %d  %-16s %-20s actions: %s\n", i, r.CompanyID, r.Outcome, kinds)
		}

		if err := h.Verify(results); err != nil {
			return fmt.Errorf("expectations not met: %w", err)
		}
		fmt.Printf("%d batches matched expectations\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
