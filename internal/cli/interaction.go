package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sagovc/reengage/internal/store"
	"github.com/spf13/cobra"
)

var (
	interactionCompany string
	interactionOutcome string
	interactionNotes   string
	interactionTrigger string
	interactionTopics  []string
)

var interactionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Record company touchpoints",
}

var interactionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a touchpoint with a company",
	Long: `Record a meeting, call, or email exchange. The follow-up trigger, if
given, is the condition agreed for re-engaging ("reach back out once X");
future signal batches must match it before a plan opens.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactionCompany == "" {
			return fmt.Errorf("--company is required")
		}
		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		i := store.Interaction{
			ID:              uuid.New().String(),
			CompanyID:       interactionCompany,
			OccurredAt:      time.Now().UTC(),
			Outcome:         interactionOutcome,
			Notes:           interactionNotes,
			FollowupTrigger: interactionTrigger,
			Topics:          interactionTopics,
		}
		if err := st.AddInteraction(i); err != nil {
			return err
		}
		fmt.Printf("recorded interaction %s with %s\n", i.ID, i.CompanyID)
		return nil
	},
}

func init() {
	interactionAddCmd.Flags().StringVar(&interactionCompany, "company", "", "company ID")
	interactionAddCmd.Flags().StringVar(&interactionOutcome, "outcome", "neutral", "touchpoint outcome")
	interactionAddCmd.Flags().StringVar(&interactionNotes, "notes", "", "free-form notes")
	interactionAddCmd.Flags().StringVar(&interactionTrigger, "trigger", "", "agreed follow-up trigger")
	interactionAddCmd.Flags().StringSliceVar(&interactionTopics, "topics", nil, "discussed topics")
	interactionCmd.AddCommand(interactionAddCmd)
	rootCmd.AddCommand(interactionCmd)
}
