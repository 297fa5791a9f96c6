package cli

import (
	"fmt"
	"time"

	"github.com/sagovc/reengage/internal/logging"
	"github.com/spf13/cobra"
)

var inspectLimit int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect stored plans and the decision log",
}

var inspectPlansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List recent plans with their actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		plans, err := st.ListPlans(inspectLimit)
		if err != nil {
			return err
		}
		if len(plans) == 0 {
			fmt.Println("No plans recorded.")
			return nil
		}
		for i := range plans {
			printPlan(&plans[i])
		}
		return nil
	},
}

var inspectDecisionsCmd = &cobra.Command{
	Use:   "decisions",
	Short: "Show the decision log, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		entries, err := logging.Recent(st.DB(), inspectLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No decisions recorded.")
			return nil
		}
		for _, e := range entries {
			plan := e.PlanID
			if plan == "" {
				plan = "-"
			}
			fmt.Printf("%s  %-16s %-20s plan=%s\n  %s\n",
				e.CreatedAt.Format(time.RFC3339), e.CompanyID, e.Outcome, plan, e.Reason)
		}
		return nil
	},
}

func init() {
	inspectCmd.PersistentFlags().IntVar(&inspectLimit, "limit", 20, "maximum entries to show")
	inspectCmd.AddCommand(inspectPlansCmd)
	inspectCmd.AddCommand(inspectDecisionsCmd)
	rootCmd.AddCommand(inspectCmd)
}
