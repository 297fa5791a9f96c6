package cli

import (
	"fmt"
	"time"

	"github.com/sagovc/reengage/internal/store"
	"github.com/spf13/cobra"
)

var actionPlanID string

var actionCmd = &cobra.Command{
	Use:   "action",
	Short: "Transition planned actions through their lifecycle",
}

var actionApproveCmd = &cobra.Command{
	Use:   "approve <action-id>",
	Short: "Approve a pending action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(args[0], store.StatusPending, store.StatusApproved, false)
	},
}

var actionRejectCmd = &cobra.Command{
	Use:   "reject <action-id>",
	Short: "Reject a pending action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(args[0], store.StatusPending, store.StatusRejected, false)
	},
}

var actionExecuteCmd = &cobra.Command{
	Use:   "execute <action-id>",
	Short: "Mark an approved action as executed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(args[0], store.StatusApproved, store.StatusExecuted, true)
	},
}

// transition applies one optimistic status change, then closes the owning
// plan when every action has reached a terminal status.
func transition(actionID string, from, to store.ActionStatus, stampExecuted bool) error {
	_, st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	now := time.Now().UTC()
	var executedAt time.Time
	if stampExecuted {
		executedAt = now
	}
	if err := st.TransitionAction(actionID, from, to, executedAt); err != nil {
		return err
	}
	fmt.Printf("action %s: %s -> %s\n", actionID, from, to)

	if actionPlanID != "" {
		closed, err := st.ClosePlanIfTerminal(actionPlanID, now)
		if err != nil {
			return err
		}
		if closed {
			fmt.Printf("plan %s closed: all actions terminal\n", actionPlanID)
		}
	}
	return nil
}

var planCloseCmd = &cobra.Command{
	Use:   "close <plan-id>",
	Short: "Force-close an open plan (operator abandon)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, st, err := openStore()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.ForceClosePlan(args[0], time.Now().UTC()); err != nil {
			return err
		}
		fmt.Printf("plan %s closed\n", args[0])
		return nil
	},
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage re-engagement plans",
}

func init() {
	actionCmd.PersistentFlags().StringVar(&actionPlanID, "plan", "", "plan ID to auto-close once its actions are all terminal")
	actionCmd.AddCommand(actionApproveCmd)
	actionCmd.AddCommand(actionRejectCmd)
	actionCmd.AddCommand(actionExecuteCmd)
	planCmd.AddCommand(planCloseCmd)
	rootCmd.AddCommand(actionCmd)
	rootCmd.AddCommand(planCmd)
}
