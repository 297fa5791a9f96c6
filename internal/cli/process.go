package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sagovc/reengage/internal/store"
	"github.com/spf13/cobra"
)

var processCompany string

// signalInput mirrors store.Signal with the JSON tags detectors emit.
type signalInput struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Evidence    string    `json:"evidence"`
	Confidence  float32   `json:"confidence"`
	Source      string    `json:"source"`
	DetectedAt  time.Time `json:"detected_at"`
	RawRef      string    `json:"raw_ref"`
}

var processCmd = &cobra.Command{
	Use:   "process <signals.json>",
	Short: "Evaluate a signal batch and open, extend, or skip a plan",
	Long: `Process reads a JSON array of detected signals for one company and runs
the full decision pipeline: risk partition, confidence gate, trigger match,
cooldown, planning. The resulting plan (if any) is printed; the decision is
always logged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read signals: %w", err)
		}
		var inputs []signalInput
		if err := json.Unmarshal(data, &inputs); err != nil {
			return fmt.Errorf("parse signals: %w", err)
		}
		if len(inputs) == 0 {
			return fmt.Errorf("empty signal batch")
		}

		companyID := processCompany
		if companyID == "" {
			companyID = inputs[0].CompanyID
		}

		signals := make([]store.Signal, len(inputs))
		for i, in := range inputs {
			signals[i] = store.Signal{
				ID:          in.ID,
				CompanyID:   in.CompanyID,
				Kind:        store.SignalKind(in.Kind),
				Title:       in.Title,
				Description: in.Description,
				Evidence:    in.Evidence,
				Confidence:  in.Confidence,
				Source:      store.SignalSource(in.Source),
				DetectedAt:  in.DetectedAt,
				RawRef:      in.RawRef,
			}
		}

		p, err := openPipeline()
		if err != nil {
			return err
		}
		defer p.Close()

		result, err := p.orch.Process(context.Background(), companyID, signals)
		if err != nil {
			return err
		}
		if result == nil {
			fmt.Printf("%s: no action\n", companyID)
			return nil
		}

		printPlan(result)
		return nil
	},
}

func init() {
	processCmd.Flags().StringVar(&processCompany, "company", "", "company ID (default: taken from the first signal)")
	rootCmd.AddCommand(processCmd)
}

func printPlan(p *store.ReengagementPlan) {
	fmt.Printf("plan %s  company=%s  status=%s  opened=%s\n",
		p.ID, p.CompanyID, p.Status, p.OpenedAt.Format(time.RFC3339))
	for _, a := range p.Actions {
		gate := "auto"
		if a.RequiresApproval {
			gate = "needs approval"
		}
		fmt.Printf("  [%s] %-15s %-14s key=%s\n", a.Status, a.Kind, gate, a.PayloadKey)
		if a.Payload != "" {
			fmt.Printf("      %s\n", a.Payload)
		}
	}
}
