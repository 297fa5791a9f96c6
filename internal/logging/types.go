package logging

import "time"

// #region decision-entry

// DecisionEntry is one row of the decision audit log. Every evaluation
// outcome is recorded, including no_action, so gated-out signal batches
// remain auditable.
type DecisionEntry struct {
	CompanyID   string
	Outcome     string
	Reason      string
	SignalsJSON string // the evaluated batch, serialized
	PlanID      string // empty when no plan was touched
	CreatedAt   time.Time
}

// #endregion decision-entry
