package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region log-decision

// LogDecision writes an entry to the decision_log table.
func LogDecision(db *sql.DB, entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO decision_log (company_id, outcome, reason, signals_json, plan_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.CompanyID,
		entry.Outcome,
		nullIfEmpty(entry.Reason),
		nullIfEmpty(entry.SignalsJSON),
		nullIfEmpty(entry.PlanID),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// #endregion log-decision

// #region recent

// Recent returns the latest decision entries, newest first.
func Recent(db *sql.DB, limit int) ([]DecisionEntry, error) {
	rows, err := db.Query(
		`SELECT company_id, outcome, COALESCE(reason, ''), COALESCE(signals_json, ''), COALESCE(plan_id, ''), created_at
		 FROM decision_log ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var createdStr string
		if err := rows.Scan(&e.CompanyID, &e.Outcome, &e.Reason, &e.SignalsJSON, &e.PlanID, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion recent

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
