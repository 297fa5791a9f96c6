package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// #region errors

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConflict is a retryable conflict: a concurrent writer won the race
	// (open-plan insert or optimistic action transition).
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInvariant signals a broken serialization invariant (e.g. more than
	// one open plan for a company). Fatal for that company's processing.
	ErrInvariant = errors.New("invariant violation")
)

// #endregion errors

// #region schema

const schema = `
CREATE TABLE IF NOT EXISTS signals (
	id           TEXT PRIMARY KEY,
	company_id   TEXT NOT NULL,
	kind         TEXT NOT NULL,
	title        TEXT NOT NULL,
	description  TEXT NOT NULL DEFAULT '',
	evidence     TEXT NOT NULL DEFAULT '',
	confidence   REAL NOT NULL,
	source       TEXT NOT NULL,
	detected_at  TEXT NOT NULL,
	raw_ref      TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_signals_company
ON signals(company_id, detected_at);

CREATE TABLE IF NOT EXISTS interactions (
	id               TEXT PRIMARY KEY,
	company_id       TEXT NOT NULL,
	occurred_at      TEXT NOT NULL,
	outcome          TEXT NOT NULL,
	notes            TEXT NOT NULL DEFAULT '',
	followup_trigger TEXT NOT NULL DEFAULT '',
	topics_json      TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_interactions_company
ON interactions(company_id, occurred_at);

CREATE TABLE IF NOT EXISTS profiles (
	user_id        TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	thesis_json    TEXT NOT NULL DEFAULT '[]',
	tone           TEXT NOT NULL DEFAULT '',
	availability_json TEXT NOT NULL DEFAULT '[]',
	channels_json  TEXT NOT NULL DEFAULT '[]',
	auto_send      INTEGER NOT NULL DEFAULT 0,
	resources_json TEXT NOT NULL DEFAULT '[]'
);

CREATE TABLE IF NOT EXISTS plans (
	id            TEXT PRIMARY KEY,
	company_id    TEXT NOT NULL,
	status        TEXT NOT NULL,
	opened_at     TEXT NOT NULL,
	closed_at     TEXT,
	signals_json  TEXT NOT NULL DEFAULT '[]'
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_plans_one_open
ON plans(company_id) WHERE status = 'open';

CREATE TABLE IF NOT EXISTS actions (
	id                TEXT PRIMARY KEY,
	plan_id           TEXT NOT NULL,
	kind              TEXT NOT NULL,
	requires_approval INTEGER NOT NULL,
	status            TEXT NOT NULL,
	payload           TEXT NOT NULL DEFAULT '',
	payload_key       TEXT NOT NULL,
	signal_ids_json   TEXT NOT NULL DEFAULT '[]',
	created_at        TEXT NOT NULL,
	executed_at       TEXT,
	FOREIGN KEY (plan_id) REFERENCES plans(id),
	UNIQUE (plan_id, kind, payload_key)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id   TEXT NOT NULL,
	outcome      TEXT NOT NULL,
	reason       TEXT,
	signals_json TEXT,
	plan_id      TEXT,
	created_at   TEXT NOT NULL
);
`

// #endregion schema

// #region store-struct

// Store is the data-access layer over signals, interactions, profiles,
// plans, and actions in SQLite.
type Store struct {
	db *sql.DB
}

// #endregion store-struct

// #region constructor

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// NewStoreWithDB wraps an existing database handle. The caller owns the
// handle's lifecycle; the schema must already exist or be created by the
// caller via Migrate.
func NewStoreWithDB(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the schema on an externally-opened handle.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. the
// decision log).
func (s *Store) DB() *sql.DB {
	return s.db
}

// #endregion constructor

// #region signals

// SaveSignals persists a batch of signals for audit. Duplicate IDs are
// ignored so reprocessing a batch is a no-op.
func (s *Store) SaveSignals(signals []Signal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertSignals(tx, signals); err != nil {
		return err
	}
	return tx.Commit()
}

func insertSignals(tx *sql.Tx, signals []Signal) error {
	for _, sig := range signals {
		_, err := tx.Exec(
			`INSERT OR IGNORE INTO signals
			 (id, company_id, kind, title, description, evidence, confidence, source, detected_at, raw_ref)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sig.ID, sig.CompanyID, string(sig.Kind), sig.Title, sig.Description,
			sig.Evidence, sig.Confidence, string(sig.Source),
			sig.DetectedAt.UTC().Format(time.RFC3339Nano), sig.RawRef,
		)
		if err != nil {
			return fmt.Errorf("insert signal %s: %w", sig.ID, err)
		}
	}
	return nil
}

// #endregion signals

// #region interactions

// AddInteraction appends one touchpoint to a company's history.
func (s *Store) AddInteraction(i Interaction) error {
	topics, err := json.Marshal(i.Topics)
	if err != nil {
		return fmt.Errorf("marshal topics: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO interactions (id, company_id, occurred_at, outcome, notes, followup_trigger, topics_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.CompanyID, i.OccurredAt.UTC().Format(time.RFC3339Nano),
		i.Outcome, i.Notes, i.FollowupTrigger, string(topics),
	)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	return nil
}

// LatestInteraction returns the most recent interaction for a company, or
// nil when the company has no history (first contact).
func (s *Store) LatestInteraction(companyID string) (*Interaction, error) {
	row := s.db.QueryRow(
		`SELECT id, company_id, occurred_at, outcome, notes, followup_trigger, topics_json
		 FROM interactions WHERE company_id = ?
		 ORDER BY occurred_at DESC LIMIT 1`, companyID,
	)

	var i Interaction
	var occurredStr, topicsJSON string
	err := row.Scan(&i.ID, &i.CompanyID, &occurredStr, &i.Outcome, &i.Notes, &i.FollowupTrigger, &topicsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest interaction: %w", err)
	}
	i.OccurredAt, _ = time.Parse(time.RFC3339Nano, occurredStr)
	if err := json.Unmarshal([]byte(topicsJSON), &i.Topics); err != nil {
		return nil, fmt.Errorf("unmarshal topics: %w", err)
	}
	return &i, nil
}

// #endregion interactions

// #region profiles

// SaveProfile inserts or replaces a user profile.
func (s *Store) SaveProfile(p UserProfile) error {
	thesis, err := json.Marshal(p.ThesisKeywords)
	if err != nil {
		return fmt.Errorf("marshal thesis: %w", err)
	}
	avail, err := json.Marshal(p.Availability)
	if err != nil {
		return fmt.Errorf("marshal availability: %w", err)
	}
	channels, err := json.Marshal(p.PreferredChannels)
	if err != nil {
		return fmt.Errorf("marshal channels: %w", err)
	}
	resources, err := json.Marshal(p.ResourceLibrary)
	if err != nil {
		return fmt.Errorf("marshal resources: %w", err)
	}

	autoSend := 0
	if p.AutoSendEnabled {
		autoSend = 1
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (user_id, name, thesis_json, tone, availability_json, channels_json, auto_send, resources_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
		   name = excluded.name,
		   thesis_json = excluded.thesis_json,
		   tone = excluded.tone,
		   availability_json = excluded.availability_json,
		   channels_json = excluded.channels_json,
		   auto_send = excluded.auto_send,
		   resources_json = excluded.resources_json`,
		p.UserID, p.Name, string(thesis), p.Tone, string(avail), string(channels), autoSend, string(resources),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetProfile loads a user profile by ID.
func (s *Store) GetProfile(userID string) (UserProfile, error) {
	row := s.db.QueryRow(
		`SELECT user_id, name, thesis_json, tone, availability_json, channels_json, auto_send, resources_json
		 FROM profiles WHERE user_id = ?`, userID,
	)

	var p UserProfile
	var thesisJSON, availJSON, channelsJSON, resourcesJSON string
	var autoSend int
	err := row.Scan(&p.UserID, &p.Name, &thesisJSON, &p.Tone, &availJSON, &channelsJSON, &autoSend, &resourcesJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return UserProfile{}, fmt.Errorf("profile %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return UserProfile{}, fmt.Errorf("get profile: %w", err)
	}

	p.AutoSendEnabled = autoSend != 0
	if err := json.Unmarshal([]byte(thesisJSON), &p.ThesisKeywords); err != nil {
		return UserProfile{}, fmt.Errorf("unmarshal thesis: %w", err)
	}
	if err := json.Unmarshal([]byte(availJSON), &p.Availability); err != nil {
		return UserProfile{}, fmt.Errorf("unmarshal availability: %w", err)
	}
	if err := json.Unmarshal([]byte(channelsJSON), &p.PreferredChannels); err != nil {
		return UserProfile{}, fmt.Errorf("unmarshal channels: %w", err)
	}
	if err := json.Unmarshal([]byte(resourcesJSON), &p.ResourceLibrary); err != nil {
		return UserProfile{}, fmt.Errorf("unmarshal resources: %w", err)
	}
	return p, nil
}

// #endregion profiles

// #region plans

// OpenPlan atomically persists the triggering signals, a new open plan, and
// its initial actions. The one-open-plan invariant is enforced at the write
// boundary by a partial unique index; losing that race returns ErrConflict.
func (s *Store) OpenPlan(plan ReengagementPlan, signals []Signal) error {
	sigJSON, err := json.Marshal(plan.TriggeringSignal)
	if err != nil {
		return fmt.Errorf("marshal signal ids: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertSignals(tx, signals); err != nil {
		return err
	}

	// Review artifacts are inserted already closed; everything else opens
	// with a NULL closed_at.
	var closed interface{}
	if !plan.ClosedAt.IsZero() {
		closed = plan.ClosedAt.UTC().Format(time.RFC3339Nano)
	}
	_, err = tx.Exec(
		`INSERT INTO plans (id, company_id, status, opened_at, closed_at, signals_json)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.CompanyID, string(plan.Status),
		plan.OpenedAt.UTC().Format(time.RFC3339Nano), closed, string(sigJSON),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("open plan for %s: %w", plan.CompanyID, ErrConflict)
		}
		return fmt.Errorf("insert plan: %w", err)
	}

	if err := insertActions(tx, plan.Actions); err != nil {
		return err
	}
	return tx.Commit()
}

// ExtendPlan atomically persists the new signals and appends actions to an
// existing open plan, updating its triggering-signal list.
func (s *Store) ExtendPlan(planID string, signalIDs []string, actions []PlannedAction, signals []Signal) error {
	sigJSON, err := json.Marshal(signalIDs)
	if err != nil {
		return fmt.Errorf("marshal signal ids: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := insertSignals(tx, signals); err != nil {
		return err
	}

	res, err := tx.Exec(
		`UPDATE plans SET signals_json = ? WHERE id = ? AND status = 'open'`,
		string(sigJSON), planID,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("extend plan %s: not open: %w", planID, ErrConflict)
	}

	if err := insertActions(tx, actions); err != nil {
		return err
	}
	return tx.Commit()
}

func insertActions(tx *sql.Tx, actions []PlannedAction) error {
	for _, a := range actions {
		ids, err := json.Marshal(a.SignalIDs)
		if err != nil {
			return fmt.Errorf("marshal action signal ids: %w", err)
		}
		approval := 0
		if a.RequiresApproval {
			approval = 1
		}
		var executed interface{}
		if !a.ExecutedAt.IsZero() {
			executed = a.ExecutedAt.UTC().Format(time.RFC3339Nano)
		}
		_, err = tx.Exec(
			`INSERT INTO actions
			 (id, plan_id, kind, requires_approval, status, payload, payload_key, signal_ids_json, created_at, executed_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.PlanID, string(a.Kind), approval, string(a.Status),
			a.Payload, a.PayloadKey, string(ids),
			a.CreatedAt.UTC().Format(time.RFC3339Nano), executed,
		)
		if err != nil {
			return fmt.Errorf("insert action %s: %w", a.ID, err)
		}
	}
	return nil
}

// GetOpenPlan returns the company's open plan with its actions, or nil when
// none is open. Finding more than one open plan returns ErrInvariant: that
// means serialization broke, and it must surface rather than be repaired
// silently.
func (s *Store) GetOpenPlan(companyID string) (*ReengagementPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, company_id, status, opened_at, closed_at, signals_json
		 FROM plans WHERE company_id = ? AND status = 'open'`, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query open plan: %w", err)
	}
	defer rows.Close()

	var plans []ReengagementPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan open plans: %w", err)
	}

	switch len(plans) {
	case 0:
		return nil, nil
	case 1:
		plan := plans[0]
		if err := s.loadActions(&plan); err != nil {
			return nil, err
		}
		return &plan, nil
	default:
		return nil, fmt.Errorf("company %s has %d open plans: %w", companyID, len(plans), ErrInvariant)
	}
}

// LatestClosedPlan returns the most recently opened closed plan for cooldown
// computation, or nil when none exists. Unlike GetOpenPlan and GetPlan it
// does not hydrate actions; cooldown only reads OpenedAt.
func (s *Store) LatestClosedPlan(companyID string) (*ReengagementPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, company_id, status, opened_at, closed_at, signals_json
		 FROM plans WHERE company_id = ? AND status = 'closed'
		 ORDER BY opened_at DESC LIMIT 1`, companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query closed plan: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	p, err := scanPlan(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindReviewArtifact returns the closed review plan whose triggering signals
// are exactly this set, or nil when none exists. Review plans are the closed
// plans carrying a flag_review action; matching on the signal set keeps
// reprocessing a flagged batch from minting a duplicate artifact.
func (s *Store) FindReviewArtifact(companyID string, signalIDs []string) (*ReengagementPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, company_id, status, opened_at, closed_at, signals_json
		 FROM plans WHERE company_id = ? AND status = 'closed'
		   AND EXISTS (SELECT 1 FROM actions a WHERE a.plan_id = plans.id AND a.kind = 'flag_review')`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("query review plans: %w", err)
	}
	defer rows.Close()

	var plans []ReengagementPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan review plans: %w", err)
	}

	for i := range plans {
		if sameIDSet(plans[i].TriggeringSignal, signalIDs) {
			if err := s.loadActions(&plans[i]); err != nil {
				return nil, err
			}
			return &plans[i], nil
		}
	}
	return nil, nil
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]bool, len(a))
	for _, id := range a {
		seen[id] = true
	}
	for _, id := range b {
		if !seen[id] {
			return false
		}
	}
	return true
}

// GetPlan retrieves a plan with its actions by ID. The plan row is read via
// QueryRow so its cursor is released before loadActions queries the pool;
// holding it open would deadlock a single-connection pool.
func (s *Store) GetPlan(planID string) (*ReengagementPlan, error) {
	row := s.db.QueryRow(
		`SELECT id, company_id, status, opened_at, closed_at, signals_json
		 FROM plans WHERE id = ?`, planID,
	)
	p, err := scanPlan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("plan %s: %w", planID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadActions(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPlans returns the most recently opened plans with their actions.
func (s *Store) ListPlans(limit int) ([]ReengagementPlan, error) {
	rows, err := s.db.Query(
		`SELECT id, company_id, status, opened_at, closed_at, signals_json
		 FROM plans ORDER BY opened_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	var plans []ReengagementPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range plans {
		if err := s.loadActions(&plans[i]); err != nil {
			return nil, err
		}
	}
	return plans, nil
}

// planRow is satisfied by *sql.Row and *sql.Rows.
type planRow interface {
	Scan(dest ...interface{}) error
}

func scanPlan(rows planRow) (ReengagementPlan, error) {
	var p ReengagementPlan
	var status, openedStr, sigJSON string
	var closedStr sql.NullString
	if err := rows.Scan(&p.ID, &p.CompanyID, &status, &openedStr, &closedStr, &sigJSON); err != nil {
		return ReengagementPlan{}, fmt.Errorf("scan plan: %w", err)
	}
	p.Status = PlanStatus(status)
	p.OpenedAt, _ = time.Parse(time.RFC3339Nano, openedStr)
	if closedStr.Valid {
		p.ClosedAt, _ = time.Parse(time.RFC3339Nano, closedStr.String)
	}
	if err := json.Unmarshal([]byte(sigJSON), &p.TriggeringSignal); err != nil {
		return ReengagementPlan{}, fmt.Errorf("unmarshal plan signals: %w", err)
	}
	return p, nil
}

// loadActions returns actions in insertion order (rowid), which preserves
// the planner's emission order across extensions.
func (s *Store) loadActions(p *ReengagementPlan) error {
	rows, err := s.db.Query(
		`SELECT id, plan_id, kind, requires_approval, status, payload, payload_key, signal_ids_json, created_at, executed_at
		 FROM actions WHERE plan_id = ? ORDER BY rowid`, p.ID,
	)
	if err != nil {
		return fmt.Errorf("query actions: %w", err)
	}
	defer rows.Close()

	p.Actions = nil
	for rows.Next() {
		var a PlannedAction
		var kind, status, createdStr, idsJSON string
		var approval int
		var executedStr sql.NullString
		if err := rows.Scan(&a.ID, &a.PlanID, &kind, &approval, &status, &a.Payload, &a.PayloadKey, &idsJSON, &createdStr, &executedStr); err != nil {
			return fmt.Errorf("scan action: %w", err)
		}
		a.Kind = ActionKind(kind)
		a.Status = ActionStatus(status)
		a.RequiresApproval = approval != 0
		a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		if executedStr.Valid {
			a.ExecutedAt, _ = time.Parse(time.RFC3339Nano, executedStr.String)
		}
		if err := json.Unmarshal([]byte(idsJSON), &a.SignalIDs); err != nil {
			return fmt.Errorf("unmarshal action signals: %w", err)
		}
		p.Actions = append(p.Actions, a)
	}
	return rows.Err()
}

// #endregion plans

// #region action-transitions

// TransitionAction moves an action from an expected prior status to a new
// one. The optimistic check fails with ErrConflict when the action already
// left the expected status.
func (s *Store) TransitionAction(actionID string, from, to ActionStatus, executedAt time.Time) error {
	var executed interface{}
	if !executedAt.IsZero() {
		executed = executedAt.UTC().Format(time.RFC3339Nano)
	}
	res, err := s.db.Exec(
		`UPDATE actions SET status = ?, executed_at = COALESCE(?, executed_at)
		 WHERE id = ? AND status = ?`,
		string(to), executed, actionID, string(from),
	)
	if err != nil {
		return fmt.Errorf("transition action: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("action %s not in status %s: %w", actionID, from, ErrConflict)
	}
	return nil
}

// ClosePlanIfTerminal closes the plan when every action has reached a
// terminal status. Returns true when the plan was closed.
func (s *Store) ClosePlanIfTerminal(planID string, now time.Time) (bool, error) {
	var open int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM actions WHERE plan_id = ? AND status IN ('pending', 'approved')`,
		planID,
	).Scan(&open)
	if err != nil {
		return false, fmt.Errorf("count open actions: %w", err)
	}
	if open > 0 {
		return false, nil
	}
	return true, s.ForceClosePlan(planID, now)
}

// ForceClosePlan closes a plan regardless of action state (operator
// abandon). Closed plans never reopen.
func (s *Store) ForceClosePlan(planID string, now time.Time) error {
	res, err := s.db.Exec(
		`UPDATE plans SET status = 'closed', closed_at = ? WHERE id = ? AND status = 'open'`,
		now.UTC().Format(time.RFC3339Nano), planID,
	)
	if err != nil {
		return fmt.Errorf("close plan: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("plan %s not open: %w", planID, ErrConflict)
	}
	return nil
}

// #endregion action-transitions
