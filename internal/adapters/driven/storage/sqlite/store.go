package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/qispark/chatpick/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a unified SQLite-based storage that provides access to
// all snapshot store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.chatpick/data/snapshot.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".chatpick", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "snapshot.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReportStore returns a ReportStore interface backed by this store.
func (s *Store) ReportStore() driven.ReportStore {
	return &reportStore{store: s}
}

// ReportActionStore returns a ReportActionStore interface backed by this store.
func (s *Store) ReportActionStore() driven.ReportActionStore {
	return &reportActionStore{store: s}
}

// PersonalDetailStore returns a PersonalDetailStore interface backed by this store.
func (s *Store) PersonalDetailStore() driven.PersonalDetailStore {
	return &personalDetailStore{store: s}
}

// PolicyStore returns a PolicyStore interface backed by this store.
func (s *Store) PolicyStore() driven.PolicyStore {
	return &policyStore{store: s}
}

// IOUReportStore returns an IOUReportStore interface backed by this store.
func (s *Store) IOUReportStore() driven.IOUReportStore {
	return &iouReportStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Report Store ====================

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// All returns every known report, ordered by report ID.
func (s *reportStore) All(ctx context.Context) ([]domain.Report, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT report_id, report_name, participants, chat_type, policy_id, owner_login,
			last_message_text, last_actor_login, last_message_timestamp, last_visited_timestamp,
			is_pinned, is_unread, has_draft, is_archived, is_newly_created,
			has_outstanding_iou, iou_report_id, errors, error_fields
		FROM reports
		ORDER BY report_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var reports []domain.Report //nolint:prealloc // size unknown from query
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return reports, nil
}

// Get retrieves a report by ID.
func (s *reportStore) Get(ctx context.Context, reportID int64) (*domain.Report, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT report_id, report_name, participants, chat_type, policy_id, owner_login,
			last_message_text, last_actor_login, last_message_timestamp, last_visited_timestamp,
			is_pinned, is_unread, has_draft, is_archived, is_newly_created,
			has_outstanding_iou, iou_report_id, errors, error_fields
		FROM reports WHERE report_id = ?
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("querying report: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("querying report: %w", err)
		}
		return nil, domain.ErrNotFound
	}
	return scanReport(rows)
}

// Save stores or updates a report.
func (s *reportStore) Save(ctx context.Context, report domain.Report) error {
	if report.ReportID == 0 {
		return domain.ErrInvalidInput
	}

	participantsJSON, err := json.Marshal(report.Participants)
	if err != nil {
		return fmt.Errorf("marshalling participants: %w", err)
	}
	errorsJSON, err := json.Marshal(report.Errors)
	if err != nil {
		return fmt.Errorf("marshalling errors: %w", err)
	}
	errorFieldsJSON, err := json.Marshal(report.ErrorFields)
	if err != nil {
		return fmt.Errorf("marshalling error fields: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO reports (report_id, report_name, participants, chat_type, policy_id,
			owner_login, last_message_text, last_actor_login, last_message_timestamp,
			last_visited_timestamp, is_pinned, is_unread, has_draft, is_archived,
			is_newly_created, has_outstanding_iou, iou_report_id, errors, error_fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(report_id) DO UPDATE SET
			report_name = excluded.report_name,
			participants = excluded.participants,
			chat_type = excluded.chat_type,
			policy_id = excluded.policy_id,
			owner_login = excluded.owner_login,
			last_message_text = excluded.last_message_text,
			last_actor_login = excluded.last_actor_login,
			last_message_timestamp = excluded.last_message_timestamp,
			last_visited_timestamp = excluded.last_visited_timestamp,
			is_pinned = excluded.is_pinned,
			is_unread = excluded.is_unread,
			has_draft = excluded.has_draft,
			is_archived = excluded.is_archived,
			is_newly_created = excluded.is_newly_created,
			has_outstanding_iou = excluded.has_outstanding_iou,
			iou_report_id = excluded.iou_report_id,
			errors = excluded.errors,
			error_fields = excluded.error_fields
	`, report.ReportID, report.ReportName, string(participantsJSON), string(report.ChatType),
		report.PolicyID, report.OwnerLogin, report.LastMessageText, report.LastActorLogin,
		report.LastMessageTimestamp, report.LastVisitedTimestamp,
		report.IsPinned, report.IsUnread, report.HasDraft, report.IsArchived,
		report.IsNewlyCreated, report.HasOutstandingIOU, report.IOUReportID,
		string(errorsJSON), string(errorFieldsJSON))

	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}
	return nil
}

// scanReport scans a report from *sql.Rows.
func scanReport(rows *sql.Rows) (*domain.Report, error) {
	var report domain.Report
	var chatType string
	var participantsJSON, errorsJSON, errorFieldsJSON string

	if err := rows.Scan(&report.ReportID, &report.ReportName, &participantsJSON, &chatType,
		&report.PolicyID, &report.OwnerLogin, &report.LastMessageText, &report.LastActorLogin,
		&report.LastMessageTimestamp, &report.LastVisitedTimestamp,
		&report.IsPinned, &report.IsUnread, &report.HasDraft, &report.IsArchived,
		&report.IsNewlyCreated, &report.HasOutstandingIOU, &report.IOUReportID,
		&errorsJSON, &errorFieldsJSON); err != nil {
		return nil, fmt.Errorf("scanning report: %w", err)
	}

	report.ChatType = domain.ChatType(chatType)

	if err := json.Unmarshal([]byte(participantsJSON), &report.Participants); err != nil {
		return nil, fmt.Errorf("unmarshalling participants: %w", err)
	}
	if errorsJSON != jsonNull {
		if err := json.Unmarshal([]byte(errorsJSON), &report.Errors); err != nil {
			return nil, fmt.Errorf("unmarshalling errors: %w", err)
		}
	}
	if errorFieldsJSON != jsonNull {
		if err := json.Unmarshal([]byte(errorFieldsJSON), &report.ErrorFields); err != nil {
			return nil, fmt.Errorf("unmarshalling error fields: %w", err)
		}
	}

	return &report, nil
}

// ==================== Report Action Store ====================

// reportActionStore implements driven.ReportActionStore.
type reportActionStore struct {
	store *Store
}

var _ driven.ReportActionStore = (*reportActionStore)(nil)

// All returns every known action, grouped by report ID.
func (s *reportActionStore) All(ctx context.Context) (map[int64][]domain.ReportAction, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT action_id, report_id, actor_login, message, timestamp, errors
		FROM report_actions
		ORDER BY report_id, timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("querying report actions: %w", err)
	}
	defer rows.Close()

	grouped := make(map[int64][]domain.ReportAction)
	for rows.Next() {
		action, err := scanReportAction(rows)
		if err != nil {
			return nil, err
		}
		grouped[action.ReportID] = append(grouped[action.ReportID], *action)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report actions: %w", err)
	}

	return grouped, nil
}

// ForReport returns the actions of a single report, most recent last.
func (s *reportActionStore) ForReport(ctx context.Context, reportID int64) ([]domain.ReportAction, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT action_id, report_id, actor_login, message, timestamp, errors
		FROM report_actions WHERE report_id = ?
		ORDER BY timestamp
	`, reportID)
	if err != nil {
		return nil, fmt.Errorf("querying report actions: %w", err)
	}
	defer rows.Close()

	var actions []domain.ReportAction //nolint:prealloc // size unknown from query
	for rows.Next() {
		action, err := scanReportAction(rows)
		if err != nil {
			return nil, err
		}
		actions = append(actions, *action)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report actions: %w", err)
	}

	return actions, nil
}

// Save stores or updates an action.
func (s *reportActionStore) Save(ctx context.Context, action domain.ReportAction) error {
	if action.ActionID == "" || action.ReportID == 0 {
		return domain.ErrInvalidInput
	}

	errorsJSON, err := json.Marshal(action.Errors)
	if err != nil {
		return fmt.Errorf("marshalling errors: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO report_actions (action_id, report_id, actor_login, message, timestamp, errors)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(action_id) DO UPDATE SET
			report_id = excluded.report_id,
			actor_login = excluded.actor_login,
			message = excluded.message,
			timestamp = excluded.timestamp,
			errors = excluded.errors
	`, action.ActionID, action.ReportID, action.ActorLogin, action.Message,
		action.Timestamp, string(errorsJSON))

	if err != nil {
		return fmt.Errorf("saving report action: %w", err)
	}
	return nil
}

// scanReportAction scans an action from *sql.Rows.
func scanReportAction(rows *sql.Rows) (*domain.ReportAction, error) {
	var action domain.ReportAction
	var errorsJSON string

	if err := rows.Scan(&action.ActionID, &action.ReportID, &action.ActorLogin,
		&action.Message, &action.Timestamp, &errorsJSON); err != nil {
		return nil, fmt.Errorf("scanning report action: %w", err)
	}

	if errorsJSON != jsonNull {
		if err := json.Unmarshal([]byte(errorsJSON), &action.Errors); err != nil {
			return nil, fmt.Errorf("unmarshalling errors: %w", err)
		}
	}

	return &action, nil
}

// ==================== Personal Detail Store ====================

// personalDetailStore implements driven.PersonalDetailStore.
type personalDetailStore struct {
	store *Store
}

var _ driven.PersonalDetailStore = (*personalDetailStore)(nil)

// All returns every known profile, keyed by login.
func (s *personalDetailStore) All(ctx context.Context) (map[string]domain.PersonalDetail, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT login, display_name, first_name, last_name, avatar_url, phone_number, payment_address
		FROM personal_details
	`)
	if err != nil {
		return nil, fmt.Errorf("querying personal details: %w", err)
	}
	defer rows.Close()

	details := make(map[string]domain.PersonalDetail)
	for rows.Next() {
		var detail domain.PersonalDetail
		if err := rows.Scan(&detail.Login, &detail.DisplayName, &detail.FirstName,
			&detail.LastName, &detail.AvatarURL, &detail.PhoneNumber, &detail.PaymentAddress); err != nil {
			return nil, fmt.Errorf("scanning personal detail: %w", err)
		}
		details[detail.Login] = detail
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating personal details: %w", err)
	}

	return details, nil
}

// Get retrieves a profile by login.
func (s *personalDetailStore) Get(ctx context.Context, login string) (*domain.PersonalDetail, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT login, display_name, first_name, last_name, avatar_url, phone_number, payment_address
		FROM personal_details WHERE login = ?
	`, login)

	var detail domain.PersonalDetail
	if err := row.Scan(&detail.Login, &detail.DisplayName, &detail.FirstName,
		&detail.LastName, &detail.AvatarURL, &detail.PhoneNumber, &detail.PaymentAddress); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning personal detail: %w", err)
	}

	return &detail, nil
}

// Save stores or updates a profile.
func (s *personalDetailStore) Save(ctx context.Context, detail domain.PersonalDetail) error {
	if detail.Login == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO personal_details (login, display_name, first_name, last_name, avatar_url, phone_number, payment_address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(login) DO UPDATE SET
			display_name = excluded.display_name,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			avatar_url = excluded.avatar_url,
			phone_number = excluded.phone_number,
			payment_address = excluded.payment_address
	`, detail.Login, detail.DisplayName, detail.FirstName, detail.LastName,
		detail.AvatarURL, detail.PhoneNumber, detail.PaymentAddress)

	if err != nil {
		return fmt.Errorf("saving personal detail: %w", err)
	}
	return nil
}

// ==================== Policy Store ====================

// policyStore implements driven.PolicyStore.
type policyStore struct {
	store *Store
}

var _ driven.PolicyStore = (*policyStore)(nil)

// All returns every known workspace, keyed by policy ID.
func (s *policyStore) All(ctx context.Context) (map[string]domain.Policy, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT policy_id, name, type FROM policies")
	if err != nil {
		return nil, fmt.Errorf("querying policies: %w", err)
	}
	defer rows.Close()

	policies := make(map[string]domain.Policy)
	for rows.Next() {
		var policy domain.Policy
		var policyType string
		if err := rows.Scan(&policy.PolicyID, &policy.Name, &policyType); err != nil {
			return nil, fmt.Errorf("scanning policy: %w", err)
		}
		policy.Type = domain.PolicyType(policyType)
		policies[policy.PolicyID] = policy
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating policies: %w", err)
	}

	return policies, nil
}

// Get retrieves a workspace by policy ID.
func (s *policyStore) Get(ctx context.Context, policyID string) (*domain.Policy, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT policy_id, name, type FROM policies WHERE policy_id = ?", policyID)

	var policy domain.Policy
	var policyType string
	if err := row.Scan(&policy.PolicyID, &policy.Name, &policyType); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning policy: %w", err)
	}
	policy.Type = domain.PolicyType(policyType)

	return &policy, nil
}

// Save stores or updates a workspace.
func (s *policyStore) Save(ctx context.Context, policy domain.Policy) error {
	if policy.PolicyID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO policies (policy_id, name, type)
		VALUES (?, ?, ?)
		ON CONFLICT(policy_id) DO UPDATE SET
			name = excluded.name,
			type = excluded.type
	`, policy.PolicyID, policy.Name, string(policy.Type))

	if err != nil {
		return fmt.Errorf("saving policy: %w", err)
	}
	return nil
}

// ==================== IOU Report Store ====================

// iouReportStore implements driven.IOUReportStore.
type iouReportStore struct {
	store *Store
}

var _ driven.IOUReportStore = (*iouReportStore)(nil)

// All returns every known IOU aggregate, keyed by report ID.
func (s *iouReportStore) All(ctx context.Context) (map[int64]domain.IOUReport, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT report_id, owner_login, total, currency FROM iou_reports")
	if err != nil {
		return nil, fmt.Errorf("querying iou reports: %w", err)
	}
	defer rows.Close()

	ious := make(map[int64]domain.IOUReport)
	for rows.Next() {
		var iou domain.IOUReport
		if err := rows.Scan(&iou.ReportID, &iou.OwnerLogin, &iou.Total, &iou.Currency); err != nil {
			return nil, fmt.Errorf("scanning iou report: %w", err)
		}
		ious[iou.ReportID] = iou
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating iou reports: %w", err)
	}

	return ious, nil
}

// Get retrieves an IOU aggregate by report ID.
func (s *iouReportStore) Get(ctx context.Context, reportID int64) (*domain.IOUReport, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT report_id, owner_login, total, currency FROM iou_reports WHERE report_id = ?", reportID)

	var iou domain.IOUReport
	if err := row.Scan(&iou.ReportID, &iou.OwnerLogin, &iou.Total, &iou.Currency); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning iou report: %w", err)
	}

	return &iou, nil
}

// Save stores or updates an IOU aggregate.
func (s *iouReportStore) Save(ctx context.Context, iou domain.IOUReport) error {
	if iou.ReportID == 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO iou_reports (report_id, owner_login, total, currency)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(report_id) DO UPDATE SET
			owner_login = excluded.owner_login,
			total = excluded.total,
			currency = excluded.currency
	`, iou.ReportID, iou.OwnerLogin, iou.Total, iou.Currency)

	if err != nil {
		return fmt.Errorf("saving iou report: %w", err)
	}
	return nil
}
