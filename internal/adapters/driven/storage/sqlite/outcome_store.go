package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
)

// outcomeStore implements driven.OutcomeStore.
type outcomeStore struct {
	store *Store
}

var _ driven.OutcomeStore = (*outcomeStore)(nil)

const outcomeColumns = `run_id, accession, directory, strategy, status, entries, downloaded,
	failed_entries, error, started_at, ended_at`

// Record appends an outcome.
func (s *outcomeStore) Record(ctx context.Context, outcome *domain.FetchOutcome) error {
	if outcome == nil {
		return domain.ErrInvalidInput
	}

	failed, err := marshalAccessions(outcome.FailedEntries)
	if err != nil {
		return err
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO fetch_outcomes (`+outcomeColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, outcome.RunID,
		outcome.Accession.String(),
		outcome.Directory,
		string(outcome.Strategy),
		string(outcome.Status),
		outcome.Entries,
		outcome.Downloaded,
		failed,
		nullString(outcome.Error),
		formatTime(outcome.StartedAt),
		formatTime(outcome.EndedAt))
	if err != nil {
		return fmt.Errorf("recording outcome: %w", err)
	}
	return nil
}

// ListRun returns the outcomes of one run in recording order.
func (s *outcomeStore) ListRun(ctx context.Context, runID string) ([]domain.FetchOutcome, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+outcomeColumns+`
		FROM fetch_outcomes
		WHERE run_id = ?
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying run outcomes: %w", err)
	}
	return scanOutcomes(rows)
}

// ListRecent returns up to limit outcomes, most recent first.
// A non-positive limit returns everything.
func (s *outcomeStore) ListRecent(ctx context.Context, limit int) ([]domain.FetchOutcome, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT `+outcomeColumns+`
		FROM fetch_outcomes
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent outcomes: %w", err)
	}
	return scanOutcomes(rows)
}

// ==================== Helper Functions ====================

func scanOutcomes(rows *sql.Rows) ([]domain.FetchOutcome, error) {
	defer rows.Close()

	var outcomes []domain.FetchOutcome //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			o                  domain.FetchOutcome
			accession          string
			strategy, status   string
			failed, errMsg     sql.NullString
			startedAt, endedAt string
		)
		if err := rows.Scan(&o.RunID, &accession, &o.Directory, &strategy, &status,
			&o.Entries, &o.Downloaded, &failed, &errMsg, &startedAt, &endedAt); err != nil {
			return nil, fmt.Errorf("scanning outcome: %w", err)
		}

		o.Accession = domain.Accession(accession)
		o.Strategy = domain.ExpansionStrategy(strategy)
		o.Status = domain.OutcomeStatus(status)
		if errMsg.Valid {
			o.Error = errMsg.String
		}
		if failed.Valid {
			if err := json.Unmarshal([]byte(failed.String), &o.FailedEntries); err != nil {
				return nil, fmt.Errorf("unmarshalling failed entries: %w", err)
			}
		}
		o.StartedAt = parseTime(startedAt)
		o.EndedAt = parseTime(endedAt)

		outcomes = append(outcomes, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating outcomes: %w", err)
	}
	return outcomes, nil
}

func marshalAccessions(accs []domain.Accession) (sql.NullString, error) {
	if len(accs) == 0 {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(accs)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshalling failed entries: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

// nullString converts an empty string to NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
