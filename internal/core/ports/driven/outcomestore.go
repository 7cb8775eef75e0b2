package driven

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// OutcomeStore persists per-accession download outcomes.
type OutcomeStore interface {
	// Record appends an outcome.
	Record(ctx context.Context, outcome *domain.FetchOutcome) error

	// ListRun returns the outcomes of one run in the order they were recorded.
	ListRun(ctx context.Context, runID string) ([]domain.FetchOutcome, error)

	// ListRecent returns up to limit outcomes, most recent first.
	ListRecent(ctx context.Context, limit int) ([]domain.FetchOutcome, error)
}
