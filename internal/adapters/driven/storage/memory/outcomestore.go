package memory

import (
	"context"
	"sync"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
)

// Ensure OutcomeStore implements the interface.
var _ driven.OutcomeStore = (*OutcomeStore)(nil)

// OutcomeStore is an in-memory implementation of driven.OutcomeStore.
// Outcomes live for the lifetime of the process.
type OutcomeStore struct {
	mu       sync.RWMutex
	outcomes []domain.FetchOutcome
}

// NewOutcomeStore creates a new in-memory outcome store.
func NewOutcomeStore() *OutcomeStore {
	return &OutcomeStore{}
}

// Record appends an outcome.
func (s *OutcomeStore) Record(_ context.Context, outcome *domain.FetchOutcome) error {
	if outcome == nil {
		return domain.ErrInvalidInput
	}
	o := *outcome
	o.FailedEntries = append([]domain.Accession(nil), outcome.FailedEntries...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.outcomes = append(s.outcomes, o)
	return nil
}

// ListRun returns the outcomes of one run in recording order.
func (s *OutcomeStore) ListRun(_ context.Context, runID string) ([]domain.FetchOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.FetchOutcome
	for _, o := range s.outcomes {
		if o.RunID == runID {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListRecent returns up to limit outcomes, most recent first.
// A non-positive limit returns everything.
func (s *OutcomeStore) ListRecent(_ context.Context, limit int) ([]domain.FetchOutcome, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.outcomes)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.FetchOutcome, 0, n)
	for i := len(s.outcomes) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.outcomes[i])
	}
	return out, nil
}
