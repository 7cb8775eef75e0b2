package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfam/rfamops/internal/core/domain"
)

func TestOutcomeStore_RecordAndListRun(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()

	require.NoError(t, store.Record(ctx, &domain.FetchOutcome{RunID: "run-1", Accession: "GCA_1", Status: domain.OutcomeSucceeded}))
	require.NoError(t, store.Record(ctx, &domain.FetchOutcome{RunID: "run-2", Accession: "GCA_2", Status: domain.OutcomeFailed}))
	require.NoError(t, store.Record(ctx, &domain.FetchOutcome{RunID: "run-1", Accession: "GCA_3", Status: domain.OutcomeEmpty}))

	run, err := store.ListRun(ctx, "run-1")

	require.NoError(t, err)
	require.Len(t, run, 2)
	assert.Equal(t, domain.Accession("GCA_1"), run[0].Accession)
	assert.Equal(t, domain.Accession("GCA_3"), run[1].Accession)

	none, err := store.ListRun(ctx, "run-x")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOutcomeStore_Record_Nil(t *testing.T) {
	err := NewOutcomeStore().Record(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOutcomeStore_Record_CopiesFailedEntries(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()
	outcome := &domain.FetchOutcome{RunID: "r", Accession: "GCA_1", FailedEntries: []domain.Accession{"CM1"}}

	require.NoError(t, store.Record(ctx, outcome))
	outcome.FailedEntries[0] = "changed"

	run, _ := store.ListRun(ctx, "r")
	assert.Equal(t, []domain.Accession{"CM1"}, run[0].FailedEntries)
}

func TestOutcomeStore_ListRecent(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()
	for _, acc := range []domain.Accession{"GCA_1", "GCA_2", "GCA_3"} {
		require.NoError(t, store.Record(ctx, &domain.FetchOutcome{RunID: "r", Accession: acc}))
	}

	recent, err := store.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, domain.Accession("GCA_3"), recent[0].Accession)
	assert.Equal(t, domain.Accession("GCA_2"), recent[1].Accession)

	all, err := store.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOutcomeStore_ConcurrentRecord(t *testing.T) {
	store := NewOutcomeStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Record(ctx, &domain.FetchOutcome{RunID: "r"})
		}()
	}
	wg.Wait()

	run, err := store.ListRun(ctx, "r")
	require.NoError(t, err)
	assert.Len(t, run, 25)
}
