package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeStatus_IsValid(t *testing.T) {
	assert.True(t, OutcomeSucceeded.IsValid())
	assert.True(t, OutcomeEmpty.IsValid())
	assert.True(t, OutcomeSkipped.IsValid())
	assert.True(t, OutcomeFailed.IsValid())
	assert.False(t, OutcomeStatus("pending").IsValid())
}

func TestBatchSummary_Counts(t *testing.T) {
	summary := &BatchSummary{
		RunID: "run-1",
		Outcomes: []FetchOutcome{
			{Accession: "GCA_1", Status: OutcomeSucceeded},
			{Accession: "GCA_2", Status: OutcomeFailed, Error: "boom"},
			{Accession: "GCA_3", Status: OutcomeEmpty},
			{Accession: "GCA_4", Status: OutcomeSucceeded},
		},
	}

	assert.Equal(t, 2, summary.Count(OutcomeSucceeded))
	assert.Equal(t, 1, summary.Count(OutcomeEmpty))
	assert.Equal(t, 1, summary.Count(OutcomeFailed))

	failed := summary.Failed()
	assert.Len(t, failed, 1)
	assert.Equal(t, Accession("GCA_2"), failed[0].Accession)
}

func TestBatchSummary_Empty(t *testing.T) {
	summary := &BatchSummary{}
	assert.Equal(t, 0, summary.Count(OutcomeFailed))
	assert.Empty(t, summary.Failed())
}
