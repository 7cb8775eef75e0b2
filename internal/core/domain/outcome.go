package domain

import "time"

// OutcomeStatus is the per-accession result of a download.
type OutcomeStatus string

// Outcome statuses.
const (
	// OutcomeSucceeded means every entry was downloaded.
	OutcomeSucceeded OutcomeStatus = "succeeded"

	// OutcomeEmpty means the assembly resolved but had nothing to download.
	OutcomeEmpty OutcomeStatus = "empty"

	// OutcomeSkipped means the accession repeats an earlier one in the
	// same run and was not processed again.
	OutcomeSkipped OutcomeStatus = "skipped"

	// OutcomeFailed means resolution or at least one download failed.
	OutcomeFailed OutcomeStatus = "failed"
)

// IsValid returns true if the status is recognised.
func (s OutcomeStatus) IsValid() bool {
	switch s {
	case OutcomeSucceeded, OutcomeEmpty, OutcomeSkipped, OutcomeFailed:
		return true
	default:
		return false
	}
}

// FetchOutcome records what happened to one accession in a download run.
type FetchOutcome struct {
	// RunID groups outcomes from the same batch run.
	RunID string

	// Accession is the input accession as given.
	Accession Accession

	// Directory is the destination directory created for the accession.
	Directory string

	// Strategy is the expansion case used, empty if resolution failed.
	Strategy ExpansionStrategy

	// Status is the final outcome.
	Status OutcomeStatus

	// Entries is the number of entry accessions resolved.
	Entries int

	// Downloaded is the number of entry files written.
	Downloaded int

	// FailedEntries lists entries whose download failed.
	FailedEntries []Accession

	// Error contains the failure message if Status is failed, or the
	// earlier accession if Status is skipped.
	Error string

	// StartedAt is when processing of the accession started.
	StartedAt time.Time

	// EndedAt is when processing of the accession completed.
	EndedAt time.Time
}

// BatchSummary aggregates the outcomes of one run, in input order.
type BatchSummary struct {
	// RunID identifies the run.
	RunID string

	// Outcomes holds one entry per input accession.
	Outcomes []FetchOutcome
}

// Count returns the number of outcomes with the given status.
func (b *BatchSummary) Count(status OutcomeStatus) int {
	n := 0
	for i := range b.Outcomes {
		if b.Outcomes[i].Status == status {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that failed.
func (b *BatchSummary) Failed() []FetchOutcome {
	var out []FetchOutcome
	for i := range b.Outcomes {
		if b.Outcomes[i].Status == OutcomeFailed {
			out = append(out, b.Outcomes[i])
		}
	}
	return out
}

// DownloadRequest describes a batch genome download.
type DownloadRequest struct {
	// Input is a single accession or a path to a file of accessions.
	Input string

	// DestDir is the root under which one directory per accession is created.
	DestDir string

	// Progress, if set, is called once per finished accession.
	// Calls are serialised.
	Progress func(done, total int, outcome FetchOutcome)
}
