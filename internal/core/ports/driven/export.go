package driven

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// RegionStore reads significant family regions from the relational store.
type RegionStore interface {
	// SignificantRegions returns the significant regions of a family joined
	// with their sequence descriptions. An empty family returns all families,
	// ordered by family accession.
	SignificantRegions(ctx context.Context, family string) ([]domain.Region, error)

	// Close releases the connection.
	Close() error
}

// SequenceExtractor extracts a subsequence from a sequence database file.
// Implementations shell out to an external tool; the core only sees bytes.
type SequenceExtractor interface {
	// Extract returns the FASTA-formatted subsequence for rng from source.
	Extract(ctx context.Context, rng domain.SequenceRange, source string) ([]byte, error)
}

// FastaSink receives FASTA records for one output file.
type FastaSink interface {
	// WriteRecord appends a record.
	WriteRecord(rec domain.SequenceRecord) error

	// Close flushes and closes the output.
	Close() error
}

// FastaSinkFactory opens FastaSinks.
type FastaSinkFactory interface {
	// Create opens a new sink at path, truncating any existing file.
	Create(path string) (FastaSink, error)
}
