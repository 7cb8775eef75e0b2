package driving

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// GenomeService downloads genome assemblies as per-entry sequence files.
type GenomeService interface {
	// Expand resolves an assembly accession into its sequence entries.
	Expand(ctx context.Context, assembly domain.Accession) (*domain.Expansion, error)

	// DownloadGenomes processes a single accession or a file of accessions,
	// one destination directory per accession. Per-accession failures are
	// recorded in the summary; an error is returned only for unusable input.
	DownloadGenomes(ctx context.Context, req domain.DownloadRequest) (*domain.BatchSummary, error)

	// FetchGenome downloads the assembly descriptor to disk, expands it from
	// the local copy, downloads every entry and removes the descriptor.
	FetchGenome(ctx context.Context, assembly domain.Accession, destDir string) domain.FetchOutcome

	// FetchEntry downloads one sequence entry in the given format into dir.
	// Returns the written file path.
	FetchEntry(ctx context.Context, entry domain.Accession, format domain.SequenceFormat, dir string) (string, error)

	// History returns up to limit recorded outcomes, most recent first.
	History(ctx context.Context, limit int) ([]domain.FetchOutcome, error)
}
