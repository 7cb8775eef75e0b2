package driving

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// ExportService writes per-family FASTA files of significant regions.
type ExportService interface {
	// ExportFamily writes <outDir>/<family>.fa.gz from seqFile.
	ExportFamily(ctx context.Context, seqFile, family, outDir string) (*domain.ExportReport, error)

	// ExportAll writes one file per family that has significant regions.
	ExportAll(ctx context.Context, seqFile, outDir string) ([]domain.ExportReport, error)
}
