package driving

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// ProteomeService resolves reference proteomes to genome assemblies.
type ProteomeService interface {
	// ListReferenceProteomes returns all reference proteome accessions.
	ListReferenceProteomes(ctx context.Context) ([]domain.Accession, error)

	// ResolveAssembly returns the assembly accession of one proteome.
	// Returns domain.ErrNotFound if the descriptor names no assembly.
	ResolveAssembly(ctx context.Context, proteome domain.Accession) (domain.Accession, error)

	// ResolveAssemblies resolves each proteome independently. Failures map
	// to an empty assembly and never abort the batch.
	ResolveAssemblies(ctx context.Context, proteomes []domain.Accession) domain.ProteomeAssemblies

	// ResolveInput resolves a single accession or a file of accessions.
	// The returned order follows the input. Lines that are not valid
	// accessions map to an empty assembly.
	ResolveInput(ctx context.Context, input string) ([]domain.Accession, domain.ProteomeAssemblies, error)

	// SearchAccessions returns the trailing path segment of every descriptor
	// object containing "/keyword/", in document order.
	SearchAccessions(ctx context.Context, proteome domain.Accession, keyword string) ([]domain.Accession, error)
}
