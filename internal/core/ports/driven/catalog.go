package driven

import (
	"context"

	"github.com/rfam/rfamops/internal/core/domain"
)

// ProteomeCatalog provides the reference proteome directory and
// proteome descriptor documents.
type ProteomeCatalog interface {
	// ReferenceProteomes returns all reference proteome accessions.
	ReferenceProteomes(ctx context.Context) ([]domain.Accession, error)

	// DescriptorObjects fetches a proteome's RDF descriptor and returns the
	// object value of every triple, in document order.
	DescriptorObjects(ctx context.Context, proteome domain.Accession) ([]string, error)
}

// AssemblyCatalog provides assembly descriptors, assembly reports and
// sequence download locations.
type AssemblyCatalog interface {
	// Descriptor fetches and decodes an assembly's XML descriptor.
	Descriptor(ctx context.Context, assembly domain.Accession) (*domain.AssemblyDescriptor, error)

	// DescriptorURL returns the location of an assembly's XML descriptor.
	DescriptorURL(assembly domain.Accession) string

	// DecodeDescriptorFile decodes a descriptor previously saved to disk.
	DecodeDescriptorFile(path string) (*domain.AssemblyDescriptor, error)

	// Report fetches a tab-delimited assembly report and returns its
	// accessions in document order, version preserved.
	Report(ctx context.Context, url string) ([]domain.Accession, error)

	// EntryURL returns the compressed download location of a sequence entry.
	EntryURL(entry domain.Accession, format domain.SequenceFormat) string
}
