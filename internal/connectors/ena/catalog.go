package ena

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/logger"
)

// DefaultBaseURL is the EBI website root serving the ENA browser API.
const DefaultBaseURL = "http://www.ebi.ac.uk"

// Ensure Catalog implements the interface.
var _ driven.AssemblyCatalog = (*Catalog)(nil)

// Catalog retrieves assembly descriptors and reports from ENA.
type Catalog struct {
	fetcher driven.ResourceFetcher
	baseURL string
}

// NewCatalog creates a catalog rooted at baseURL.
// An empty baseURL selects DefaultBaseURL.
func NewCatalog(fetcher driven.ResourceFetcher, baseURL string) *Catalog {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Catalog{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// DescriptorURL returns the XML descriptor location of an assembly.
func (c *Catalog) DescriptorURL(assembly domain.Accession) string {
	return fmt.Sprintf("%s/ena/data/view/%s&display=xml", c.baseURL, assembly)
}

// EntryURL returns the gzip download location of a sequence entry.
func (c *Catalog) EntryURL(entry domain.Accession, format domain.SequenceFormat) string {
	return fmt.Sprintf("%s/ena/data/view/%s&display=%s&download=gzip", c.baseURL, entry, format)
}

// Descriptor fetches and decodes an assembly's XML descriptor.
func (c *Catalog) Descriptor(ctx context.Context, assembly domain.Accession) (*domain.AssemblyDescriptor, error) {
	body, err := c.fetcher.Fetch(ctx, c.DescriptorURL(assembly))
	if err != nil {
		return nil, err
	}
	desc, err := DecodeDescriptor(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", assembly, err)
	}
	return desc, nil
}

// DecodeDescriptorFile decodes a descriptor saved at path.
func (c *Catalog) DecodeDescriptorFile(path string) (*domain.AssemblyDescriptor, error) {
	return DecodeDescriptorFile(path)
}

// Report fetches an assembly report and returns its accessions.
func (c *Catalog) Report(ctx context.Context, url string) ([]domain.Accession, error) {
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	accs := ParseReport(string(body))
	logger.Debug("Assembly report %s lists %d entries", url, len(accs))
	return accs, nil
}
