package uniprot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/knakk/rdf"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/logger"
)

// DefaultBaseURL is the UniProt website root.
const DefaultBaseURL = "http://www.uniprot.org"

// Ensure Catalog implements the interface.
var _ driven.ProteomeCatalog = (*Catalog)(nil)

// Catalog retrieves proteome listings and descriptors from UniProt.
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

// ReferenceListURL returns the URL of the reference proteome list.
func (c *Catalog) ReferenceListURL() string {
	return c.baseURL + "/proteomes/?query=*&fil=reference%3Ayes&format=list"
}

// ProteomeURL returns the RDF descriptor URL for a proteome.
func (c *Catalog) ProteomeURL(proteome domain.Accession) string {
	return fmt.Sprintf("%s/proteomes/%s.rdf", c.baseURL, proteome)
}

// ReferenceProteomes returns the reference proteome accessions in listed order.
// Lines that are not valid accessions are skipped.
func (c *Catalog) ReferenceProteomes(ctx context.Context) ([]domain.Accession, error) {
	body, err := c.fetcher.Fetch(ctx, c.ReferenceListURL())
	if err != nil {
		return nil, err
	}
	accs, invalid := domain.ParseAccessionList(string(body))
	for _, line := range invalid {
		logger.Warn("Skipping invalid reference proteome %q", line)
	}
	logger.Debug("Listed %d reference proteomes", len(accs))
	return accs, nil
}

// DescriptorObjects fetches the proteome's RDF descriptor and returns the
// object term of every statement in document order.
func (c *Catalog) DescriptorObjects(ctx context.Context, proteome domain.Accession) ([]string, error) {
	body, err := c.fetcher.Fetch(ctx, c.ProteomeURL(proteome))
	if err != nil {
		return nil, err
	}
	objects, err := DecodeObjects(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode descriptor for %s: %w", proteome, err)
	}
	return objects, nil
}

// DecodeObjects decodes an RDF/XML document and returns the string form of
// each triple's object. IRIs are returned bare and literals as their lexical value.
func DecodeObjects(r io.Reader) ([]string, error) {
	dec := rdf.NewTripleDecoder(r, rdf.RDFXML)

	var objects []string
	for {
		tr, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		objects = append(objects, tr.Obj.String())
	}
	return objects, nil
}
