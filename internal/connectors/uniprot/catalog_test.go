package uniprot

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfam/rfamops/internal/core/domain"
)

const humanRDF = `<?xml version="1.0" encoding="UTF-8"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#">
  <rdf:Description rdf:about="http://purl.uniprot.org/proteomes/UP000005640">
    <rdf:type rdf:resource="http://purl.uniprot.org/core/Proteome"/>
    <rdfs:seeAlso rdf:resource="http://purl.uniprot.org/assembly/GCA_000001405.27"/>
    <rdfs:label>Homo sapiens</rdfs:label>
  </rdf:Description>
</rdf:RDF>
`

// fakeFetcher serves canned bodies keyed by URL.
type fakeFetcher struct {
	bodies map[string]string
	calls  []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.calls = append(f.calls, url)
	body, ok := f.bodies[url]
	if !ok {
		return nil, &domain.FetchError{URL: url, StatusCode: http.StatusNotFound}
	}
	return []byte(body), nil
}

func (f *fakeFetcher) Download(_ context.Context, url, _ string) (int64, error) {
	return 0, &domain.FetchError{URL: url, StatusCode: http.StatusNotImplemented}
}

func TestNewCatalog_DefaultsBaseURL(t *testing.T) {
	c := NewCatalog(&fakeFetcher{}, "")
	assert.Equal(t, "http://www.uniprot.org/proteomes/UP000005640.rdf", c.ProteomeURL("UP000005640"))

	c = NewCatalog(&fakeFetcher{}, "http://mirror.example/")
	assert.Equal(t, "http://mirror.example/proteomes/?query=*&fil=reference%3Ayes&format=list", c.ReferenceListURL())
}

func TestCatalog_ReferenceProteomes(t *testing.T) {
	c := NewCatalog(nil, "http://u.test")
	c.fetcher = &fakeFetcher{bodies: map[string]string{
		c.ReferenceListURL(): "UP000005640\n\nUP000000589\n",
	}}

	accs, err := c.ReferenceProteomes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Accession{"UP000005640", "UP000000589"}, accs)
}

func TestCatalog_ReferenceProteomes_SkipsInvalidLines(t *testing.T) {
	c := NewCatalog(nil, "http://u.test")
	c.fetcher = &fakeFetcher{bodies: map[string]string{
		c.ReferenceListURL(): "UP000005640\nnot an accession\nUP000000589\n",
	}}

	accs, err := c.ReferenceProteomes(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Accession{"UP000005640", "UP000000589"}, accs)
}

func TestCatalog_ReferenceProteomes_FetchError(t *testing.T) {
	c := NewCatalog(&fakeFetcher{}, "http://u.test")

	_, err := c.ReferenceProteomes(context.Background())

	assert.True(t, domain.IsNotFoundStatus(err))
}

func TestCatalog_DescriptorObjects(t *testing.T) {
	c := NewCatalog(nil, "http://u.test")
	c.fetcher = &fakeFetcher{bodies: map[string]string{
		"http://u.test/proteomes/UP000005640.rdf": humanRDF,
	}}

	objects, err := c.DescriptorObjects(context.Background(), "UP000005640")

	require.NoError(t, err)
	assert.Equal(t, []string{
		"http://purl.uniprot.org/core/Proteome",
		"http://purl.uniprot.org/assembly/GCA_000001405.27",
		"Homo sapiens",
	}, objects)
}

func TestDecodeObjects_Empty(t *testing.T) {
	doc := `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"></rdf:RDF>`

	objects, err := DecodeObjects(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Empty(t, objects)
}
