package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
)

// mockFetcher serves canned bodies and records downloads.
type mockFetcher struct {
	mu        sync.Mutex
	bodies    map[string]string
	fail      map[string]bool
	downloads []string
}

func newMockFetcher() *mockFetcher {
	return &mockFetcher{bodies: map[string]string{}, fail: map[string]bool{}}
}

func (f *mockFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail[url] {
		return nil, &domain.FetchError{URL: url, StatusCode: http.StatusInternalServerError}
	}
	return []byte(f.bodies[url]), nil
}

func (f *mockFetcher) Download(_ context.Context, url, path string) (int64, error) {
	f.mu.Lock()
	f.downloads = append(f.downloads, url)
	failed := f.fail[url]
	body, ok := f.bodies[url]
	f.mu.Unlock()

	if failed {
		return 0, &domain.FetchError{URL: url, StatusCode: http.StatusNotFound}
	}
	if !ok {
		body = "payload:" + url
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return 0, &domain.FilesystemError{Op: "write", Path: path, Err: err}
	}
	return int64(len(body)), nil
}

func (f *mockFetcher) downloaded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.downloads...)
}

// mockAssemblyCatalog returns canned descriptors and reports.
// Descriptor files written by mockFetcher contain the assembly accession,
// which DecodeDescriptorFile uses as the lookup key.
type mockAssemblyCatalog struct {
	mu          sync.Mutex
	descriptors map[domain.Accession]*domain.AssemblyDescriptor
	descErr     map[domain.Accession]error
	reports     map[string][]domain.Accession
	reportCalls []string
	decoded     []string
}

func newMockAssemblyCatalog() *mockAssemblyCatalog {
	return &mockAssemblyCatalog{
		descriptors: map[domain.Accession]*domain.AssemblyDescriptor{},
		descErr:     map[domain.Accession]error{},
		reports:     map[string][]domain.Accession{},
	}
}

func (c *mockAssemblyCatalog) Descriptor(_ context.Context, acc domain.Accession) (*domain.AssemblyDescriptor, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.descErr[acc]; err != nil {
		return nil, err
	}
	desc, ok := c.descriptors[acc]
	if !ok {
		return nil, &domain.FetchError{URL: c.DescriptorURL(acc), StatusCode: http.StatusNotFound}
	}
	return desc, nil
}

func (c *mockAssemblyCatalog) DescriptorURL(acc domain.Accession) string {
	return "desc://" + acc.String()
}

func (c *mockAssemblyCatalog) DecodeDescriptorFile(path string) (*domain.AssemblyDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.FilesystemError{Op: "open", Path: path, Err: err}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decoded = append(c.decoded, path)
	desc, ok := c.descriptors[domain.Accession(strings.TrimSpace(string(data)))]
	if !ok {
		return nil, errors.New("decode assembly descriptor: unexpected content")
	}
	return desc, nil
}

func (c *mockAssemblyCatalog) Report(_ context.Context, url string) ([]domain.Accession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reportCalls = append(c.reportCalls, url)
	accs, ok := c.reports[url]
	if !ok {
		return nil, &domain.FetchError{URL: url, StatusCode: http.StatusNotFound}
	}
	return accs, nil
}

func (c *mockAssemblyCatalog) EntryURL(entry domain.Accession, format domain.SequenceFormat) string {
	return fmt.Sprintf("entry://%s/%s", entry, format)
}

// mockProteomeCatalog returns canned descriptor objects.
type mockProteomeCatalog struct {
	reference []domain.Accession
	listErr   error
	objects   map[domain.Accession][]string
	calls     []domain.Accession
}

func (c *mockProteomeCatalog) ReferenceProteomes(_ context.Context) ([]domain.Accession, error) {
	return c.reference, c.listErr
}

func (c *mockProteomeCatalog) DescriptorObjects(_ context.Context, p domain.Accession) ([]string, error) {
	c.calls = append(c.calls, p)
	objs, ok := c.objects[p]
	if !ok {
		return nil, &domain.FetchError{URL: "rdf://" + p.String(), StatusCode: http.StatusNotFound}
	}
	return objs, nil
}

// mockRegionStore returns canned regions.
type mockRegionStore struct {
	regions []domain.Region
	err     error
	asked   []string
}

func (s *mockRegionStore) SignificantRegions(_ context.Context, family string) ([]domain.Region, error) {
	s.asked = append(s.asked, family)
	if s.err != nil {
		return nil, s.err
	}
	if family == "" {
		return s.regions, nil
	}
	var out []domain.Region
	for _, r := range s.regions {
		if r.Family == family {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *mockRegionStore) Close() error { return nil }

// mockExtractor returns canned FASTA output keyed by "acc:start/end".
type mockExtractor struct {
	output map[string]string
	err    map[string]error
}

func (e *mockExtractor) Extract(_ context.Context, rng domain.SequenceRange, _ string) ([]byte, error) {
	key := rng.Accession + ":" + rng.String()
	if err := e.err[key]; err != nil {
		return nil, err
	}
	return []byte(e.output[key]), nil
}

// mockSinkFactory collects records per path.
type mockSinkFactory struct {
	records map[string][]domain.SequenceRecord
	closed  map[string]bool
}

func newMockSinkFactory() *mockSinkFactory {
	return &mockSinkFactory{records: map[string][]domain.SequenceRecord{}, closed: map[string]bool{}}
}

func (f *mockSinkFactory) Create(path string) (driven.FastaSink, error) {
	f.records[path] = nil
	return &mockSink{factory: f, path: path}, nil
}

type mockSink struct {
	factory *mockSinkFactory
	path    string
}

func (s *mockSink) WriteRecord(rec domain.SequenceRecord) error {
	s.factory.records[s.path] = append(s.factory.records[s.path], rec)
	return nil
}

func (s *mockSink) Close() error {
	s.factory.closed[s.path] = true
	return nil
}
