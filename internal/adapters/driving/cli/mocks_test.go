package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driving"
)

type mockSettingsService struct {
	settings domain.AppSettings
	values   map[string]string
	setErr   error
	set      map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultAppSettings(),
		values: map[string]string{
			"environment":         "local",
			"fetch.workers":       "4",
			"fetch.user_agent":    "",
			"export.database_dsn": "rfam:secret@tcp(db.example.org:4497)/rfam_live",
			"ledger.enabled":      "true",
		},
		set: make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"environment", "fetch.workers", "fetch.user_agent", "export.database_dsn", "ledger.enabled"}
}

func (m *mockSettingsService) Value(key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("unknown key")
	}
	return v, nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func (m *mockSettingsService) Path() string { return "/home/rfam/.rfamops/config.toml" }

type mockProteomeService struct {
	reference []domain.Accession
	mapping   domain.ProteomeAssemblies
	order     []domain.Accession
	inputs    []string
	searched  []string
	results   []domain.Accession
	err       error
}

func (m *mockProteomeService) ListReferenceProteomes(_ context.Context) ([]domain.Accession, error) {
	return m.reference, m.err
}

func (m *mockProteomeService) ResolveAssembly(_ context.Context, p domain.Accession) (domain.Accession, error) {
	if a, ok := m.mapping.Resolved(p); ok {
		return a, nil
	}
	return "", domain.ErrNotFound
}

func (m *mockProteomeService) ResolveAssemblies(_ context.Context, proteomes []domain.Accession) domain.ProteomeAssemblies {
	out := make(domain.ProteomeAssemblies, len(proteomes))
	for _, p := range proteomes {
		out[p] = m.mapping[p]
	}
	return out
}

func (m *mockProteomeService) ResolveInput(_ context.Context, input string) ([]domain.Accession, domain.ProteomeAssemblies, error) {
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.order, m.mapping, nil
}

func (m *mockProteomeService) SearchAccessions(_ context.Context, p domain.Accession, keyword string) ([]domain.Accession, error) {
	m.searched = append(m.searched, string(p)+"|"+keyword)
	return m.results, m.err
}

type mockGenomeService struct {
	summary   *domain.BatchSummary
	err       error
	requests  []domain.DownloadRequest
	fetched   domain.FetchOutcome
	entries   []string
	expansion *domain.Expansion
	expanded  []domain.Accession
	history   []domain.FetchOutcome
	limits    []int
}

func (m *mockGenomeService) Expand(_ context.Context, a domain.Accession) (*domain.Expansion, error) {
	m.expanded = append(m.expanded, a)
	return m.expansion, m.err
}

func (m *mockGenomeService) DownloadGenomes(_ context.Context, req domain.DownloadRequest) (*domain.BatchSummary, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	for i, o := range m.summary.Outcomes {
		if req.Progress != nil {
			req.Progress(i+1, len(m.summary.Outcomes), o)
		}
	}
	return m.summary, nil
}

func (m *mockGenomeService) FetchGenome(_ context.Context, a domain.Accession, destDir string) domain.FetchOutcome {
	o := m.fetched
	o.Accession = a
	o.Directory = destDir
	return o
}

func (m *mockGenomeService) FetchEntry(_ context.Context, e domain.Accession, f domain.SequenceFormat, dir string) (string, error) {
	m.entries = append(m.entries, string(e)+"|"+string(f)+"|"+dir)
	if m.err != nil {
		return "", m.err
	}
	return dir + "/" + domain.EntryFileName(e, f), nil
}

func (m *mockGenomeService) History(_ context.Context, limit int) ([]domain.FetchOutcome, error) {
	m.limits = append(m.limits, limit)
	return m.history, m.err
}

type mockExportService struct {
	report  *domain.ExportReport
	reports []domain.ExportReport
	err     error
	calls   []string
}

func (m *mockExportService) ExportFamily(_ context.Context, seqFile, family, outDir string) (*domain.ExportReport, error) {
	m.calls = append(m.calls, "family|"+seqFile+"|"+family+"|"+outDir)
	return m.report, m.err
}

func (m *mockExportService) ExportAll(_ context.Context, seqFile, outDir string) ([]domain.ExportReport, error) {
	m.calls = append(m.calls, "all|"+seqFile+"|"+outDir)
	return m.reports, m.err
}

// exporterFor returns a factory handing out svc and counting closes.
func exporterFor(svc driving.ExportService, closed *int) ExporterFactory {
	return func(_ context.Context) (driving.ExportService, func() error, error) {
		return svc, func() error {
			*closed++
			return nil
		}, nil
	}
}

// withServices installs s for the duration of a test.
func withServices(t *testing.T, s *Services) {
	t.Helper()
	oldSettings, oldProteome, oldGenome, oldExporter, oldClose := settingsService, proteomeService, genomeService, exporterFactory, closeServices
	SetServices(s)
	t.Cleanup(func() {
		settingsService, proteomeService, genomeService, exporterFactory, closeServices = oldSettings, oldProteome, oldGenome, oldExporter, oldClose
	})
}

func resetFlags() {
	verbose = false
	configDir = ""
	genomeDest = ""
	genomeFormat = string(domain.FormatFASTA)
	genomeHistLimit = 20
	exportSeqDB = ""
	exportOutDir = ""
	exportFamily = ""
	versionShort = false
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	color.NoColor = true

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
