package domain

import "time"

const unknownDescription = "Unknown"

// Environment selects where the toolkit runs.
// It replaces the fixed local/cluster switch of the original scripts.
type Environment string

// Available environments.
const (
	// EnvironmentLocal runs tools from the workstation's paths.
	EnvironmentLocal Environment = "local"

	// EnvironmentCluster runs tools from the cluster's shared paths.
	EnvironmentCluster Environment = "cluster"
)

// IsValid returns true if the environment is recognised.
func (e Environment) IsValid() bool {
	return e == EnvironmentLocal || e == EnvironmentCluster
}

// String returns the string representation.
func (e Environment) String() string {
	return string(e)
}

// Description returns a human-readable description of the environment.
func (e Environment) Description() string {
	switch e {
	case EnvironmentLocal:
		return "Local workstation"
	case EnvironmentCluster:
		return "Compute cluster (LSF)"
	default:
		return unknownDescription
	}
}

// FetchSettings configures the resource fetcher and download pool.
type FetchSettings struct {
	// Timeout bounds every network request.
	Timeout time.Duration

	// RequestsPerSecond is the sustained request rate across all services.
	RequestsPerSecond float64

	// Burst is the token bucket size.
	Burst int

	// UserAgent is sent with every request.
	UserAgent string

	// Workers bounds how many accessions are processed concurrently.
	Workers int

	// UniProtBaseURL is the root of the proteome services.
	UniProtBaseURL string

	// ENABaseURL is the root of the assembly and sequence services.
	ENABaseURL string
}

// ExportSettings configures the family FASTA exporter.
type ExportSettings struct {
	// ESLSfetchLocal is the esl-sfetch path used in the local environment.
	ESLSfetchLocal string

	// ESLSfetchCluster is the esl-sfetch path used on the cluster.
	ESLSfetchCluster string

	// DatabaseDriver is the database/sql driver for the region store ("mysql" or "sqlite").
	DatabaseDriver string

	// DatabaseDSN is the data source name for the region store.
	DatabaseDSN string

	// LineWidth is the FASTA sequence line width.
	LineWidth int
}

// LedgerSettings configures the outcome ledger.
type LedgerSettings struct {
	// Enabled persists outcomes to SQLite; otherwise they are kept in memory.
	Enabled bool

	// Dir is the ledger data directory. Empty means ~/.rfamops/data.
	Dir string
}

// AppSettings holds all application settings.
type AppSettings struct {
	// Environment selects local or cluster tool paths.
	Environment Environment

	// Fetch holds network settings.
	Fetch FetchSettings

	// Export holds FASTA export settings.
	Export ExportSettings

	// Ledger holds outcome ledger settings.
	Ledger LedgerSettings
}

// ESLSfetchPath returns the esl-sfetch path for the configured environment.
func (s *AppSettings) ESLSfetchPath() string {
	if s.Environment == EnvironmentCluster {
		return s.Export.ESLSfetchCluster
	}
	return s.Export.ESLSfetchLocal
}

// DefaultAppSettings returns sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Environment: EnvironmentLocal,
		Fetch: FetchSettings{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5.0,
			Burst:             5,
			UserAgent:         "rfamops",
			Workers:           4,
			UniProtBaseURL:    "http://www.uniprot.org",
			ENABaseURL:        "http://www.ebi.ac.uk",
		},
		Export: ExportSettings{
			ESLSfetchLocal:   "esl-sfetch",
			ESLSfetchCluster: "esl-sfetch",
			DatabaseDriver:   "mysql",
			LineWidth:        60,
		},
		Ledger: LedgerSettings{
			Enabled: true,
		},
	}
}
