package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rfam/rfamops/internal/core/domain"
	"github.com/rfam/rfamops/internal/core/ports/driven"
	"github.com/rfam/rfamops/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyEnvironment       = "environment"
	keyFetchTimeout      = "fetch.timeout_seconds"
	keyFetchRPS          = "fetch.requests_per_second"
	keyFetchBurst        = "fetch.burst"
	keyFetchUserAgent    = "fetch.user_agent"
	keyFetchWorkers      = "fetch.workers"
	keyFetchUniProtURL   = "fetch.uniprot_base_url"
	keyFetchENAURL       = "fetch.ena_base_url"
	keyExportSfetchLocal = "export.esl_sfetch_local"
	keyExportSfetchLSF   = "export.esl_sfetch_cluster"
	keyExportDBDriver    = "export.database_driver"
	keyExportDBDSN       = "export.database_dsn"
	keyExportLineWidth   = "export.line_width"
	keyLedgerEnabled     = "ledger.enabled"
	keyLedgerDir         = "ledger.dir"
)

type settingKind int

const (
	kindString settingKind = iota
	kindInt
	kindFloat
	kindBool
	kindEnvironment
	kindDriver
)

// setting describes one user-settable key.
type setting struct {
	key   string
	kind  settingKind
	value func(*domain.AppSettings) any
}

var settingTable = []setting{
	{keyEnvironment, kindEnvironment, func(s *domain.AppSettings) any { return s.Environment.String() }},
	{keyFetchTimeout, kindInt, func(s *domain.AppSettings) any { return int(s.Fetch.Timeout / time.Second) }},
	{keyFetchRPS, kindFloat, func(s *domain.AppSettings) any { return s.Fetch.RequestsPerSecond }},
	{keyFetchBurst, kindInt, func(s *domain.AppSettings) any { return s.Fetch.Burst }},
	{keyFetchUserAgent, kindString, func(s *domain.AppSettings) any { return s.Fetch.UserAgent }},
	{keyFetchWorkers, kindInt, func(s *domain.AppSettings) any { return s.Fetch.Workers }},
	{keyFetchUniProtURL, kindString, func(s *domain.AppSettings) any { return s.Fetch.UniProtBaseURL }},
	{keyFetchENAURL, kindString, func(s *domain.AppSettings) any { return s.Fetch.ENABaseURL }},
	{keyExportSfetchLocal, kindString, func(s *domain.AppSettings) any { return s.Export.ESLSfetchLocal }},
	{keyExportSfetchLSF, kindString, func(s *domain.AppSettings) any { return s.Export.ESLSfetchCluster }},
	{keyExportDBDriver, kindDriver, func(s *domain.AppSettings) any { return s.Export.DatabaseDriver }},
	{keyExportDBDSN, kindString, func(s *domain.AppSettings) any { return s.Export.DatabaseDSN }},
	{keyExportLineWidth, kindInt, func(s *domain.AppSettings) any { return s.Export.LineWidth }},
	{keyLedgerEnabled, kindBool, func(s *domain.AppSettings) any { return s.Ledger.Enabled }},
	{keyLedgerDir, kindString, func(s *domain.AppSettings) any { return s.Ledger.Dir }},
}

// supportedDrivers lists the database/sql drivers the region store registers.
var supportedDrivers = map[string]bool{"mysql": true, "sqlite": true}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Environment: s.getEnvironment(defaults.Environment),
		Fetch: domain.FetchSettings{
			Timeout:           time.Duration(s.getInt(keyFetchTimeout, int(defaults.Fetch.Timeout/time.Second))) * time.Second,
			RequestsPerSecond: s.getFloat(keyFetchRPS, defaults.Fetch.RequestsPerSecond),
			Burst:             s.getInt(keyFetchBurst, defaults.Fetch.Burst),
			UserAgent:         s.getString(keyFetchUserAgent, defaults.Fetch.UserAgent),
			Workers:           s.getInt(keyFetchWorkers, defaults.Fetch.Workers),
			UniProtBaseURL:    s.getString(keyFetchUniProtURL, defaults.Fetch.UniProtBaseURL),
			ENABaseURL:        s.getString(keyFetchENAURL, defaults.Fetch.ENABaseURL),
		},
		Export: domain.ExportSettings{
			ESLSfetchLocal:   s.getString(keyExportSfetchLocal, defaults.Export.ESLSfetchLocal),
			ESLSfetchCluster: s.getString(keyExportSfetchLSF, defaults.Export.ESLSfetchCluster),
			DatabaseDriver:   s.getDriver(defaults.Export.DatabaseDriver),
			DatabaseDSN:      s.configStore.GetString(keyExportDBDSN), // No default - must be configured for export
			LineWidth:        s.getInt(keyExportLineWidth, defaults.Export.LineWidth),
		},
		Ledger: domain.LedgerSettings{
			Enabled: s.getBool(keyLedgerEnabled, defaults.Ledger.Enabled),
			Dir:     s.configStore.GetString(keyLedgerDir),
		},
	}

	return settings, nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	def, ok := lookupSetting(key)
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	parsed, err := parseSetting(def, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, key, err)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every supported key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingTable))
	for i, def := range settingTable {
		keys[i] = def.key
	}
	return keys
}

// Value returns the effective value of key.
func (s *SettingsService) Value(key string) (string, error) {
	def, ok := lookupSetting(key)
	if !ok {
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	return fmt.Sprint(def.value(settings)), nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func lookupSetting(key string) (setting, bool) {
	for _, def := range settingTable {
		if def.key == key {
			return def, true
		}
	}
	return setting{}, false
}

func parseSetting(def setting, value string) (any, error) {
	switch def.kind {
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", value)
		}
		if n <= 0 {
			return nil, fmt.Errorf("must be positive: %d", n)
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", value)
		}
		if f < 0 {
			return nil, fmt.Errorf("must not be negative: %v", f)
		}
		return f, nil
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("not a boolean: %q", value)
		}
		return b, nil
	case kindEnvironment:
		if !domain.Environment(value).IsValid() {
			return nil, fmt.Errorf("must be %q or %q", domain.EnvironmentLocal, domain.EnvironmentCluster)
		}
		return value, nil
	case kindDriver:
		if !supportedDrivers[value] {
			return nil, fmt.Errorf("unsupported database driver %q", value)
		}
		return value, nil
	default:
		return value, nil
	}
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getEnvironment(defaultVal domain.Environment) domain.Environment {
	env := domain.Environment(s.configStore.GetString(keyEnvironment))
	if !env.IsValid() {
		return defaultVal
	}
	return env
}

func (s *SettingsService) getDriver(defaultVal string) string {
	val := s.configStore.GetString(keyExportDBDriver)
	if !supportedDrivers[val] {
		return defaultVal
	}
	return val
}
