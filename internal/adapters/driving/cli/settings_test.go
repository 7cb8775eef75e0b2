package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfam/rfamops/internal/core/domain"
)

func TestConfigShow(t *testing.T) {
	withServices(t, &Services{Settings: newMockSettingsService()})

	stdout, _, err := execute(t, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Config file: /home/rfam/.rfamops/config.toml")
	assert.Contains(t, stdout, "Environment: Local workstation")
	assert.Contains(t, stdout, "[fetch]\n  workers = 4\n  user_agent = (not set)\n")
	assert.Contains(t, stdout, "[export]\n  database_dsn = rfam:****@tcp(db.example.org:4497)/rfam_live")
	assert.NotContains(t, stdout, "secret")
	assert.Contains(t, stdout, "[ledger]\n  enabled = true\n")
}

func TestConfigCmd_DefaultsToShow(t *testing.T) {
	withServices(t, &Services{Settings: newMockSettingsService()})

	stdout, _, err := execute(t, "config")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Current Settings")
}

func TestConfigSet(t *testing.T) {
	svc := newMockSettingsService()
	withServices(t, &Services{Settings: svc})

	stdout, _, err := execute(t, "config", "set", "fetch.workers", "8")

	require.NoError(t, err)
	assert.Equal(t, "8", svc.set["fetch.workers"])
	assert.Equal(t, "Set fetch.workers\n", stdout)
}

func TestConfigSet_Invalid(t *testing.T) {
	svc := newMockSettingsService()
	svc.setErr = errors.Join(domain.ErrInvalidInput, errors.New("must be positive"))
	withServices(t, &Services{Settings: svc})

	_, _, err := execute(t, "config", "set", "fetch.workers", "-1")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestConfigCmd_NotConfigured(t *testing.T) {
	withServices(t, &Services{})

	_, _, err := execute(t, "config", "show")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}

func TestMaskDSN(t *testing.T) {
	tests := []struct {
		name     string
		driver   string
		dsn      string
		expected string
	}{
		{"sqlite path", "sqlite", "/data/rfam.db", "/data/rfam.db"},
		{"empty", "mysql", "", ""},
		{"no password", "mysql", "rfam@tcp(db:3306)/rfam_live", "rfam@tcp(db:3306)/rfam_live"},
		{"password", "mysql", "rfam:secret@tcp(db:3306)/rfam_live", "rfam:****@tcp(db:3306)/rfam_live"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := maskDSN(tt.driver, tt.dsn)
			// The driver may append normalised parameters after the database name.
			assert.True(t, strings.HasPrefix(got, tt.expected), got)
			assert.NotContains(t, got, "secret")
		})
	}
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "abcd...wxyz", maskSecret("abcdefghijklmnopqrstuvwxyz"))
}
