package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	path := writeConfig(t, `
[database]
user = "readings"
dbname = "readings_crm"
password = "from-file"

[autofill]
birthdate_policy = "always"
`)
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("API_TOKEN", "secret")
	t.Setenv("SHEETDB_URL", "https://sheetdb.io/api/v1/abc")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "secret", cfg.Auth.APIToken)
	assert.Equal(t, "https://sheetdb.io/api/v1/abc", cfg.SheetDB.URL)
	assert.Equal(t, "always", cfg.Autofill.BirthdatePolicy)
	assert.Equal(t, 60, cfg.RateLimit.AutofillPerMinute)
	assert.Equal(t, "host=localhost port=5432 user=readings password=from-env dbname=readings_crm sslmode=disable",
		cfg.Database.DSN())

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "Broken toml",
			content: `[server`,
			wantErr: ErrReadConfig,
		},
		{
			name:    "Missing database",
			content: `[server]` + "\nhttp_port = 8080\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name: "Unknown policy",
			content: `
[database]
user = "u"
dbname = "d"
[autofill]
birthdate_policy = "sometimes"
`,
			wantErr: ErrInvalidConfig,
		},
		{
			name: "Unknown timezone",
			content: `
[database]
user = "u"
dbname = "d"
[calendar]
timezone = "Mars/Olympus"
`,
			wantErr: ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}
