package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRawJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_Success(t *testing.T) {
	path := writeRawJSON(t, `{
		"app": {"language": "fr", "theme": "dark", "log_file": "/tmp/exo.log", "not_found_redirect": "3s"},
		"storage": {"db": {"driver": "sqlite3", "dsn": "/tmp/exo.db"}},
		"adapter": {"http_address": "http://localhost:8080/api", "request_timeout": "5s"},
		"server": {
			"http_address": "localhost:8080",
			"request_timeout": 1000000000,
			"token_sign_key": "key",
			"token_issuer": "iss",
			"token_duration": "12h",
			"admin_emails": ["admin@test.io"]
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "fr", cfg.App.Language)
	assert.Equal(t, "dark", cfg.App.Theme)
	assert.Equal(t, "/tmp/exo.log", cfg.App.LogFile)
	assert.Equal(t, 3*time.Second, cfg.App.NotFoundRedirect)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/tmp/exo.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080/api", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "key", cfg.Server.TokenSignKey)
	assert.Equal(t, "iss", cfg.Server.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.Server.TokenDuration)
	assert.Equal(t, []string{"admin@test.io"}, cfg.Server.AdminEmails)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeRawJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeRawJSON(t, `{"adapter": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeRawJSON(t, `{}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
