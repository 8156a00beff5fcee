package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards
func unsetEnv(t *testing.T, key string) {
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_SERVER_CLIENT_ID", "client-123")
	t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost:8080/callback")
	for _, key := range []string{"GOOGLE_ISSUER", "SIGNIN_AUTO_SELECT", "SIGNIN_FILTER_AUTHORIZED", "PORT", "LOG_LEVEL"} {
		unsetEnv(t, key)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "client-123", cfg.ServerClientID)
	assert.Equal(t, "https://accounts.google.com", cfg.GoogleIssuer)
	assert.True(t, cfg.AutoSelect)
	assert.False(t, cfg.FilterAuthorized)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.LoginRateBurst)
}

func TestLoadFromFile(t *testing.T) {
	unsetEnv(t, "GOOGLE_SERVER_CLIENT_ID")
	unsetEnv(t, "GOOGLE_CALLBACK_URL")
	unsetEnv(t, "SIGNIN_AUTO_SELECT")
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), ".env")
	content := "GOOGLE_SERVER_CLIENT_ID=from-file\n" +
		"GOOGLE_CALLBACK_URL=https://app.example.com/callback\n" +
		"SIGNIN_AUTO_SELECT=false\n" +
		"PORT=7070\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.ServerClientID)
	assert.False(t, cfg.AutoSelect)
	// Already-set variables are not overridden
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadMissingRequired(t *testing.T) {
	unsetEnv(t, "GOOGLE_SERVER_CLIENT_ID")
	t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost:8080/callback")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
	assert.Contains(t, err.Error(), "GOOGLE_SERVER_CLIENT_ID")
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("GOOGLE_SERVER_CLIENT_ID", "client-123")
	t.Setenv("GOOGLE_CALLBACK_URL", "http://localhost:8080/callback")
	t.Setenv("LOGIN_RATE_BURST", "not-an-int")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
