package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_DotEnvAndProcessEnv(t *testing.T) {
	noDotEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"RESUMEPORTAL_API_ENDPOINT=http://dotenv:1\n"+
			"RESUMEPORTAL_LOG_FILE=client.log\n"+
			"RESUMEPORTAL_EPHEMERAL=true\n"), 0o600))

	t.Setenv(envPrefix+"API_ENDPOINT", "http://process:2")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, path))

	assert.Equal(t, "http://process:2", cfg.APIEndpoint, "process env wins over .env")
	assert.Equal(t, "client.log", cfg.LogFile)
	assert.True(t, cfg.Ephemeral)
	assert.Equal(t, "session.db", cfg.StoragePath)
}

func TestParseEnv_MissingFileIgnored(t *testing.T) {
	noDotEnv(t)

	cfg := defaults()
	require.NoError(t, parseEnv(cfg, filepath.Join(t.TempDir(), "nope.env")))
	assert.Equal(t, defaults(), cfg)

	require.NoError(t, parseEnv(cfg, ""))
	assert.Equal(t, defaults(), cfg)
}

func TestParseEnv_DirectoryIsError(t *testing.T) {
	noDotEnv(t)

	cfg := defaults()
	require.Error(t, parseEnv(cfg, t.TempDir()))
}
