package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "carcare.db", c.DBPath)
	assert.Equal(t, StorageSQLite, c.Storage)
	assert.Equal(t, "exports", c.ExportDir)
	assert.Equal(t, 7*24*time.Hour, c.ReminderWindow)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
	assert.Equal(t, "text", c.LogFormat)
	assert.Empty(t, c.LogFile)
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources(t *testing.T) {
	got := load(nil, noEnv)
	if diff := cmp.Diff(defaults(), got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "cfg.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
		"export_dir": "from-json",
		"storage": "memory",
		"log": {"backend": "zap"}
	}`), 0o600))

	env := envMap(map[string]string{
		"CARCARE_DB_PATH":    "env.db",
		"CARCARE_EXPORT_DIR": "from-env",
		"CARCARE_LOG_FORMAT": "json",
		"CARCARE_LOG_LEVEL":  "warn",
	})
	args := []string{"-c", jsonPath, "-l", "debug"}

	got := load(args, env)

	assert.Equal(t, "env.db", got.DBPath, "env over defaults")
	assert.Equal(t, "from-json", got.ExportDir, "json over env")
	assert.Equal(t, StorageMemory, got.Storage)
	assert.Equal(t, "zap", got.LogBackend)
	assert.Equal(t, "json", got.LogFormat)
	assert.Equal(t, "debug", got.LogLevel, "flags over everything")
}

func TestValidate(t *testing.T) {
	c := defaults()
	c.Storage = "redis"
	require.ErrorIs(t, c.Validate(), ErrInvalidStorage)

	c = defaults()
	c.ReminderWindow = -time.Hour
	require.Error(t, c.Validate())
}

func TestLogOptions(t *testing.T) {
	c := defaults()
	c.LogFile = "/var/log/carcare.log"
	o := c.LogOptions()
	assert.Equal(t, "slog", o.Backend)
	assert.Equal(t, "/var/log/carcare.log", o.File)
	assert.Equal(t, 10, o.MaxSizeMB)
}
