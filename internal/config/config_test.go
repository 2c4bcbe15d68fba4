package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{"HOST", "PORT", "DEBUG", "FEED_SEED", "POSTGRES_URL", "CHANGE_LOG_CAPACITY"}

// chdirTemp moves the test into an empty directory so no stray .env is read,
// and clears the variables the config reads.
func chdirTemp(t *testing.T) string {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, uint64(123), cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.PostgresURL)
	assert.Equal(t, 1000, cfg.ChangeLogCapacity)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8081")
	t.Setenv("FEED_SEED", "99")
	t.Setenv("DEBUG", "true")
	t.Setenv("CHANGE_LOG_CAPACITY", "10")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Addr())
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10, cfg.ChangeLogCapacity)
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("PORT=6123\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 6123, cfg.Port)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	chdirTemp(t)

	t.Setenv("PORT", "not-a-port")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "5000")
	t.Setenv("CHANGE_LOG_CAPACITY", "0")
	_, err = LoadConfig()
	assert.Error(t, err)
}
