package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "anthrobot", cfg.Name)
	assert.False(t, cfg.Store.Enabled)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "anthrobot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: morpho-lab
store:
  enabled: true
  database_path: /tmp/morpho.db
logging:
  level: debug
  disabled: [tools]
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "morpho-lab", cfg.Name)
	assert.Equal(t, "1.0.0", cfg.Version, "unset fields keep their defaults")
	assert.True(t, cfg.Store.Enabled)
	assert.Equal(t, "/tmp/morpho.db", cfg.Store.DatabasePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.DisabledSet()["tools"])
}

func TestLoadRejectsBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	write := func(body string) string {
		path := filepath.Join(t.TempDir(), "cfg.yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0644))
		return path
	}

	_, err := Load(write("logging:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = Load(write("store:\n  enabled: true\n  database_path: \"\"\n"))
	assert.Error(t, err)

	_, err = Load(write("name: \"\"\n"))
	assert.Error(t, err)
}

func TestDisabledSetEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, LoggingConfig{}.DisabledSet())
}
