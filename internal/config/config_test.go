package config

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allConfigKeys lists every TIMECLOCK_ env var that Load() reads.
var allConfigKeys = []string{
	"TIMECLOCK_DATA_DIR",
	"TIMECLOCK_DB_FILE",
	"TIMECLOCK_EXPORT_DIR",
	"TIMECLOCK_ADMIN_SECRET",
	"TIMECLOCK_SECRET_KEY",
}

// isolateConfigEnv saves and unsets all TIMECLOCK_ env vars so tests don't
// inherit values from the host environment. t.Cleanup restores original
// values after the test.
func isolateConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range allConfigKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoad_Success(t *testing.T) {
	isolateConfigEnv(t)
	dataDir := filepath.Join(t.TempDir(), "timeclock")
	t.Setenv("TIMECLOCK_DATA_DIR", dataDir)
	t.Setenv("TIMECLOCK_ADMIN_SECRET", "topsecret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "topsecret", cfg.AdminSecret)
	assert.Equal(t, filepath.Join(dataDir, "time_tracker.db"), cfg.DBPath())
	assert.Equal(t, dataDir, cfg.ExportDir, "export dir defaults to data dir")
	assert.DirExists(t, dataDir, "data dir is created on load")
	assert.Len(t, cfg.Key, 32, "a process-lifetime key is generated when unset")
}

func TestLoad_MissingAdminSecret(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TIMECLOCK_DATA_DIR", t.TempDir())

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ExplicitKey(t *testing.T) {
	isolateConfigEnv(t)
	key := []byte("0123456789abcdef0123456789abcdef")
	t.Setenv("TIMECLOCK_DATA_DIR", t.TempDir())
	t.Setenv("TIMECLOCK_ADMIN_SECRET", "topsecret")
	t.Setenv("TIMECLOCK_SECRET_KEY", base64.StdEncoding.EncodeToString(key))

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, key, cfg.Key)
}

func TestLoad_BadKey(t *testing.T) {
	isolateConfigEnv(t)
	t.Setenv("TIMECLOCK_DATA_DIR", t.TempDir())
	t.Setenv("TIMECLOCK_ADMIN_SECRET", "topsecret")

	t.Run("not base64", func(t *testing.T) {
		t.Setenv("TIMECLOCK_SECRET_KEY", "not-base64!!")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		t.Setenv("TIMECLOCK_SECRET_KEY", base64.StdEncoding.EncodeToString([]byte("short")))
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestLoad_CustomDBFileAndExportDir(t *testing.T) {
	isolateConfigEnv(t)
	dataDir := t.TempDir()
	exportDir := t.TempDir()
	t.Setenv("TIMECLOCK_DATA_DIR", dataDir)
	t.Setenv("TIMECLOCK_DB_FILE", "clock.db")
	t.Setenv("TIMECLOCK_EXPORT_DIR", exportDir)
	t.Setenv("TIMECLOCK_ADMIN_SECRET", "topsecret")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "clock.db"), cfg.DBPath())
	assert.Equal(t, exportDir, cfg.ExportDir)
}
