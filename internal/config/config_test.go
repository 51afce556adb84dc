package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		home := t.TempDir()
		body := "adb_path: /opt/platform-tools/adb\n" +
			"timing:\n" +
			"  tap: 250ms\n" +
			"apps:\n" +
			"  Notes: com.example.notes\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte(body), 0o600))

		cfg, err := Load(home)
		require.NoError(t, err)

		assert.Equal(t, "/opt/platform-tools/adb", cfg.ADBPath)
		assert.Equal(t, 250*time.Millisecond, cfg.Timing.Tap.Std())
		// untouched fields keep defaults
		assert.Equal(t, Default().Timing.Launch, cfg.Timing.Launch)
		assert.Equal(t, "com.example.notes", cfg.Apps["Notes"])
	})

	t.Run("bare numbers are nanoseconds", func(t *testing.T) {
		home := t.TempDir()
		body := "timing:\n  tap: 250000000\n"
		require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte(body), 0o600))

		cfg, err := Load(home)
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cfg.Timing.Tap.Std())
	})

	t.Run("bad duration errors", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("timing:\n  tap: soon\n"), 0o600))
		_, err := Load(home)
		assert.Error(t, err)
	})

	t.Run("malformed file errors", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(home, FileName), []byte("timing: ["), 0o600))
		_, err := Load(home)
		assert.Error(t, err)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")

	cfg := Default()
	cfg.ADBPath = "/usr/local/bin/adb"
	cfg.Apps["Notes"] = "com.example.notes"
	require.NoError(t, cfg.Save(home))

	got, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
