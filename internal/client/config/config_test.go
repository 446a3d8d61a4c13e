package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"tafuta"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, StorageSQLite, cfg.StorageBackend)
	require.Equal(t, "tafuta.db", cfg.StoragePath)
	require.Equal(t, AuthMock, cfg.AuthBackend)
	require.Equal(t, 1500*time.Millisecond, cfg.AuthDelay)
	require.Equal(t, 500*time.Millisecond, cfg.LogoutDelay)
}

func TestLoadConfig_NoArgs(t *testing.T) {
	withArgs(t)
	cfg := LoadConfig()

	require.Equal(t, StorageSQLite, cfg.StorageBackend)
	require.Equal(t, AuthMock, cfg.AuthBackend)
}

func TestLoadConfig_FlagsOverrideDefaults(t *testing.T) {
	withArgs(t, "-s", "memory", "-b", "http", "-a", "http://auth.local")
	cfg := LoadConfig()

	require.Equal(t, StorageMemory, cfg.StorageBackend)
	require.Equal(t, AuthHTTP, cfg.AuthBackend)
	require.Equal(t, "http://auth.local", cfg.ServerEndpointURL)
}
