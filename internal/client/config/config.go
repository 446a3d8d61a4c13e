// Package config loads runtime settings for the Tafuta client.
// Sources are layered: defaults, then a JSON file (-c/-config), then flags.
// Later sources take precedence.
package config

import "time"

// Backend selectors. Chosen once at startup; business logic never sniffs
// the environment.
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
	StorageMemory = "memory"

	AuthMock = "mock"
	AuthHTTP = "http"
)

// Config holds runtime settings for the Tafuta client.
//
// Fields:
//   - StorageBackend: which token store to use (sqlite|file|memory).
//   - StoragePath: sqlite DSN or directory for the file store.
//   - AuthBackend: mock (in-process) or http (real endpoint).
//   - ServerEndpointURL: base URL of the HTTP auth backend.
//   - AuthDelay/LogoutDelay: simulated latency of the mock backend.
type Config struct {
	StorageBackend    string
	StoragePath       string
	AuthBackend       string
	ServerEndpointURL string
	AuthDelay         time.Duration
	LogoutDelay       time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = StorageSQLite
	c.StoragePath = "tafuta.db"
	c.AuthBackend = AuthMock
	c.ServerEndpointURL = "http://127.0.0.1:8080"
	c.AuthDelay = 1500 * time.Millisecond
	c.LogoutDelay = 500 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
