package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/tafuta/internal/flagx"
	"github.com/dmitrijs2005/tafuta/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Durations can
// be given as strings like "1.5s" or as integer nanoseconds (timex.Duration).
type JsonConfig struct {
	StorageBackend    string          `json:"storage_backend"`
	StoragePath       string          `json:"storage_path"`
	AuthBackend       string          `json:"auth_backend"`
	ServerEndpointURL string          `json:"server_endpoint_url"`
	AuthDelay         *timex.Duration `json:"auth_delay"`
	LogoutDelay       *timex.Duration `json:"logout_delay"`
}

// parseJson overlays Config with values loaded from a JSON file located via
// the -c/-config flags. Absent file path means no JSON overlay. Read or
// unmarshal errors panic (caller should recover if desired). Only fields
// present in the JSON override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageBackend != "" {
		cfg.StorageBackend = jc.StorageBackend
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.AuthBackend != "" {
		cfg.AuthBackend = jc.AuthBackend
	}
	if jc.ServerEndpointURL != "" {
		cfg.ServerEndpointURL = jc.ServerEndpointURL
	}
	if jc.AuthDelay != nil {
		cfg.AuthDelay = jc.AuthDelay.Duration
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
}
