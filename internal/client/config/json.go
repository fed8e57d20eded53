package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/nxtlabs/nxtcli/internal/flagx"
	"github.com/nxtlabs/nxtcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "2s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServiceBaseURL    string         `json:"service_base_url"`
	RequestTimeout    timex.Duration `json:"request_timeout"`
	DeleteLogoutDelay timex.Duration `json:"delete_logout_delay"`
	DatabasePath      string         `json:"database_path"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// with neither flag present no JSON is loaded. Read or unmarshal errors
// panic (caller should recover if desired). Intended usage is:
// defaults -> parseJson -> parseFlags, where later stages override earlier
// ones.
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

	if jc.ServiceBaseURL != "" {
		cfg.ServiceBaseURL = jc.ServiceBaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.DeleteLogoutDelay.Duration != 0 {
		cfg.DeleteLogoutDelay = time.Duration(jc.DeleteLogoutDelay.Duration)
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
