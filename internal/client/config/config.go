package config

import "time"

// Config holds runtime settings for the nxtcli client.
//
// Fields:
//   - ServiceBaseURL: base URL of the NXT account service.
//   - RequestTimeout: end-to-end bound for a single API request.
//   - DeleteLogoutDelay: pause between a confirmed account deletion and the
//     forced local logout.
//   - DatabasePath: path of the local SQLite file holding the session token.
type Config struct {
	ServiceBaseURL    string
	RequestTimeout    time.Duration
	DeleteLogoutDelay time.Duration
	DatabasePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServiceBaseURL = "https://nxt-backend.onrender.com"
	c.RequestTimeout = 15 * time.Second
	c.DeleteLogoutDelay = 2 * time.Second
	c.DatabasePath = "nxtcli.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
