package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - APIBaseURL: base endpoint of the backend API, e.g. "http://localhost:5000/api".
//     When empty the client runs in local-fallback mode against the seeded
//     on-disk credential registry instead of the remote service.
//   - SessionDBPath: path of the local session database file.
//   - RequestTimeout: per-request timeout for backend calls.
//   - OnlineCheckInterval: how often the client checks backend reachability.
type Config struct {
	APIBaseURL          string
	SessionDBPath       string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = ""
	c.SessionDBPath = "portal.db"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 15 * time.Second
}

// LocalFallback reports whether no remote endpoint is configured.
func (c *Config) LocalFallback() bool {
	return c.APIBaseURL == ""
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
