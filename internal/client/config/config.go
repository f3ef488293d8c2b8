package config

import "time"

// Config holds runtime settings for the SkillSwap CLI.
//
// Fields:
//   - ServerBaseURL: root of the backend REST API, e.g. http://localhost:8080/api.
//   - RequestTimeout: per-request timeout; zero disables it.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: text or json.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// DefaultEnvFile is read, when present, before the process environment.
const DefaultEnvFile = ".env"

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including DefaultEnvFile), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, DefaultEnvFile)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
