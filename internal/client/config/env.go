package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvServerURL      = "SKILLSWAP_SERVER_URL"
	EnvRequestTimeout = "SKILLSWAP_REQUEST_TIMEOUT"
	EnvLogLevel       = "SKILLSWAP_LOG_LEVEL"
	EnvLogFormat      = "SKILLSWAP_LOG_FORMAT"
)

var envKeys = []string{EnvServerURL, EnvRequestTimeout, EnvLogLevel, EnvLogFormat}

// parseEnv overlays Config with values from envFile (dotenv syntax) and the
// process environment. Non-empty process variables win over the file.
// A missing envFile is ignored; a malformed one, or a bad timeout, panics.
func parseEnv(cfg *Config, envFile string) {
	values := map[string]string{}

	if envFile != "" {
		fileValues, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			panic(err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok && v != "" {
			values[k] = v
		}
	}

	if v, ok := values[EnvServerURL]; ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := values[EnvRequestTimeout]; ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := values[EnvLogLevel]; ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := values[EnvLogFormat]; ok && v != "" {
		cfg.LogFormat = v
	}
}
