// Package config loads runtime configuration for the SkillSwap CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: a .env file in the working directory, then the process
//     environment (SKILLSWAP_SERVER_URL, SKILLSWAP_REQUEST_TIMEOUT,
//     SKILLSWAP_LOG_LEVEL, SKILLSWAP_LOG_FORMAT).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8080/api",
//	  "request_timeout": "15s",
//	  "log_level": "debug",
//	  "log_format": "json"
//	}
//
// Invalid values panic; the CLI cannot start with a half-read configuration.
package config
