package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL of the Nutri Guide backend
//	-d local database file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-poll-interval notification poll interval (e.g., "1m", "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiBaseURL string
	var databaseDSN string
	var requestTimeout time.Duration
	var pollInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiBaseURL, "a", "", "API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Notification poll interval (e.g., 1m, 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			PollInterval: pollInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
