package config

import (
	"time"

	"github.com/Klingon-tech/walletscan/internal/explorer"
)

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: DefaultDataDir(),
		Explorer: ExplorerConfig{
			BlockstreamURL: explorer.DefaultBlockstreamURL,
			EtherscanURL:   explorer.DefaultEtherscanURL,
			CosmosURL:      explorer.DefaultCosmosURL,
			Timeout:        10 * time.Second,
			Retries:        3,
			Concurrency:    4,
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Log: LogConfig{
			// stdout carries the report; keep stderr quiet by default.
			Level: "warn",
			JSON:  false,
		},
	}
}
