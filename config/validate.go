package config

import (
	"fmt"
	"os"

	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// Validate checks the configuration for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}

	for key, raw := range map[string]string{
		"explorer.blockstream": cfg.Explorer.BlockstreamURL,
		"explorer.etherscan":   cfg.Explorer.EtherscanURL,
		"explorer.cosmos":      cfg.Explorer.CosmosURL,
	} {
		if _, err := rpcclient.ParseBaseURL(raw); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	endpoints, err := cfg.EVMEndpoints()
	if err != nil {
		return err
	}
	for i, ep := range endpoints {
		if _, err := rpcclient.ParseBaseURL(ep.URL); err != nil {
			return fmt.Errorf("explorer.evm_rpc[%d]: %w", i, err)
		}
	}

	if cfg.Explorer.Timeout <= 0 {
		return fmt.Errorf("explorer.timeout must be positive")
	}
	if cfg.Explorer.Retries < 0 {
		return fmt.Errorf("explorer.retries must not be negative")
	}
	if cfg.Explorer.Concurrency < 0 {
		return fmt.Errorf("explorer.concurrency must not be negative")
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error", "disabled", "off":
	default:
		return fmt.Errorf("log.level %q is not a known level", cfg.Log.Level)
	}
	return nil
}

// EnsureDataDirs creates the data directory structure and a default config
// file if they don't already exist. It is safe to call on every start.
func EnsureDataDirs(cfg *Config) error {
	for _, dir := range []string{cfg.DataDir, cfg.LogsDir()} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	configPath := cfg.ConfigFile()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := WriteDefaultConfig(configPath); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}
	}
	return nil
}
