// Package config handles walletscan configuration.
//
// Settings are layered, later layers winning:
//   - Built-in defaults
//   - The key = value file <datadir>/walletscan.conf
//   - WALLETSCAN_* environment variables (and ETHERSCAN_APIKEY)
//   - Command-line flags
//
// Secrets that identify a wallet (mnemonics, passphrases) are never part of
// the configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// Config holds walletscan runtime settings.
type Config struct {
	DataDir string `conf:"datadir"`

	// Explorer endpoints used for the activity report.
	Explorer ExplorerConfig

	// Scan history
	History HistoryConfig

	// Logging
	Log LogConfig

	// Per-invocation switches (not persisted in the config file).
	PassphrasePrompt bool
	Offline          bool
}

// ExplorerConfig holds the activity lookup settings.
type ExplorerConfig struct {
	BlockstreamURL  string        `conf:"explorer.blockstream"`
	EtherscanURL    string        `conf:"explorer.etherscan"`
	EtherscanAPIKey string        `conf:"explorer.etherscan_apikey"`
	CosmosURL       string        `conf:"explorer.cosmos"`
	EVMNodes        []string      `conf:"explorer.evm_rpc"` // coin=url pairs
	Timeout         time.Duration `conf:"explorer.timeout"`
	Retries         int           `conf:"explorer.retries"`
	Concurrency     int           `conf:"explorer.concurrency"`
}

// HistoryConfig holds scan history settings.
type HistoryConfig struct {
	Enabled bool `conf:"history.enabled"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `conf:"log.level"`
	File  string `conf:"log.file"`
	JSON  bool   `conf:"log.json"`
}

// EVMEndpoint is a JSON-RPC node queried for one EVM coin.
type EVMEndpoint struct {
	Coin coin.Type
	URL  string
}

// EVMEndpoints parses Explorer.EVMNodes.
func (c *Config) EVMEndpoints() ([]EVMEndpoint, error) {
	out := make([]EVMEndpoint, 0, len(c.Explorer.EVMNodes))
	for i, entry := range c.Explorer.EVMNodes {
		name, rawURL, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, fmt.Errorf("explorer.evm_rpc[%d]: expected coin=url, got %q", i, entry)
		}
		ct, err := coin.Parse(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("explorer.evm_rpc[%d]: %w", i, err)
		}
		out = append(out, EVMEndpoint{Coin: ct, URL: strings.TrimSpace(rawURL)})
	}
	return out, nil
}

// =============================================================================
// Directory helpers
// =============================================================================

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.walletscan
//	macOS:   ~/Library/Application Support/Walletscan
//	Windows: %APPDATA%\Walletscan
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".walletscan"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Walletscan")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Walletscan")
		}
		return filepath.Join(home, "AppData", "Roaming", "Walletscan")
	default:
		return filepath.Join(home, ".walletscan")
	}
}

// HistoryDir returns the scan history database directory.
func (c *Config) HistoryDir() string {
	return filepath.Join(c.DataDir, "history")
}

// LogsDir returns the logs directory.
func (c *Config) LogsDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// ConfigFile returns the config file path.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "walletscan.conf")
}
