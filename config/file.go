package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadFile loads configuration values from a .conf file. A missing file
// yields no values.
// Format: key = value (one per line, # for comments)
func LoadFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string]string), nil
		}
		return nil, err
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("line %d: invalid format (expected key = value)", lineNum)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		// Remove quotes if present
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		values[key] = value
	}

	return values, scanner.Err()
}

// ApplyFileConfig applies file values to cfg.
func ApplyFileConfig(cfg *Config, values map[string]string) error {
	for key, value := range values {
		if err := setConfigValue(cfg, key, value); err != nil {
			return fmt.Errorf("config key %q: %w", key, err)
		}
	}
	return nil
}

// setConfigValue sets one config value by key. Unknown keys are ignored.
func setConfigValue(cfg *Config, key, value string) error {
	switch key {
	case "datadir":
		cfg.DataDir = value

	// Explorers
	case "explorer.blockstream":
		cfg.Explorer.BlockstreamURL = value
	case "explorer.etherscan":
		cfg.Explorer.EtherscanURL = value
	case "explorer.etherscan_apikey":
		cfg.Explorer.EtherscanAPIKey = value
	case "explorer.cosmos":
		cfg.Explorer.CosmosURL = value
	case "explorer.evm_rpc":
		cfg.Explorer.EVMNodes = parseStringList(value)
	case "explorer.timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		cfg.Explorer.Timeout = d
	case "explorer.retries":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Explorer.Retries = n
	case "explorer.concurrency":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		cfg.Explorer.Concurrency = n

	// History
	case "history.enabled", "history":
		cfg.History.Enabled = parseBool(value)

	// Logging
	case "log.level":
		cfg.Log.Level = value
	case "log.file":
		cfg.Log.File = value
	case "log.json":
		cfg.Log.JSON = parseBool(value)
	}
	return nil
}

// parseBool parses a boolean value.
func parseBool(s string) bool {
	s = strings.ToLower(s)
	return s == "true" || s == "1" || s == "yes" || s == "on"
}

// parseStringList parses a comma-separated list.
func parseStringList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// WriteDefaultConfig writes a commented default configuration file.
func WriteDefaultConfig(path string) error {
	d := Default()
	content := `# walletscan configuration
#
# Mnemonics and passphrases are never read from or written to this file.

# Data directory (default: ~/.walletscan)
# datadir = ~/.walletscan

# ============================================================================
# Explorers
# ============================================================================

explorer.blockstream = ` + d.Explorer.BlockstreamURL + `
explorer.etherscan = ` + d.Explorer.EtherscanURL + `
# explorer.etherscan_apikey =
explorer.cosmos = ` + d.Explorer.CosmosURL + `

# Extra EVM chains queried through a JSON-RPC node (comma-separated coin=url)
# explorer.evm_rpc = polygon=https://polygon-rpc.com,smartchain=https://bsc-dataseed.binance.org

explorer.timeout = ` + d.Explorer.Timeout.String() + `
explorer.retries = ` + strconv.Itoa(d.Explorer.Retries) + `
explorer.concurrency = ` + strconv.Itoa(d.Explorer.Concurrency) + `

# ============================================================================
# Scan history (addresses and transaction counts only)
# ============================================================================

history.enabled = true

# ============================================================================
# Logging
# ============================================================================

log.level = ` + d.Log.Level + `
# log.file =
log.json = false
`
	return os.WriteFile(path, []byte(content), 0644)
}
