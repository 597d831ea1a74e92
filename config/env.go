package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of every walletscan environment variable.
const envPrefix = "walletscan"

// Env holds configuration read from the environment, e.g.
// WALLETSCAN_DATA_DIR or WALLETSCAN_EVM_NODES. Empty fields are unset.
type Env struct {
	DataDir        string        `split_words:"true"`
	BlockstreamURL string        `split_words:"true"`
	EtherscanURL   string        `split_words:"true"`
	CosmosURL      string        `split_words:"true"`
	EVMNodes       []string      `split_words:"true"`
	Timeout        time.Duration `split_words:"true"`
	LogLevel       string        `split_words:"true"`
	LogFile        string        `split_words:"true"`
	LogJSON        string        `split_words:"true"`

	// Falls back to the unprefixed ETHERSCAN_APIKEY.
	EtherscanAPIKey string `envconfig:"ETHERSCAN_APIKEY"`
}

// LoadEnv reads the environment.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &env, nil
}

// ApplyEnv applies the set environment values to cfg.
func ApplyEnv(cfg *Config, env *Env) {
	if env.DataDir != "" {
		cfg.DataDir = env.DataDir
	}
	if env.BlockstreamURL != "" {
		cfg.Explorer.BlockstreamURL = env.BlockstreamURL
	}
	if env.EtherscanURL != "" {
		cfg.Explorer.EtherscanURL = env.EtherscanURL
	}
	if env.EtherscanAPIKey != "" {
		cfg.Explorer.EtherscanAPIKey = env.EtherscanAPIKey
	}
	if env.CosmosURL != "" {
		cfg.Explorer.CosmosURL = env.CosmosURL
	}
	if len(env.EVMNodes) > 0 {
		cfg.Explorer.EVMNodes = env.EVMNodes
	}
	if env.Timeout != 0 {
		cfg.Explorer.Timeout = env.Timeout
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
	if env.LogJSON != "" {
		cfg.Log.JSON = parseBool(env.LogJSON)
	}
}
