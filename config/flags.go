package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"
)

// ErrHelp is returned by ParseFlags when -h or --help is given. Neither is
// registered, so the flag package reports them itself.
var ErrHelp = flag.ErrHelp

// Flags holds parsed command-line flags.
type Flags struct {
	// Commands
	Version bool

	// Core
	DataDir string
	Config  string

	// Input
	PassphrasePrompt bool

	// Explorers
	Offline         bool
	BlockstreamURL  string
	EtherscanURL    string
	EtherscanAPIKey string
	CosmosURL       string
	EVMRPC          string
	Timeout         time.Duration

	// History
	NoHistory bool

	// Logging
	LogLevel string
	LogFile  string
	LogJSON  bool

	// Remaining args
	Args []string

	// Explicitly-set bool flags (for true/false overrides).
	SetLogJSON bool
}

// ParseFlags parses command-line flags from args (without the program name).
func ParseFlags(args []string) (*Flags, error) {
	f := &Flags{}
	fs := flag.NewFlagSet("walletscan", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Commands
	fs.BoolVar(&f.Version, "version", false, "Show version information")
	fs.BoolVar(&f.Version, "v", false, "Show version (shorthand)")

	// Core
	fs.StringVar(&f.DataDir, "datadir", "", "Data directory path")
	fs.StringVar(&f.Config, "config", "", "Config file path")
	fs.StringVar(&f.Config, "c", "", "Config file path (shorthand)")

	// Input
	fs.BoolVar(&f.PassphrasePrompt, "passphrase-prompt", false, "Read a BIP-39 passphrase from the terminal")

	// Explorers
	fs.BoolVar(&f.Offline, "offline", false, "Skip the activity report")
	fs.StringVar(&f.BlockstreamURL, "blockstream-url", "", "Esplora API base URL")
	fs.StringVar(&f.EtherscanURL, "etherscan-url", "", "Etherscan API base URL")
	fs.StringVar(&f.EtherscanAPIKey, "etherscan-apikey", "", "Etherscan API key")
	fs.StringVar(&f.CosmosURL, "cosmos-url", "", "Cosmos LCD base URL")
	fs.StringVar(&f.EVMRPC, "evm-rpc", "", "Extra EVM nodes as comma-separated coin=url pairs")
	fs.DurationVar(&f.Timeout, "timeout", 0, "Per-request explorer timeout")

	// History
	fs.BoolVar(&f.NoHistory, "no-history", false, "Do not record this scan")

	// Logging
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&f.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&f.LogJSON, "log-json", false, "Output logs as JSON")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, ErrHelp
		}
		return nil, err
	}
	f.SetLogJSON = isFlagSet(fs, "log-json")
	f.Args = fs.Args()

	// A flag after the first positional argument is never parsed.
	for _, arg := range f.Args {
		if strings.HasPrefix(arg, "-") {
			return nil, fmt.Errorf("flag %q was not parsed (flags must come before the mnemonic or command)", arg)
		}
	}

	return f, nil
}

// ApplyFlags applies command-line flags to a Config struct.
func ApplyFlags(cfg *Config, f *Flags) {
	if f.DataDir != "" {
		cfg.DataDir = f.DataDir
	}

	cfg.PassphrasePrompt = f.PassphrasePrompt
	cfg.Offline = f.Offline

	// Explorers
	if f.BlockstreamURL != "" {
		cfg.Explorer.BlockstreamURL = f.BlockstreamURL
	}
	if f.EtherscanURL != "" {
		cfg.Explorer.EtherscanURL = f.EtherscanURL
	}
	if f.EtherscanAPIKey != "" {
		cfg.Explorer.EtherscanAPIKey = f.EtherscanAPIKey
	}
	if f.CosmosURL != "" {
		cfg.Explorer.CosmosURL = f.CosmosURL
	}
	if f.EVMRPC != "" {
		cfg.Explorer.EVMNodes = parseStringList(f.EVMRPC)
	}
	if f.Timeout != 0 {
		cfg.Explorer.Timeout = f.Timeout
	}

	// History
	if f.NoHistory {
		cfg.History.Enabled = false
	}

	// Logging
	if f.LogLevel != "" {
		cfg.Log.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.SetLogJSON {
		cfg.Log.JSON = f.LogJSON
	}
}

// isFlagSet checks if a flag was explicitly set.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Usage is the command-line help text.
const Usage = `walletscan - derive HD wallet addresses for many coins and report their activity

Usage:
  walletscan [options] <word1 word2 ... wordN>   Scan a BIP-39 mnemonic
  walletscan [options] <hex-entropy>             Scan mnemonic entropy (16-32 bytes, optional 0x)
  walletscan [options] coins                     List supported coins
  walletscan [options] history [fingerprint]     Show recorded scans
  walletscan [options] history forget <fp>       Delete a wallet's recorded scans
  walletscan [options] qr <coin> <input...>      Print a coin's address as a QR code

Options:
  --help, -h            Show this help message
  --version, -v         Show version information
  --datadir             Data directory (default: ~/.walletscan)
  --config, -c          Config file path (default: <datadir>/walletscan.conf)
  --passphrase-prompt   Read a BIP-39 passphrase without echo
  --offline             Skip the activity report
  --blockstream-url     Esplora API base URL
  --etherscan-url       Etherscan API base URL
  --etherscan-apikey    Etherscan API key (or ETHERSCAN_APIKEY)
  --cosmos-url          Cosmos LCD base URL
  --evm-rpc             Extra EVM nodes, e.g. polygon=https://polygon-rpc.com
  --timeout             Per-request explorer timeout (default: 10s)
  --no-history          Do not record this scan
  --log-level           Log level: debug, info, warn, error (default: warn)
  --log-file            Log file path (default: stderr)
  --log-json            Output logs as JSON

Flags must come before the mnemonic or command.
`

// Load loads configuration with the following precedence:
// 1. Default values
// 2. Config file (created with defaults on first run)
// 3. Environment
// 4. Command-line flags
func Load(args []string) (*Config, *Flags, error) {
	flags, err := ParseFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := Default()
	env, err := LoadEnv()
	if err != nil {
		return nil, nil, err
	}

	// The data directory decides where the config file lives.
	if env.DataDir != "" {
		cfg.DataDir = env.DataDir
	}
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if err := EnsureDataDirs(cfg); err != nil {
		return nil, nil, fmt.Errorf("ensuring data dirs: %w", err)
	}

	configPath := flags.Config
	if configPath == "" {
		configPath = cfg.ConfigFile()
	}
	fileValues, err := LoadFile(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config file: %w", err)
	}
	if err := ApplyFileConfig(cfg, fileValues); err != nil {
		return nil, nil, fmt.Errorf("applying config file: %w", err)
	}

	ApplyEnv(cfg, env)
	ApplyFlags(cfg, flags)
	if err := Validate(cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, flags, nil
}
