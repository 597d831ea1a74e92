// walletscan derives the default addresses of a BIP-39 wallet for every
// supported coin and reports on-chain activity for a few of them.
//
// Usage:
//
//	walletscan [flags] <word1 word2 ... wordN>   Scan a mnemonic
//	walletscan [flags] <hex-entropy>             Scan mnemonic entropy
//	walletscan [flags] coins|history|qr          Other commands
//	walletscan --help                            Show help
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Klingon-tech/walletscan/config"
	"github.com/Klingon-tech/walletscan/internal/log"
)

var version = "dev"

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, flags, err := config.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			fmt.Fprint(stdout, config.Usage)
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		fmt.Fprint(stderr, config.Usage)
		return exitFailure
	}
	if flags.Version {
		fmt.Fprintf(stdout, "walletscan %s\n", version)
		return exitOK
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fmt.Fprintf(stderr, "Error: init logging: %v\n", err)
		return exitFailure
	}

	if len(flags.Args) == 0 {
		fmt.Fprintln(stderr, errEmptyInput)
		fmt.Fprint(stderr, config.Usage)
		return exitFailure
	}

	cmdArgs := flags.Args[1:]
	switch flags.Args[0] {
	case "coins":
		return cmdCoins(stdout)
	case "history":
		return cmdHistory(cfg, cmdArgs, stdout, stderr)
	case "qr":
		return cmdQR(cfg, cmdArgs, stdout, stderr)
	default:
		return cmdScan(ctx, cfg, flags.Args, stdout, stderr)
	}
}
