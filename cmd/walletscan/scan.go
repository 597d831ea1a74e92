package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/Klingon-tech/walletscan/config"
	"github.com/Klingon-tech/walletscan/internal/activity"
	"github.com/Klingon-tech/walletscan/internal/explorer"
	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/pkg/coin"
	"github.com/Klingon-tech/walletscan/pkg/hdwallet"
)

// openWallet builds the wallet from the positional arguments. On failure it
// reports to stderr and returns the exit code to use.
func openWallet(cfg *config.Config, args []string, stderr io.Writer) (*hdwallet.Wallet, int) {
	in, err := parseInput(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return nil, exitFailure
	}

	passphrase := ""
	if cfg.PassphrasePrompt {
		passphrase, err = readPassphrase()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return nil, exitFailure
		}
	}

	w, err := in.open(passphrase)
	if err != nil {
		if isInvalidInput(err) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return nil, exitInvalidInput
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return nil, exitFailure
	}
	return w, exitOK
}

func cmdScan(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	w, code := openWallet(cfg, args, stderr)
	if w == nil {
		return code
	}
	defer w.Close()

	fingerprint := w.Fingerprint()
	fmt.Fprintf(stdout, "Wallet: %s\n", fingerprint)

	if !cfg.Offline {
		targets, closeTargets, err := buildTargets(ctx, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		scanner := &activity.Scanner{Limit: cfg.Explorer.Concurrency}
		results := scanner.Scan(ctx, w, targets)
		closeTargets()

		var previous map[coin.Type]int
		if cfg.History.Enabled {
			previous, err = recordScan(cfg, fingerprint, results)
			if err != nil {
				log.CLI.Warn().Err(err).Msg("Failed to record scan history")
			}
		}
		printActivity(stdout, stderr, results, previous)
	}

	// Many coins share an address; print each once, sorted.
	addresses := slices.Compact(slices.Sorted(w.DeriveDefaultAddresses(coin.All())))
	fmt.Fprintln(stdout, "\nAll addresses:")
	for _, addr := range addresses {
		fmt.Fprintf(stdout, "  %s\n", addr)
	}
	return exitOK
}

// buildTargets returns the activity lookups enabled by cfg and a function
// releasing their connections.
func buildTargets(ctx context.Context, cfg *config.Config) ([]activity.Target, func(), error) {
	opts := []explorer.Option{
		explorer.WithTimeout(cfg.Explorer.Timeout),
		explorer.WithMaxRetries(uint64(cfg.Explorer.Retries)),
	}

	var targets []activity.Target
	var nodes []*explorer.EVMNode
	closeAll := func() {
		for _, n := range nodes {
			n.Close()
		}
	}

	blockstream, err := explorer.NewBlockstream(cfg.Explorer.BlockstreamURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	targets = append(targets, activity.Target{Coin: coin.Bitcoin, Counter: blockstream})

	if cfg.Explorer.EtherscanAPIKey != "" {
		etherscan, err := explorer.NewEtherscan(cfg.Explorer.EtherscanURL, cfg.Explorer.EtherscanAPIKey, opts...)
		if err != nil {
			return nil, nil, err
		}
		targets = append(targets, activity.Target{Coin: coin.Ethereum, Counter: etherscan})
	} else {
		log.CLI.Info().Msg("No Etherscan API key set, skipping ETH activity")
	}

	cosmos, err := explorer.NewCosmos(cfg.Explorer.CosmosURL, opts...)
	if err != nil {
		return nil, nil, err
	}
	targets = append(targets, activity.Target{Coin: coin.Cosmos, Counter: cosmos})

	endpoints, err := cfg.EVMEndpoints()
	if err != nil {
		return nil, nil, err
	}
	for _, ep := range endpoints {
		node, err := explorer.NewEVMNode(ctx, ep.Coin.Name(), ep.URL)
		if err != nil {
			closeAll()
			return nil, nil, err
		}
		nodes = append(nodes, node)
		targets = append(targets, activity.Target{Coin: ep.Coin, Counter: node})
	}
	return targets, closeAll, nil
}

// printActivity writes one line per successful lookup. previous holds the
// counts of the last recorded scan and may be nil.
func printActivity(stdout, stderr io.Writer, results []activity.Result, previous map[coin.Type]int) {
	fmt.Fprintln(stdout, "Activity:")
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(stderr, "Error on getting %s activity from %s: %v\n", r.Coin.Symbol(), r.Backend, r.Err)
			continue
		}
		fmt.Fprintf(stdout, "%d transactions on %s (%s)", r.TxCount, r.Address, r.Coin.Symbol())
		if was, ok := previous[r.Coin]; ok && was != r.TxCount {
			fmt.Fprintf(stdout, ", was %d", was)
		}
		fmt.Fprintln(stdout)
	}
}
