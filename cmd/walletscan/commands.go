package main

import (
	"fmt"
	"io"

	"github.com/skip2/go-qrcode"

	"github.com/Klingon-tech/walletscan/config"
	"github.com/Klingon-tech/walletscan/internal/activity"
	"github.com/Klingon-tech/walletscan/internal/scanlog"
	"github.com/Klingon-tech/walletscan/internal/storage"
	"github.com/Klingon-tech/walletscan/internal/wallet"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

func cmdCoins(stdout io.Writer) int {
	fmt.Fprintf(stdout, "%-10s %-22s %-8s %-10s %s\n", "TAG", "NAME", "SYMBOL", "CURVE", "PATH")
	for c := range coin.All() {
		path := "-"
		if scheme, ok := wallet.SchemeFor(c); ok {
			path = scheme.Path
		}
		fmt.Fprintf(stdout, "%-10d %-22s %-8s %-10s %s\n", uint32(c), c.Name(), c.Symbol(), c.Curve(), path)
	}
	return exitOK
}

func openHistory(cfg *config.Config) (*scanlog.Store, func() error, error) {
	db, err := storage.NewBadger(cfg.HistoryDir())
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}
	return scanlog.New(db), db.Close, nil
}

// recordScan stores results and returns the transaction counts of the
// previous successful scan of each coin.
func recordScan(cfg *config.Config, fingerprint string, results []activity.Result) (map[coin.Type]int, error) {
	store, closeDB, err := openHistory(cfg)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	previous := make(map[coin.Type]int)
	for _, r := range results {
		last, ok, err := store.Latest(fingerprint, r.Coin)
		if err != nil {
			return previous, err
		}
		if ok && last.Error == "" {
			previous[r.Coin] = last.TxCount
		}

		rec := scanlog.Record{
			Fingerprint: fingerprint,
			Coin:        r.Coin,
			Address:     r.Address,
			TxCount:     r.TxCount,
		}
		if r.Err != nil {
			rec.Error = r.Err.Error()
		}
		if err := store.Record(rec); err != nil {
			return previous, err
		}
	}
	return previous, nil
}

func cmdHistory(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	forget := len(args) == 2 && args[0] == "forget"
	if len(args) > 1 && !forget {
		fmt.Fprintln(stderr, "Usage: walletscan history [fingerprint] | history forget <fingerprint>")
		return exitFailure
	}
	store, closeDB, err := openHistory(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	defer closeDB()

	if forget {
		n, err := store.Forget(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		fmt.Fprintf(stdout, "Forgot %d records of %s.\n", n, args[1])
		return exitOK
	}

	if len(args) == 0 {
		fps, err := store.Fingerprints()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailure
		}
		if len(fps) == 0 {
			fmt.Fprintln(stdout, "No scans recorded.")
		}
		for _, fp := range fps {
			fmt.Fprintln(stdout, fp)
		}
		return exitOK
	}

	records, err := store.List(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}
	if len(records) == 0 {
		fmt.Fprintf(stdout, "No scans recorded for %s.\n", args[0])
		return exitOK
	}
	for _, r := range records {
		status := fmt.Sprintf("%d transactions", r.TxCount)
		if r.Error != "" {
			status = "error: " + r.Error
		}
		fmt.Fprintf(stdout, "%-6s %-45s %s  (%s)\n",
			r.Coin.Symbol(), r.Address, status, r.CheckedAt.Format("2006-01-02 15:04:05"))
	}
	return exitOK
}

func cmdQR(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintln(stderr, "Usage: walletscan qr <coin> <mnemonic words... | hex-entropy>")
		return exitFailure
	}
	c, err := coin.Parse(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	w, code := openWallet(cfg, args[1:], stderr)
	if w == nil {
		return code
	}
	defer w.Close()

	addr := w.DeriveDefaultAddress(c)
	qr, err := qrcode.New(addr, qrcode.Medium)
	if err != nil {
		fmt.Fprintf(stderr, "Error: encode QR: %v\n", err)
		return exitFailure
	}
	fmt.Fprintf(stdout, "%s (%s)\n", addr, c.Name())
	fmt.Fprint(stdout, qr.ToSmallString(false))
	return exitOK
}
