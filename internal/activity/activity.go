// Package activity looks up on-chain activity for a wallet's addresses.
package activity

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Klingon-tech/walletscan/internal/explorer"
	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// Deriver derives default addresses. *hdwallet.Wallet implements it.
type Deriver interface {
	DeriveDefaultAddress(c coin.Type) string
}

// Target pairs a coin with the counter that reports its activity.
type Target struct {
	Coin    coin.Type
	Counter explorer.TxCounter
}

// Result is the outcome of one target.
type Result struct {
	Coin    coin.Type
	Backend string
	Address string
	TxCount int
	Err     error
	Elapsed time.Duration
}

// Scanner queries counters concurrently.
type Scanner struct {
	// Limit caps the number of concurrent lookups; 0 means no limit.
	Limit int
}

// Scan derives the address of every target, then queries the counters in
// parallel. A failed lookup is reported in its Result and does not stop the
// others. Results are in target order.
func (s *Scanner) Scan(ctx context.Context, w Deriver, targets []Target) []Result {
	results := make([]Result, len(targets))
	// Derivation stays on this goroutine: the wallet is not safe for
	// concurrent use.
	for i, t := range targets {
		results[i] = Result{
			Coin:    t.Coin,
			Backend: t.Counter.Name(),
			Address: w.DeriveDefaultAddress(t.Coin),
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.Limit > 0 {
		g.SetLimit(s.Limit)
	}
	for i, t := range targets {
		r := &results[i]
		g.Go(func() error {
			start := time.Now()
			r.TxCount, r.Err = t.Counter.TransactionCount(gctx, r.Address)
			r.Elapsed = time.Since(start)
			ev := log.Activity.Debug()
			if r.Err != nil {
				ev = log.Activity.Warn().Err(r.Err)
			}
			ev.Str("coin", r.Coin.Name()).
				Str("backend", r.Backend).
				Dur("elapsed", r.Elapsed).
				Msg("Activity lookup finished")
			return nil
		})
	}
	g.Wait()
	return results
}
