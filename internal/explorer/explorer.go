// Package explorer counts the transactions of an address on public block
// explorers and nodes. Counting happens strictly after derivation; a failed
// lookup never affects the derived addresses.
package explorer

import (
	"context"

	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// Default explorer endpoints.
const (
	DefaultBlockstreamURL = "https://blockstream.info"
	DefaultEtherscanURL   = "https://api.etherscan.io"
	DefaultCosmosURL      = "https://api.cosmos.network"
)

// TxCounter reports how many transactions an address has taken part in.
type TxCounter interface {
	TransactionCount(ctx context.Context, address string) (int, error)
	// Name identifies the backend in output and logs.
	Name() string
}

// StatusError is returned for a non-200 explorer response.
type StatusError = rpcclient.StatusError

// Option configures the HTTP client behind a counter.
type Option = rpcclient.Option

// Client options, re-exported for callers that build counters.
var (
	WithTimeout    = rpcclient.WithTimeout
	WithMaxRetries = rpcclient.WithMaxRetries
	WithBackOff    = rpcclient.WithBackOff
)
