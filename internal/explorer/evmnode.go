package explorer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// EVMNode counts the transactions an address has sent on any EVM chain,
// using the account nonce reported by a JSON-RPC node.
type EVMNode struct {
	name       string
	client     *ethclient.Client
	timeout    time.Duration
	maxRetries uint64
}

// NewEVMNode connects to the JSON-RPC endpoint at rawURL. name labels the
// chain in output.
func NewEVMNode(ctx context.Context, name, rawURL string) (*EVMNode, error) {
	if _, err := rpcclient.ParseBaseURL(rawURL); err != nil {
		return nil, fmt.Errorf("evm node %s: %w", name, err)
	}
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("evm node %s: dial: %w", name, err)
	}
	return &EVMNode{name: name, client: client, timeout: 10 * time.Second, maxRetries: 3}, nil
}

// TransactionCount returns the nonce of address at the latest block.
func (n *EVMNode) TransactionCount(ctx context.Context, address string) (int, error) {
	if !common.IsHexAddress(address) {
		return 0, fmt.Errorf("evm node %s: invalid address %q", n.name, address)
	}
	account := common.HexToAddress(address)

	var nonce uint64
	op := func() error {
		callCtx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()
		var err error
		nonce, err = n.client.NonceAt(callCtx, account, nil)
		if err != nil && !retryableRPC(err) {
			return backoff.Permanent(err)
		}
		if err != nil {
			log.Explorer.Debug().Err(err).Str("node", n.name).Msg("Nonce request failed, retrying")
		}
		return err
	}
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), n.maxRetries), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return 0, fmt.Errorf("evm node %s: nonce of %s: %w", n.name, address, err)
	}
	return int(nonce), nil
}

func retryableRPC(err error) bool {
	var httpErr rpc.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= 500
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// Name returns the chain label given at construction.
func (n *EVMNode) Name() string { return n.name }

// Close closes the node connection.
func (n *EVMNode) Close() {
	n.client.Close()
}
