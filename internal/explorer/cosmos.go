package explorer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// Cosmos counts transactions through the Cosmos SDK REST gateway. A
// transaction counts once even when the address both sent and received in
// it.
type Cosmos struct {
	client *rpcclient.Client
}

// NewCosmos creates a counter for the LCD gateway at baseURL.
func NewCosmos(baseURL string, opts ...Option) (*Cosmos, error) {
	c, err := rpcclient.New(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("cosmos: %w", err)
	}
	return &Cosmos{client: c}, nil
}

type txsResponse struct {
	TxResponses []struct {
		TxHash string `json:"txhash"`
	} `json:"tx_responses"`
}

// TransactionCount returns the number of distinct transactions in which
// address spent or received coins.
func (c *Cosmos) TransactionCount(ctx context.Context, address string) (int, error) {
	seen := make(map[string]struct{})
	for _, event := range []string{
		fmt.Sprintf("coin_spent.spender='%s'", address),
		fmt.Sprintf("coin_received.receiver='%s'", address),
	} {
		hashes, err := c.txHashes(ctx, event)
		if err != nil {
			return 0, fmt.Errorf("cosmos txs %s: %w", address, err)
		}
		for _, h := range hashes {
			seen[h] = struct{}{}
		}
	}
	return len(seen), nil
}

func (c *Cosmos) txHashes(ctx context.Context, event string) ([]string, error) {
	q := url.Values{
		"events": {event},
		// 0 asks the gateway for every transaction.
		"pagination.limit": {"0"},
	}
	var resp txsResponse
	if err := c.client.GetJSON(ctx, "/cosmos/tx/v1beta1/txs", q, &resp); err != nil {
		return nil, err
	}
	hashes := make([]string, 0, len(resp.TxResponses))
	for _, tx := range resp.TxResponses {
		hashes = append(hashes, tx.TxHash)
	}
	return hashes, nil
}

// Name returns "cosmos".
func (c *Cosmos) Name() string { return "cosmos" }
