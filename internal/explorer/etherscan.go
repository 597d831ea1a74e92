package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// ErrEtherscan is wrapped by errors reported in an Etherscan response body.
var ErrEtherscan = errors.New("etherscan error")

// Etherscan counts Ethereum transactions through the Etherscan account API.
type Etherscan struct {
	client *rpcclient.Client
	apiKey string
}

// NewEtherscan creates a counter for the Etherscan-compatible API at baseURL.
func NewEtherscan(baseURL, apiKey string, opts ...Option) (*Etherscan, error) {
	c, err := rpcclient.New(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("etherscan: %w", err)
	}
	return &Etherscan{client: c, apiKey: apiKey}, nil
}

type etherscanResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// noTransactions is the message of the status "0" reply for an unused address.
const noTransactions = "No transactions found"

// TransactionCount returns the number of normal transactions of address.
func (e *Etherscan) TransactionCount(ctx context.Context, address string) (int, error) {
	q := url.Values{
		"module":  {"account"},
		"action":  {"txlist"},
		"apikey":  {e.apiKey},
		"address": {address},
	}
	var resp etherscanResponse
	if err := e.client.GetJSON(ctx, "/api", q, &resp); err != nil {
		return 0, fmt.Errorf("etherscan txlist %s: %w", address, err)
	}
	if resp.Status != "1" && resp.Message != noTransactions {
		// On failure the result field holds a message string.
		var detail string
		if json.Unmarshal(resp.Result, &detail) != nil {
			detail = string(resp.Result)
		}
		return 0, fmt.Errorf("%w: %s: %s", ErrEtherscan, resp.Message, detail)
	}

	var txs []json.RawMessage
	if err := json.Unmarshal(resp.Result, &txs); err != nil {
		return 0, fmt.Errorf("etherscan txlist %s: decode result: %w", address, err)
	}
	return len(txs), nil
}

// Name returns "etherscan".
func (e *Etherscan) Name() string { return "etherscan" }
