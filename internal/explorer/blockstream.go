package explorer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Klingon-tech/walletscan/internal/rpcclient"
)

// Blockstream counts Bitcoin transactions through the Esplora REST API.
type Blockstream struct {
	client *rpcclient.Client
}

// NewBlockstream creates a counter for the Esplora instance at baseURL.
func NewBlockstream(baseURL string, opts ...Option) (*Blockstream, error) {
	c, err := rpcclient.New(baseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("blockstream: %w", err)
	}
	return &Blockstream{client: c}, nil
}

// AddressInfo is the subset of GET /api/address/{addr} that is used.
type AddressInfo struct {
	Address    string `json:"address"`
	ChainStats struct {
		FundedTxoSum int64 `json:"funded_txo_sum"`
		SpentTxoSum  int64 `json:"spent_txo_sum"`
		TxCount      int   `json:"tx_count"`
	} `json:"chain_stats"`
}

// Balance returns the confirmed balance in satoshis.
func (a *AddressInfo) Balance() int64 {
	return a.ChainStats.FundedTxoSum - a.ChainStats.SpentTxoSum
}

// AddressInfo fetches the confirmed statistics of address.
func (b *Blockstream) AddressInfo(ctx context.Context, address string) (*AddressInfo, error) {
	var info AddressInfo
	if err := b.client.GetJSON(ctx, "/api/address/"+url.PathEscape(address), nil, &info); err != nil {
		return nil, fmt.Errorf("blockstream address %s: %w", address, err)
	}
	return &info, nil
}

// TransactionCount returns the number of confirmed transactions of address.
func (b *Blockstream) TransactionCount(ctx context.Context, address string) (int, error) {
	info, err := b.AddressInfo(ctx, address)
	if err != nil {
		return 0, err
	}
	return info.ChainStats.TxCount, nil
}

// Name returns "blockstream".
func (b *Blockstream) Name() string { return "blockstream" }
