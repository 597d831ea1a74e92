// Package hdwallet derives default addresses for many coins from one BIP-39
// mnemonic or entropy. Input is validated before it reaches the wallet core.
//
// A Wallet is not safe for concurrent use: the wallet core it wraps makes no
// thread-safety promise for derivation.
package hdwallet

import (
	"encoding/hex"
	"fmt"
	"iter"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/Klingon-tech/walletscan/internal/ffi"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// Entropy length bounds in bytes, inclusive.
const (
	MinEntropyBytes = 16
	MaxEntropyBytes = 32
)

var (
	// ErrInvalidMnemonic is returned for a mnemonic that fails the BIP-39
	// word list or checksum test.
	ErrInvalidMnemonic = ffi.ErrInvalidMnemonic
	// ErrInvalidEntropy is returned for entropy that is not hex or has an
	// unsupported length.
	ErrInvalidEntropy = ffi.ErrInvalidEntropy
)

// Wallet is an HD wallet bound to the native wallet core.
type Wallet struct {
	inner *ffi.HDWallet
}

// WithMnemonic creates a wallet from a BIP-39 mnemonic and passphrase.
func WithMnemonic(mnemonic, passphrase string) (*Wallet, error) {
	inner, err := ffi.NewHDWalletWithMnemonic(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	return &Wallet{inner: inner}, nil
}

// WithEntropy creates a wallet from hex-encoded mnemonic entropy, optionally
// prefixed with "0x", and a passphrase. The entropy must decode to 16..32
// bytes.
func WithEntropy(entropyHex, passphrase string) (*Wallet, error) {
	entropy, err := hex.DecodeString(strings.TrimPrefix(entropyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntropy, err)
	}
	if len(entropy) < MinEntropyBytes || len(entropy) > MaxEntropyBytes {
		return nil, fmt.Errorf("%w: %d bytes, want %d to %d",
			ErrInvalidEntropy, len(entropy), MinEntropyBytes, MaxEntropyBytes)
	}
	inner, err := ffi.NewHDWalletWithEntropy(entropy, passphrase)
	if err != nil {
		return nil, err
	}
	return &Wallet{inner: inner}, nil
}

// DeriveDefaultAddress returns the default receiving address of c. c must be
// a registered coin.
func (w *Wallet) DeriveDefaultAddress(c coin.Type) string {
	return w.inner.DeriveDefaultAddress(c)
}

// DeriveDefaultAddresses returns a sequence yielding the default address of
// each coin in coins, in order. Addresses are derived as the sequence is
// consumed; ranging over it again derives them again.
func (w *Wallet) DeriveDefaultAddresses(coins iter.Seq[coin.Type]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for c := range coins {
			if !yield(w.inner.DeriveDefaultAddress(c)) {
				return
			}
		}
	}
}

// Fingerprint identifies the wallet without revealing key material: the hex
// of the first 8 bytes of BLAKE3 over its default Bitcoin address.
func (w *Wallet) Fingerprint() string {
	sum := blake3.Sum256([]byte(w.inner.DeriveDefaultAddress(coin.Bitcoin)))
	return hex.EncodeToString(sum[:8])
}

// Close releases the wallet. It is safe to call more than once.
func (w *Wallet) Close() error {
	return w.inner.Close()
}
