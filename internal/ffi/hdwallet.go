package ffi

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/internal/native"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// HDWallet is an owned foreign HD wallet. It is not safe for concurrent use
// unless the linked wallet core says otherwise.
type HDWallet struct {
	owned[native.HDWallet]
}

// NewHDWalletWithMnemonic creates a wallet from a BIP-39 mnemonic, checking
// its word list and checksum. A rejected mnemonic returns ErrInvalidMnemonic
// and no wallet.
func NewHDWalletWithMnemonic(mnemonic, passphrase string) (*HDWallet, error) {
	if strings.IndexByte(mnemonic, 0) >= 0 {
		return nil, fmt.Errorf("%w: mnemonic contains NUL", ErrInvalidMnemonic)
	}
	if strings.IndexByte(passphrase, 0) >= 0 {
		return nil, fmt.Errorf("%w: passphrase contains NUL", ErrInvalidMnemonic)
	}

	m := NewString(mnemonic)
	defer m.Close()
	p := NewString(passphrase)
	defer p.Close()

	h := native.HDWalletCreateWithMnemonicCheck(m.Raw(), p.Raw(), true)
	if h == 0 {
		return nil, ErrInvalidMnemonic
	}
	log.FFI.Debug().Msg("Wallet created from mnemonic")
	return newHDWallet(h), nil
}

// NewHDWalletWithEntropy creates a wallet from raw BIP-39 entropy. Entropy
// rejected by the wallet core returns ErrInvalidEntropy and no wallet.
func NewHDWalletWithEntropy(entropy []byte, passphrase string) (*HDWallet, error) {
	if strings.IndexByte(passphrase, 0) >= 0 {
		return nil, fmt.Errorf("%w: passphrase contains NUL", ErrInvalidEntropy)
	}

	e := NewData(entropy)
	defer e.Close()
	p := NewString(passphrase)
	defer p.Close()

	h := native.HDWalletCreateWithEntropy(e.Raw(), p.Raw())
	if h == 0 {
		return nil, ErrInvalidEntropy
	}
	log.FFI.Debug().Int("entropy_bytes", len(entropy)).Msg("Wallet created from entropy")
	return newHDWallet(h), nil
}

func newHDWallet(h native.HDWallet) *HDWallet {
	w := &HDWallet{owned: owned[native.HDWallet]{h: h, kind: "ffi.HDWallet"}}
	runtime.SetFinalizer(w, func(w *HDWallet) { w.finalized(native.HDWalletDelete) })
	return w
}

// DeriveDefaultAddress returns the default receiving address of c. c must be
// a registered coin; any other value panics before reaching the wallet core.
func (w *HDWallet) DeriveDefaultAddress(c coin.Type) string {
	if !coin.Known(c) {
		panic(fmt.Sprintf("ffi.HDWallet: unknown coin %v", c))
	}
	h := native.HDWalletGetAddressForCoin(w.get(), uint32(c))
	runtime.KeepAlive(w)

	s := AdoptString(h)
	defer s.Close()
	addr, err := s.ToGoString()
	if err != nil {
		panic(fmt.Sprintf("ffi.HDWallet: address of %v: %v", c, err))
	}
	return addr
}

// Close releases the wallet. It is safe to call more than once.
func (w *HDWallet) Close() error {
	if w.release(native.HDWalletDelete) {
		runtime.SetFinalizer(w, nil)
	}
	return nil
}
