//go:build !walletcore

package native

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/Klingon-tech/walletscan/internal/log"
	"github.com/Klingon-tech/walletscan/internal/wallet"
	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// Counts is the number of outstanding handles of each kind.
type Counts struct {
	Data    int
	Strings int
	Wallets int
}

// Total returns the sum of all outstanding handles.
func (c Counts) Total() int { return c.Data + c.Strings + c.Wallets }

type engineWallet struct {
	master *wallet.HDKey
}

// arena owns every allocation made by the in-process engine.
type arena struct {
	mu      sync.Mutex
	next    uintptr
	data    map[Data][]byte
	strings map[String][]byte
	wallets map[HDWallet]*engineWallet
}

var core = &arena{
	data:    make(map[Data][]byte),
	strings: make(map[String][]byte),
	wallets: make(map[HDWallet]*engineWallet),
}

// alloc returns a fresh non-zero handle value. Caller holds mu.
func (a *arena) alloc() uintptr {
	a.next++
	return a.next
}

// Live reports the handles that have been allocated and not yet released.
func Live() Counts {
	core.mu.Lock()
	defer core.mu.Unlock()
	return Counts{Data: len(core.data), Strings: len(core.strings), Wallets: len(core.wallets)}
}

// DataCreateWithBytes copies b into a new foreign buffer.
func DataCreateWithBytes(b []byte) Data {
	core.mu.Lock()
	defer core.mu.Unlock()
	h := Data(core.alloc())
	core.data[h] = append([]byte{}, b...)
	return h
}

// DataSize returns the length of the buffer.
func DataSize(d Data) int {
	core.mu.Lock()
	defer core.mu.Unlock()
	return len(core.mustData(d))
}

// DataBytes returns a copy of the buffer contents.
func DataBytes(d Data) []byte {
	core.mu.Lock()
	defer core.mu.Unlock()
	return bytes.Clone(core.mustData(d))
}

// DataDelete releases the buffer. Releasing a handle twice panics.
func DataDelete(d Data) {
	core.mu.Lock()
	defer core.mu.Unlock()
	if _, ok := core.data[d]; !ok {
		panic(fmt.Sprintf("native: double free of data handle %#x", uintptr(d)))
	}
	delete(core.data, d)
}

func (a *arena) mustData(d Data) []byte {
	b, ok := a.data[d]
	if !ok {
		panic(fmt.Sprintf("native: invalid data handle %#x", uintptr(d)))
	}
	return b
}

// StringCreateWithUTF8Bytes copies a NUL-terminated byte string into a new
// foreign string. Bytes after the first NUL are ignored. The bytes are not
// validated as UTF-8.
func StringCreateWithUTF8Bytes(cstr []byte) String {
	if i := bytes.IndexByte(cstr, 0); i >= 0 {
		cstr = cstr[:i]
	}
	core.mu.Lock()
	defer core.mu.Unlock()
	h := String(core.alloc())
	core.strings[h] = append([]byte{}, cstr...)
	return h
}

// StringUTF8Bytes returns a copy of the string bytes, without the terminator.
func StringUTF8Bytes(s String) []byte {
	core.mu.Lock()
	defer core.mu.Unlock()
	return bytes.Clone(core.mustString(s))
}

// StringDelete releases the string. Releasing a handle twice panics.
func StringDelete(s String) {
	core.mu.Lock()
	defer core.mu.Unlock()
	if _, ok := core.strings[s]; !ok {
		panic(fmt.Sprintf("native: double free of string handle %#x", uintptr(s)))
	}
	delete(core.strings, s)
}

func (a *arena) mustString(s String) []byte {
	b, ok := a.strings[s]
	if !ok {
		panic(fmt.Sprintf("native: invalid string handle %#x", uintptr(s)))
	}
	return b
}

// newWallet registers a wallet for seed. Caller must not hold mu.
func newWallet(seed []byte) HDWallet {
	master, err := wallet.NewMasterKey(seed)
	if err != nil {
		log.FFI.Debug().Err(err).Msg("Master key rejected")
		return 0
	}
	core.mu.Lock()
	defer core.mu.Unlock()
	h := HDWallet(core.alloc())
	core.wallets[h] = &engineWallet{master: master}
	return h
}

// HDWalletCreateWithMnemonicCheck creates a wallet from a mnemonic and
// passphrase. With check set the mnemonic must pass the BIP-39 word list and
// checksum test. It returns 0 when the mnemonic is rejected.
func HDWalletCreateWithMnemonicCheck(mnemonic, passphrase String, check bool) HDWallet {
	core.mu.Lock()
	m := string(core.mustString(mnemonic))
	p := string(core.mustString(passphrase))
	core.mu.Unlock()

	if !check {
		if len(bytes.Fields([]byte(m))) == 0 {
			return 0
		}
		return newWallet(wallet.SeedFromMnemonicUnchecked(m, p))
	}
	seed, err := wallet.SeedFromMnemonic(m, p)
	if err != nil {
		log.FFI.Debug().Msg("Mnemonic rejected")
		return 0
	}
	return newWallet(seed)
}

// HDWalletCreateWithEntropy creates a wallet from raw mnemonic entropy and a
// passphrase. It returns 0 unless the entropy is 16 to 32 bytes long and a
// multiple of 4 bytes.
func HDWalletCreateWithEntropy(entropy Data, passphrase String) HDWallet {
	core.mu.Lock()
	e := bytes.Clone(core.mustData(entropy))
	p := string(core.mustString(passphrase))
	core.mu.Unlock()

	mnemonic, err := wallet.MnemonicFromEntropy(e)
	if err != nil {
		log.FFI.Debug().Int("bytes", len(e)).Msg("Entropy rejected")
		return 0
	}
	return newWallet(wallet.SeedFromMnemonicUnchecked(mnemonic, p))
}

// HDWalletGetAddressForCoin returns a new string holding the default address
// of coinType. The coin must be a registered coin type; any other value
// panics.
func HDWalletGetAddressForCoin(w HDWallet, coinType uint32) String {
	core.mu.Lock()
	ew, ok := core.wallets[w]
	core.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("native: invalid wallet handle %#x", uintptr(w)))
	}

	c := coin.Type(coinType)
	if !coin.Known(c) {
		panic(fmt.Sprintf("native: unsupported coin type %d", coinType))
	}
	addr, err := wallet.DefaultAddress(ew.master, c)
	if err != nil {
		panic(fmt.Sprintf("native: derive %v: %v", c, err))
	}
	return StringCreateWithUTF8Bytes(append([]byte(addr), 0))
}

// HDWalletDelete releases the wallet. Releasing a handle twice panics.
func HDWalletDelete(w HDWallet) {
	core.mu.Lock()
	defer core.mu.Unlock()
	if _, ok := core.wallets[w]; !ok {
		panic(fmt.Sprintf("native: double free of wallet handle %#x", uintptr(w)))
	}
	delete(core.wallets, w)
}
