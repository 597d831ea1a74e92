package hdwallet

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/Klingon-tech/walletscan/pkg/coin"
)

const (
	oilMnemonic = "oil oil oil oil oil oil oil oil oil oil oil oil"
	oilBitcoin  = "bc1q98wufxmtfh5qlk7fe5dzy2z8cflvqjysrh4fx2"
)

func mustMnemonic(t *testing.T, mnemonic string) *Wallet {
	t.Helper()
	w, err := WithMnemonic(mnemonic, "")
	if err != nil {
		t.Fatalf("WithMnemonic() error: %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w
}

func TestWithMnemonic(t *testing.T) {
	tests := []struct {
		name     string
		mnemonic string
		wantErr  bool
	}{
		{"oil", oilMnemonic, false},
		{"12 words", "pencil destroy loan write history tattoo record consider resemble assume rude life", false},
		{"15 words", "long dumb grain gesture that design type diary crucial carry comic smile poet van core", false},
		{"18 words", "trick plunge bless pen tone elder velvet squirrel pluck vital man coin essence charge plunge mutual between return", false},
		{"21 words", "rhythm bitter siren often olympic update zoo memory mother decrease acoustic midnight symbol two execute pony cover room tiny plate pupil", false},
		{"24 words", "leopard melt search path this pluck rapid hope clever sphere fiction pact affair maid chronic donor priority pride reform above force assault return dirt", false},
		{"bad checksum word", oilMnemonic + " text", true},
		{"hex instead of words", "99d33a674ce99d33a674ce99d33a674c", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := WithMnemonic(tt.mnemonic, "")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMnemonic) {
					t.Errorf("error = %v, want ErrInvalidMnemonic", err)
				}
				if w != nil {
					t.Error("returned a wallet along with an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("WithMnemonic() error: %v", err)
			}
			w.Close()
		})
	}
}

func TestWithEntropy(t *testing.T) {
	tests := []struct {
		name    string
		entropy string
		wantErr bool
	}{
		{"16 bytes", "99d33a674ce99d33a674ce99d33a674c", false},
		{"16 bytes 0x", "0x99d33a674ce99d33a674ce99d33a674c", false},
		{"32 bytes", "99d33a674ce99d33a674ce99d33a674c99d33a674ce99d33a674ce99d33a674c", false},
		{"32 bytes 0x", "0x99d33a674ce99d33a674ce99d33a674c99d33a674ce99d33a674ce99d33a674c", false},
		{"upper case digits", "99D33A674CE99D33A674CE99D33A674C", false},
		{"20 bytes", "99d33a674ce99d33a674ce99d33a674c99d33a67", false},
		{"2 bytes", "99d3", true},
		{"2 bytes 0x", "0x99d3", true},
		{"15 bytes", "99d33a674ce99d33a674ce99d33a67", true},
		{"33 bytes", "99d33a674ce99d33a674ce99d33a674c99d33a674ce99d33a674ce99d33a674c00", true},
		{"odd length", "99d33a674ce99d33a674ce99d33a674", true},
		{"not hex", "zzd33a674ce99d33a674ce99d33a674c", true},
		{"upper case prefix", "0X99d33a674ce99d33a674ce99d33a674c", true},
		{"empty", "", true},
		{"prefix only", "0x", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := WithEntropy(tt.entropy, "")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEntropy) {
					t.Errorf("WithEntropy(%q) error = %v, want ErrInvalidEntropy", tt.entropy, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("WithEntropy(%q) error: %v", tt.entropy, err)
			}
			w.Close()
		})
	}
}

// Entropy between the bounds is accepted only in whole 4-byte steps.
func TestWithEntropy_LengthsInRange(t *testing.T) {
	w, err := WithEntropy(strings.Repeat("a5", 20), "")
	if err != nil {
		t.Fatalf("WithEntropy(20 bytes) error: %v", err)
	}
	w.Close()

	if _, err := WithEntropy(strings.Repeat("a5", 17), ""); !errors.Is(err, ErrInvalidEntropy) {
		t.Errorf("WithEntropy(17 bytes) error = %v, want ErrInvalidEntropy", err)
	}

	for n := MinEntropyBytes; n <= MaxEntropyBytes; n++ {
		w, err := WithEntropy("0x"+strings.Repeat("a5", n), "")
		if n%4 == 0 {
			if err != nil {
				t.Errorf("WithEntropy(%d bytes) error: %v", n, err)
				continue
			}
			w.Close()
			continue
		}
		if !errors.Is(err, ErrInvalidEntropy) {
			t.Errorf("WithEntropy(%d bytes) error = %v, want ErrInvalidEntropy", n, err)
		}
	}
}

func TestWithEntropy_MatchesPrefixless(t *testing.T) {
	a, err := WithEntropy("99d33a674ce99d33a674ce99d33a674c", "")
	if err != nil {
		t.Fatalf("WithEntropy() error: %v", err)
	}
	defer a.Close()
	b, err := WithEntropy("0x99d33a674ce99d33a674ce99d33a674c", "")
	if err != nil {
		t.Fatalf("WithEntropy() error: %v", err)
	}
	defer b.Close()

	if a.DeriveDefaultAddress(coin.Ethereum) != b.DeriveDefaultAddress(coin.Ethereum) {
		t.Error("0x prefix changed the derived wallet")
	}
}

func TestEntropyAndMnemonicAgree(t *testing.T) {
	// All-zero entropy encodes to "abandon ... about".
	e, err := WithEntropy("00000000000000000000000000000000", "")
	if err != nil {
		t.Fatalf("WithEntropy() error: %v", err)
	}
	defer e.Close()
	m := mustMnemonic(t, "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about")

	for _, c := range []coin.Type{coin.Bitcoin, coin.Ethereum, coin.Cosmos} {
		if e.DeriveDefaultAddress(c) != m.DeriveDefaultAddress(c) {
			t.Errorf("%v: entropy and mnemonic wallets differ", c)
		}
	}
}

func TestDeriveDefaultAddress_Oil(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	if got := w.DeriveDefaultAddress(coin.Bitcoin); got != oilBitcoin {
		t.Errorf("DeriveDefaultAddress(Bitcoin) = %s, want %s", got, oilBitcoin)
	}
}

func TestDeriveDefaultAddress_Deterministic(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	for c := range coin.All() {
		if a, b := w.DeriveDefaultAddress(c), w.DeriveDefaultAddress(c); a != b {
			t.Errorf("%v: %s then %s", c, a, b)
		}
	}
}

func TestPassphrase_ChangesWallet(t *testing.T) {
	w1 := mustMnemonic(t, oilMnemonic)
	w2, err := WithMnemonic(oilMnemonic, "TREZOR")
	if err != nil {
		t.Fatalf("WithMnemonic() error: %v", err)
	}
	defer w2.Close()
	if w1.DeriveDefaultAddress(coin.Bitcoin) == w2.DeriveDefaultAddress(coin.Bitcoin) {
		t.Error("passphrase did not change the derived address")
	}
}

func TestDeriveDefaultAddresses_Order(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	coins := []coin.Type{coin.Ethereum, coin.Bitcoin, coin.Cosmos, coin.Bitcoin}

	got := slices.Collect(w.DeriveDefaultAddresses(slices.Values(coins)))
	if len(got) != len(coins) {
		t.Fatalf("got %d addresses, want %d", len(got), len(coins))
	}
	for i, c := range coins {
		if want := w.DeriveDefaultAddress(c); got[i] != want {
			t.Errorf("address %d (%v) = %s, want %s", i, c, got[i], want)
		}
	}
	if got[1] != oilBitcoin || got[3] != oilBitcoin {
		t.Errorf("Bitcoin addresses = %s, %s", got[1], got[3])
	}
}

func TestDeriveDefaultAddresses_AllCoins(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	n := 0
	for addr := range w.DeriveDefaultAddresses(coin.All()) {
		if addr == "" {
			t.Errorf("empty address at index %d", n)
		}
		n++
	}
	if n != coin.Count() {
		t.Errorf("derived %d addresses, want %d", n, coin.Count())
	}
}

func TestDeriveDefaultAddresses_Lazy(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	pulled := 0
	coins := func(yield func(coin.Type) bool) {
		for c := range coin.All() {
			pulled++
			if !yield(c) {
				return
			}
		}
	}

	seq := w.DeriveDefaultAddresses(coins)
	if pulled != 0 {
		t.Fatalf("creating the sequence consumed %d coins", pulled)
	}
	for range seq {
		if pulled == 2 {
			break
		}
	}
	if pulled != 2 {
		t.Errorf("consumed %d coins after breaking at 2", pulled)
	}

	// Restartable: a second range derives again from the start.
	first := ""
	for addr := range seq {
		first = addr
		break
	}
	if first != w.DeriveDefaultAddress(coin.Binance) {
		t.Errorf("restarted sequence yielded %s first", first)
	}
}

func TestFingerprint(t *testing.T) {
	w := mustMnemonic(t, oilMnemonic)
	fp := w.Fingerprint()
	if len(fp) != 16 {
		t.Errorf("Fingerprint() = %q, want 16 hex chars", fp)
	}
	if fp != w.Fingerprint() {
		t.Error("Fingerprint() is not stable")
	}
	other := mustMnemonic(t, "pencil destroy loan write history tattoo record consider resemble assume rude life")
	if other.Fingerprint() == fp {
		t.Error("different wallets share a fingerprint")
	}
}

func TestClose_Twice(t *testing.T) {
	w, err := WithMnemonic(oilMnemonic, "")
	if err != nil {
		t.Fatalf("WithMnemonic() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error: %v", err)
	}
}
