//go:build !walletcore

package native

import (
	"bytes"
	"testing"

	"github.com/Klingon-tech/walletscan/pkg/coin"
)

func cstr(s string) []byte { return append([]byte(s), 0) }

func TestData_RoundTrip(t *testing.T) {
	before := Live()
	in := []byte{0x99, 0xd3, 0x00, 0x3a}
	d := DataCreateWithBytes(in)
	if d == 0 {
		t.Fatal("DataCreateWithBytes returned the null handle")
	}
	in[0] = 0 // the buffer must own a copy
	if got := DataSize(d); got != 4 {
		t.Errorf("DataSize = %d, want 4", got)
	}
	if got := DataBytes(d); !bytes.Equal(got, []byte{0x99, 0xd3, 0x00, 0x3a}) {
		t.Errorf("DataBytes = %x", got)
	}
	DataDelete(d)
	if Live() != before {
		t.Errorf("Live() = %+v after delete, want %+v", Live(), before)
	}
}

func TestString_TruncatesAtNUL(t *testing.T) {
	s := StringCreateWithUTF8Bytes([]byte("abc\x00def\x00"))
	defer StringDelete(s)
	if got := string(StringUTF8Bytes(s)); got != "abc" {
		t.Errorf("StringUTF8Bytes = %q, want %q", got, "abc")
	}
}

func TestDelete_Twice_Panics(t *testing.T) {
	tests := []struct {
		name string
		free func()
	}{
		{"data", func() { d := DataCreateWithBytes(nil); DataDelete(d); DataDelete(d) }},
		{"string", func() { s := StringCreateWithUTF8Bytes(cstr("x")); StringDelete(s); StringDelete(s) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("second delete did not panic")
				}
			}()
			tt.free()
		})
	}
}

func TestHDWallet_Mnemonic(t *testing.T) {
	m := StringCreateWithUTF8Bytes(cstr("oil oil oil oil oil oil oil oil oil oil oil oil"))
	p := StringCreateWithUTF8Bytes(cstr(""))
	defer StringDelete(m)
	defer StringDelete(p)

	w := HDWalletCreateWithMnemonicCheck(m, p, true)
	if w == 0 {
		t.Fatal("valid mnemonic rejected")
	}
	defer HDWalletDelete(w)

	addr := HDWalletGetAddressForCoin(w, uint32(coin.Bitcoin))
	defer StringDelete(addr)
	if got := string(StringUTF8Bytes(addr)); got != "bc1q98wufxmtfh5qlk7fe5dzy2z8cflvqjysrh4fx2" {
		t.Errorf("address = %s", got)
	}
}

func TestHDWallet_MnemonicCheck(t *testing.T) {
	bad := StringCreateWithUTF8Bytes(cstr("oil oil oil oil oil oil oil oil oil oil oil oil text"))
	p := StringCreateWithUTF8Bytes(cstr(""))
	defer StringDelete(bad)
	defer StringDelete(p)

	if w := HDWalletCreateWithMnemonicCheck(bad, p, true); w != 0 {
		HDWalletDelete(w)
		t.Error("checked create accepted a bad checksum")
	}
	w := HDWalletCreateWithMnemonicCheck(bad, p, false)
	if w == 0 {
		t.Fatal("unchecked create rejected a non-empty phrase")
	}
	HDWalletDelete(w)
}

func TestHDWallet_Entropy(t *testing.T) {
	p := StringCreateWithUTF8Bytes(cstr(""))
	defer StringDelete(p)

	for _, n := range []int{16, 20, 24, 28, 32} {
		e := DataCreateWithBytes(make([]byte, n))
		w := HDWalletCreateWithEntropy(e, p)
		DataDelete(e)
		if w == 0 {
			t.Errorf("%d-byte entropy rejected", n)
			continue
		}
		HDWalletDelete(w)
	}
	for _, n := range []int{0, 2, 15, 17, 33} {
		e := DataCreateWithBytes(make([]byte, n))
		w := HDWalletCreateWithEntropy(e, p)
		DataDelete(e)
		if w != 0 {
			HDWalletDelete(w)
			t.Errorf("%d-byte entropy accepted", n)
		}
	}
}

func TestHDWallet_UnknownCoin_Panics(t *testing.T) {
	m := StringCreateWithUTF8Bytes(cstr("oil oil oil oil oil oil oil oil oil oil oil oil"))
	p := StringCreateWithUTF8Bytes(cstr(""))
	defer StringDelete(m)
	defer StringDelete(p)
	w := HDWalletCreateWithMnemonicCheck(m, p, true)
	defer HDWalletDelete(w)

	defer func() {
		if recover() == nil {
			t.Error("unknown coin did not panic")
		}
	}()
	HDWalletGetAddressForCoin(w, 4)
}
