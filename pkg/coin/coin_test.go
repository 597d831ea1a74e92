package coin

import (
	"testing"
)

func TestAll_RegistryOrder(t *testing.T) {
	var got []Type
	for c := range All() {
		got = append(got, c)
	}
	if len(got) != Count() {
		t.Fatalf("All() yielded %d coins, Count() = %d", len(got), Count())
	}
	if got[0] != Binance || got[1] != Bitcoin {
		t.Errorf("first coins = %v, %v; want Binance, Bitcoin", got[0], got[1])
	}
	if got[len(secp256k1Registry)-1] != Secret {
		t.Errorf("last secp256k1 coin = %v, want Secret", got[len(secp256k1Registry)-1])
	}
}

func TestAll_StopsEarly(t *testing.T) {
	n := 0
	for range All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d coins, want 3", n)
	}
}

func TestKnown(t *testing.T) {
	for c := range All() {
		if !Known(c) {
			t.Errorf("Known(%v) = false for registered coin", c)
		}
	}
	for _, raw := range []uint32{1, 4, 9999, 0xFFFFFFFF} {
		if Known(Type(raw)) {
			t.Errorf("Known(%d) = true, want false", raw)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{"bitcoin", Bitcoin},
		{"Bitcoin", Bitcoin},
		{"BTC", Bitcoin},
		{"eth", Ethereum},
		{"thorchain", THORChain},
		{" atom ", Cosmos},
		{"cro", CryptoOrg},
		{"CronosChain", CronosChain},
		{"bnb", Binance},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := Parse("dogecoinz"); err == nil {
		t.Error("Parse(dogecoinz) should fail for an unregistered coin")
	}
}

func TestCurve(t *testing.T) {
	for _, e := range secp256k1Registry {
		if got := e.coin.Curve(); got != Secp256k1 {
			t.Errorf("%v.Curve() = %v, want secp256k1", e.coin, got)
		}
	}
	for _, e := range ed25519Registry {
		if got := e.coin.Curve(); got != Ed25519 {
			t.Errorf("%v.Curve() = %v, want ed25519", e.coin, got)
		}
	}
	if Count() != len(secp256k1Registry)+len(ed25519Registry) {
		t.Errorf("Count() = %d, want both families", Count())
	}
}

func TestString(t *testing.T) {
	if got := Bitcoin.String(); got != "Bitcoin" {
		t.Errorf("Bitcoin.String() = %q", got)
	}
	if got := Type(4).String(); got != "coin(4)" {
		t.Errorf("Type(4).String() = %q, want coin(4)", got)
	}
	if got := Type(4).Symbol(); got != "" {
		t.Errorf("Type(4).Symbol() = %q, want empty", got)
	}
}
