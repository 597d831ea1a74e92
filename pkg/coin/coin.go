// Package coin is the closed registry of coin types the wallet can derive
// default addresses for.
//
// Numeric tags follow SLIP-44, with the 10000000+ extensions used by
// TrustWalletCore for EVM-compatible chains that share an upstream coin type.
// The registry is immutable after package initialization and safe for
// concurrent reads.
package coin

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Type is a coin type tag. Only values listed in this package are valid
// inputs to address derivation; use Known to check a value built from an
// arbitrary integer.
type Type uint32

// Registered coin types, in registry order.
const (
	Binance              Type = 714
	Bitcoin              Type = 0
	Callisto             Type = 820
	Cosmos               Type = 118
	Dash                 Type = 5
	DigiByte             Type = 20
	Dogecoin             Type = 3
	Ethereum             Type = 60
	EthereumClassic      Type = 61
	GoChain              Type = 6060
	ICON                 Type = 74
	Kava                 Type = 459
	Litecoin             Type = 2
	Monacoin             Type = 22
	POANetwork           Type = 178
	Qtum                 Type = 2301
	XRP                  Type = 144
	Theta                Type = 500
	ThunderToken         Type = 1001
	TomoChain            Type = 889
	Tron                 Type = 195
	VeChain              Type = 818
	Viacoin              Type = 14
	Zcash                Type = 133
	Firo                 Type = 136
	Ravencoin            Type = 175
	Terra                Type = 330
	TerraV2              Type = 10000330
	Harmony              Type = 1023
	BandChain            Type = 494
	SmartChain           Type = 20000714
	Polygon              Type = 966
	THORChain            Type = 931
	Bluzelle             Type = 483
	Optimism             Type = 10000070
	Zksync               Type = 10000280
	Arbitrum             Type = 10042221
	ECOChain             Type = 10000553
	AvalancheCChain      Type = 10009000
	XDai                 Type = 10000100
	Fantom               Type = 10000250
	CryptoOrg            Type = 394
	Celo                 Type = 52752
	Osmosis              Type = 10000118
	CronosChain          Type = 10000025
	SmartBitcoinCash     Type = 10000145
	KuCoinCommunityChain Type = 10000321
	Boba                 Type = 10000288
	Metis                Type = 1001088
	Aurora               Type = 1323161554
	Evmos                Type = 10009001
	Moonriver            Type = 10001285
	Moonbeam             Type = 10001284
	KavaEvm              Type = 10002222
	Klaytn               Type = 10008217
	Meter                Type = 18000
	OKXChain             Type = 996
	Secret               Type = 529
)

// Curve is the key family a coin derives its addresses from.
type Curve int

const (
	Secp256k1 Curve = iota
	// Ed25519 includes the Cardano and Nano variants.
	Ed25519
)

func (c Curve) String() string {
	if c == Ed25519 {
		return "ed25519"
	}
	return "secp256k1"
}

type entry struct {
	coin   Type
	name   string
	symbol string
}

// secp256k1Registry lists the coins every backend can derive.
var secp256k1Registry = []entry{
	{Binance, "Binance", "BNB"},
	{Bitcoin, "Bitcoin", "BTC"},
	{Callisto, "Callisto", "CLO"},
	{Cosmos, "Cosmos", "ATOM"},
	{Dash, "Dash", "DASH"},
	{DigiByte, "DigiByte", "DGB"},
	{Dogecoin, "Dogecoin", "DOGE"},
	{Ethereum, "Ethereum", "ETH"},
	{EthereumClassic, "EthereumClassic", "ETC"},
	{GoChain, "GoChain", "GO"},
	{ICON, "ICON", "ICX"},
	{Kava, "Kava", "KAVA"},
	{Litecoin, "Litecoin", "LTC"},
	{Monacoin, "Monacoin", "MONA"},
	{POANetwork, "POANetwork", "POA"},
	{Qtum, "Qtum", "QTUM"},
	{XRP, "XRP", "XRP"},
	{Theta, "Theta", "THETA"},
	{ThunderToken, "ThunderToken", "TT"},
	{TomoChain, "TomoChain", "TOMO"},
	{Tron, "Tron", "TRX"},
	{VeChain, "VeChain", "VET"},
	{Viacoin, "Viacoin", "VIA"},
	{Zcash, "Zcash", "ZEC"},
	{Firo, "Firo", "FIRO"},
	{Ravencoin, "Ravencoin", "RVN"},
	{Terra, "Terra", "LUNC"},
	{TerraV2, "TerraV2", "LUNA"},
	{Harmony, "Harmony", "ONE"},
	{BandChain, "BandChain", "BAND"},
	{SmartChain, "SmartChain", "BNB"},
	{Polygon, "Polygon", "MATIC"},
	{THORChain, "THORChain", "RUNE"},
	{Bluzelle, "Bluzelle", "BLZ"},
	{Optimism, "Optimism", "ETH"},
	{Zksync, "Zksync", "ETH"},
	{Arbitrum, "Arbitrum", "ETH"},
	{ECOChain, "ECOChain", "ECOC"},
	{AvalancheCChain, "AvalancheCChain", "AVAX"},
	{XDai, "XDai", "xDAI"},
	{Fantom, "Fantom", "FTM"},
	{CryptoOrg, "CryptoOrg", "CRO"},
	{Celo, "Celo", "CELO"},
	{Osmosis, "Osmosis", "OSMO"},
	{CronosChain, "CronosChain", "CRO"},
	{SmartBitcoinCash, "SmartBitcoinCash", "BCH"},
	{KuCoinCommunityChain, "KuCoinCommunityChain", "KCS"},
	{Boba, "Boba", "BOBAETH"},
	{Metis, "Metis", "METIS"},
	{Aurora, "Aurora", "ETH"},
	{Evmos, "Evmos", "EVMOS"},
	{Moonriver, "Moonriver", "MOVR"},
	{Moonbeam, "Moonbeam", "GLMR"},
	{KavaEvm, "KavaEvm", "KAVA"},
	{Klaytn, "Klaytn", "KLAY"},
	{Meter, "Meter", "MTR"},
	{OKXChain, "OKXChain", "OKT"},
	{Secret, "Secret", "SCRT"},
}

// registry is every coin in registry order. The ed25519 family is only
// present when linked against TrustWalletCore.
var registry = append(slices.Clip(secp256k1Registry), ed25519Registry...)

// byCoin maps a tag to its registry index.
var byCoin = func() map[Type]int {
	m := make(map[Type]int, len(registry))
	for i, e := range registry {
		if _, dup := m[e.coin]; dup {
			panic(fmt.Sprintf("coin: duplicate registry tag %d", e.coin))
		}
		m[e.coin] = i
	}
	return m
}()

// All yields every registered coin type in registry order.
func All() iter.Seq[Type] {
	return func(yield func(Type) bool) {
		for _, e := range registry {
			if !yield(e.coin) {
				return
			}
		}
	}
}

// Count returns the number of registered coin types.
func Count() int {
	return len(registry)
}

// Known reports whether t is a registered coin type.
func Known(t Type) bool {
	_, ok := byCoin[t]
	return ok
}

// Parse resolves a coin by name ("bitcoin", "ThorChain") or ticker symbol
// ("btc"), case-insensitively. Names win over symbols; a symbol shared by
// several coins resolves to the first one in registry order.
func Parse(s string) (Type, error) {
	s = strings.TrimSpace(s)
	for _, e := range registry {
		if strings.EqualFold(e.name, s) {
			return e.coin, nil
		}
	}
	for _, e := range registry {
		if strings.EqualFold(e.symbol, s) {
			return e.coin, nil
		}
	}
	return 0, fmt.Errorf("unknown coin %q", s)
}

// Name returns the registry name, or "" for an unregistered tag.
func (t Type) Name() string {
	if i, ok := byCoin[t]; ok {
		return registry[i].name
	}
	return ""
}

// Symbol returns the ticker symbol, or "" for an unregistered tag.
func (t Type) Symbol() string {
	if i, ok := byCoin[t]; ok {
		return registry[i].symbol
	}
	return ""
}

// Curve returns the key family of t. Unregistered tags report Secp256k1.
func (t Type) Curve() Curve {
	if i, ok := byCoin[t]; ok && i >= len(secp256k1Registry) {
		return Ed25519
	}
	return Secp256k1
}

func (t Type) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("coin(%d)", uint32(t))
}
