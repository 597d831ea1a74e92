package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip32"

	"github.com/Klingon-tech/walletscan/pkg/coin"
)

// Scheme is the default derivation of a coin: a BIP-32 path and the address
// encoding applied to the public key found there.
type Scheme struct {
	Path   string
	Encode Encoder
}

// defaultPath is the first receiving address of account 0.
func defaultPath(purpose, coinType uint32) string {
	return FormatPath([]uint32{purpose, bip32.FirstHardenedChild + coinType, bip32.FirstHardenedChild, ChangeExternal, 0})
}

func bip44(coinType uint32) string { return defaultPath(PurposeBIP44, coinType) }
func bip84(coinType uint32) string { return defaultPath(PurposeBIP84, coinType) }

func evm(coinType uint32) Scheme { return Scheme{Path: bip44(coinType), Encode: EVMEncoder} }

func cosmosSDK(coinType uint32, hrp string) Scheme {
	return Scheme{Path: bip44(coinType), Encode: Bech32Encoder(hrp)}
}

var schemes = map[coin.Type]Scheme{
	// UTXO, native segwit.
	coin.Bitcoin:  {Path: bip84(0), Encode: SegwitEncoder("bc")},
	coin.Litecoin: {Path: bip84(2), Encode: SegwitEncoder("ltc")},
	coin.Viacoin:  {Path: bip84(14), Encode: SegwitEncoder("via")},
	coin.DigiByte: {Path: bip84(20), Encode: SegwitEncoder("dgb")},

	// UTXO, legacy P2PKH.
	coin.Dogecoin:  {Path: bip44(3), Encode: P2PKHEncoder(0x1e)},
	coin.Dash:      {Path: bip44(5), Encode: P2PKHEncoder(0x4c)},
	coin.Monacoin:  {Path: bip44(22), Encode: P2PKHEncoder(0x32)},
	coin.Firo:      {Path: bip44(136), Encode: P2PKHEncoder(0x52)},
	coin.Ravencoin: {Path: bip44(175), Encode: P2PKHEncoder(0x3c)},
	coin.Qtum:      {Path: bip44(2301), Encode: P2PKHEncoder(0x3a)},
	coin.Zcash:     {Path: bip44(133), Encode: ZcashTransparentEncoder},

	// Account model, keccak addresses on their own coin type.
	coin.Ethereum:        evm(60),
	coin.EthereumClassic: evm(61),
	coin.POANetwork:      evm(178),
	coin.Theta:           evm(500),
	coin.VeChain:         evm(818),
	coin.Callisto:        evm(820),
	coin.TomoChain:       evm(889),
	coin.OKXChain:        evm(996),
	coin.ThunderToken:    evm(1001),
	coin.GoChain:         evm(6060),
	coin.Klaytn:          evm(8217),
	coin.Meter:           evm(18000),
	coin.Celo:            evm(52752),

	// EVM chains sharing Ethereum's derivation.
	coin.SmartChain:           evm(60),
	coin.Polygon:              evm(60),
	coin.Optimism:             evm(60),
	coin.Zksync:               evm(60),
	coin.Arbitrum:             evm(60),
	coin.ECOChain:             evm(60),
	coin.AvalancheCChain:      evm(60),
	coin.XDai:                 evm(60),
	coin.Fantom:               evm(60),
	coin.CronosChain:          evm(60),
	coin.SmartBitcoinCash:     evm(60),
	coin.KuCoinCommunityChain: evm(60),
	coin.Boba:                 evm(60),
	coin.Metis:                evm(60),
	coin.Aurora:               evm(60),
	coin.Evmos:                evm(60),
	coin.Moonriver:            evm(60),
	coin.Moonbeam:             evm(60),
	coin.KavaEvm:              evm(60),

	// Cosmos SDK and other bech32 HASH160 chains.
	coin.Cosmos:    cosmosSDK(118, "cosmos"),
	coin.Osmosis:   cosmosSDK(118, "osmo"),
	coin.CryptoOrg: cosmosSDK(394, "cro"),
	coin.Kava:      cosmosSDK(459, "kava"),
	coin.Bluzelle:  cosmosSDK(483, "bluzelle"),
	coin.BandChain: cosmosSDK(494, "band"),
	coin.Secret:    cosmosSDK(529, "secret"),
	coin.Terra:     cosmosSDK(330, "terra"),
	coin.TerraV2:   cosmosSDK(330, "terra"),
	coin.THORChain: cosmosSDK(931, "thor"),
	coin.Binance:   cosmosSDK(714, "bnb"),

	// Everything else.
	coin.Tron:    {Path: bip44(195), Encode: TronEncoder},
	coin.XRP:     {Path: bip44(144), Encode: RippleEncoder},
	coin.ICON:    {Path: bip44(74), Encode: ICONEncoder},
	coin.Harmony: {Path: bip44(1023), Encode: HarmonyEncoder},
}

// SchemeFor returns the default derivation of c.
func SchemeFor(c coin.Type) (Scheme, bool) {
	s, ok := schemes[c]
	return s, ok
}

// DefaultAddress derives the default receiving address of c below master.
func DefaultAddress(master *HDKey, c coin.Type) (string, error) {
	scheme, ok := SchemeFor(c)
	if !ok {
		return "", fmt.Errorf("no derivation scheme for %v", c)
	}
	indices, err := ParsePath(scheme.Path)
	if err != nil {
		return "", err
	}
	key, err := master.DerivePath(indices...)
	if err != nil {
		return "", fmt.Errorf("%v: %w", c, err)
	}
	addr, err := scheme.Encode(key.PublicKeyBytes())
	if err != nil {
		return "", fmt.Errorf("%v: %w", c, err)
	}
	return addr, nil
}
