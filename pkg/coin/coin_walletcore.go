//go:build walletcore

package coin

// Coins on the ed25519 family, derivable only by TrustWalletCore.
const (
	Aeternity Type = 457
	Cardano   Type = 1815
	Kin       Type = 2017
	Nano      Type = 165
	NEAR      Type = 397
	Nimiq     Type = 242
	Solana    Type = 501
	Stellar   Type = 148
	Tezos     Type = 1729
	Waves     Type = 5741564
	Algorand  Type = 283
	Kusama    Type = 434
	Polkadot  Type = 354
	Elrond    Type = 508
	Oasis     Type = 474
	Everscale Type = 396
	Aptos     Type = 637
	Hedera    Type = 3030
)

var ed25519Registry = []entry{
	{Aeternity, "Aeternity", "AE"},
	{Cardano, "Cardano", "ADA"},
	{Kin, "Kin", "KIN"},
	{Nano, "Nano", "XNO"},
	{NEAR, "NEAR", "NEAR"},
	{Nimiq, "Nimiq", "NIM"},
	{Solana, "Solana", "SOL"},
	{Stellar, "Stellar", "XLM"},
	{Tezos, "Tezos", "XTZ"},
	{Waves, "Waves", "WAVES"},
	{Algorand, "Algorand", "ALGO"},
	{Kusama, "Kusama", "KSM"},
	{Polkadot, "Polkadot", "DOT"},
	{Elrond, "Elrond", "EGLD"},
	{Oasis, "Oasis", "ROSE"},
	{Everscale, "Everscale", "EVER"},
	{Aptos, "Aptos", "APT"},
	{Hedera, "Hedera", "HBAR"},
}
