//go:build !walletcore

package coin

// The in-process engine derives secp256k1 keys only.
var ed25519Registry []entry
