// Package wallet is the in-process HD derivation engine behind the native
// boundary: BIP-39 mnemonics and seeds, the BIP-32 key tree, and the per-coin
// default address encoders.
package wallet

import (
	"fmt"

	"github.com/tyler-smith/go-bip39"
)

// MnemonicFromEntropy encodes raw entropy as a mnemonic. The entropy must be
// 16, 20, 24, 28 or 32 bytes.
func MnemonicFromEntropy(entropy []byte) (string, error) {
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("mnemonic from %d-byte entropy: %w", len(entropy), err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks if a mnemonic is valid per BIP-39
// (correct word count, valid words, valid checksum).
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}
