package wallet

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// Encoder turns a compressed 33-byte secp256k1 public key into an address.
type Encoder func(pub []byte) (string, error)

// Hash160 computes RIPEMD160(SHA256(data)).
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// uncompressed returns the 64-byte X||Y encoding of a compressed public key.
func uncompressed(pub []byte) ([]byte, error) {
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return key.SerializeUncompressed()[1:], nil
}

// keccakAddress returns the 20-byte account-model address of a public key.
func keccakAddress(pub []byte) ([]byte, error) {
	xy, err := uncompressed(pub)
	if err != nil {
		return nil, err
	}
	return crypto.Keccak256(xy)[12:], nil
}

// SegwitEncoder encodes a P2WPKH (witness v0) address with the given HRP.
func SegwitEncoder(hrp string) Encoder {
	params := &chaincfg.Params{Name: hrp, Bech32HRPSegwit: hrp}
	return func(pub []byte) (string, error) {
		addr, err := btcutil.NewAddressWitnessPubKeyHash(Hash160(pub), params)
		if err != nil {
			return "", fmt.Errorf("p2wpkh: %w", err)
		}
		return addr.EncodeAddress(), nil
	}
}

// P2PKHEncoder encodes a base58check pay-to-pubkey-hash address with a
// one-byte version prefix.
func P2PKHEncoder(version byte) Encoder {
	return func(pub []byte) (string, error) {
		return base58.CheckEncode(Hash160(pub), version), nil
	}
}

// zcashTransparentPrefix is the two-byte version of t1 addresses.
var zcashTransparentPrefix = []byte{0x1c, 0xb8}

// ZcashTransparentEncoder encodes a Zcash t1 address.
func ZcashTransparentEncoder(pub []byte) (string, error) {
	payload := append(append([]byte{}, zcashTransparentPrefix...), Hash160(pub)...)
	checksum := chainhash.DoubleHashB(payload)[:4]
	return base58.Encode(append(payload, checksum...)), nil
}

// EVMEncoder encodes an EIP-55 checksummed 0x address.
func EVMEncoder(pub []byte) (string, error) {
	raw, err := keccakAddress(pub)
	if err != nil {
		return "", err
	}
	return common.BytesToAddress(raw).Hex(), nil
}

// Bech32Encoder encodes HASH160(pubkey) as a bech32 account address, the
// Cosmos SDK convention.
func Bech32Encoder(hrp string) Encoder {
	return func(pub []byte) (string, error) {
		return encodeBech32(hrp, Hash160(pub))
	}
}

// HarmonyEncoder encodes the keccak account address with the "one" HRP.
func HarmonyEncoder(pub []byte) (string, error) {
	raw, err := keccakAddress(pub)
	if err != nil {
		return "", err
	}
	return encodeBech32("one", raw)
}

func encodeBech32(hrp string, data []byte) (string, error) {
	conv, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32 convert: %w", err)
	}
	s, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", fmt.Errorf("bech32 encode: %w", err)
	}
	return s, nil
}

// TronEncoder encodes a base58check Tron address (0x41 prefix).
func TronEncoder(pub []byte) (string, error) {
	raw, err := keccakAddress(pub)
	if err != nil {
		return "", err
	}
	return base58.CheckEncode(raw, 0x41), nil
}

const (
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	rippleAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
)

var toRipple = strings.NewReplacer(func() []string {
	pairs := make([]string, 0, 2*len(bitcoinAlphabet))
	for i := range bitcoinAlphabet {
		pairs = append(pairs, bitcoinAlphabet[i:i+1], rippleAlphabet[i:i+1])
	}
	return pairs
}()...)

// RippleEncoder encodes a classic XRP address: base58check of HASH160 with
// version 0, written in the Ripple alphabet.
func RippleEncoder(pub []byte) (string, error) {
	return toRipple.Replace(base58.CheckEncode(Hash160(pub), 0)), nil
}

// ICONEncoder encodes an ICON "hx" address: the last 20 bytes of
// SHA3-256 over the uncompressed key.
func ICONEncoder(pub []byte) (string, error) {
	xy, err := uncompressed(pub)
	if err != nil {
		return "", err
	}
	sum := sha3.Sum256(xy)
	return "hx" + hex.EncodeToString(sum[12:]), nil
}
