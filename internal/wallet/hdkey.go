package wallet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tyler-smith/go-bip32"
)

// BIP-44/84 derivation path constants.
// Full path: m/purpose'/coin'/account'/change/index
const (
	// PurposeBIP44 is the legacy (P2PKH and account-model) purpose (hardened).
	PurposeBIP44 = bip32.FirstHardenedChild + 44

	// PurposeBIP84 is the native segwit purpose (hardened).
	PurposeBIP84 = bip32.FirstHardenedChild + 84

	// ChangeExternal is the receiving branch.
	ChangeExternal = 0
)

// HDKey represents a hierarchical deterministic key (BIP-32).
type HDKey struct {
	key *bip32.Key
}

// NewMasterKey creates a master HD key from a 64-byte seed.
func NewMasterKey(seed []byte) (*HDKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("create master key: %w", err)
	}
	return &HDKey{key: master}, nil
}

// DeriveChild derives a child key at the given index.
// For hardened derivation, add bip32.FirstHardenedChild to the index.
func (k *HDKey) DeriveChild(index uint32) (*HDKey, error) {
	child, err := k.key.NewChildKey(index)
	if err != nil {
		return nil, fmt.Errorf("derive child %d: %w", index, err)
	}
	return &HDKey{key: child}, nil
}

// DerivePath derives a key along a sequence of indices.
func (k *HDKey) DerivePath(indices ...uint32) (*HDKey, error) {
	current := k
	for _, idx := range indices {
		child, err := current.DeriveChild(idx)
		if err != nil {
			return nil, err
		}
		current = child
	}
	return current, nil
}

// PublicKeyBytes returns the compressed 33-byte public key.
func (k *HDKey) PublicKeyBytes() []byte {
	return k.key.PublicKey().Key
}

// ParsePath parses a derivation path such as "m/84'/0'/0'/0/0" into child
// indices. Hardened components may be marked with ' or h.
func ParsePath(path string) ([]uint32, error) {
	parts := strings.Split(strings.TrimSpace(path), "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("path %q must start with m", path)
	}
	indices := make([]uint32, 0, len(parts)-1)
	for _, p := range parts[1:] {
		hardened := strings.HasSuffix(p, "'") || strings.HasSuffix(p, "h")
		if hardened {
			p = p[:len(p)-1]
		}
		n, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("path %q: bad component %q", path, p)
		}
		if n >= uint64(bip32.FirstHardenedChild) {
			return nil, fmt.Errorf("path %q: component %d out of range", path, n)
		}
		idx := uint32(n)
		if hardened {
			idx += bip32.FirstHardenedChild
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

// FormatPath renders child indices back into "m/..." notation.
func FormatPath(indices []uint32) string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, idx := range indices {
		sb.WriteByte('/')
		if idx >= bip32.FirstHardenedChild {
			sb.WriteString(strconv.FormatUint(uint64(idx-bip32.FirstHardenedChild), 10))
			sb.WriteByte('\'')
			continue
		}
		sb.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return sb.String()
}
