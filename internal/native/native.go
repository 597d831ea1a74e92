// Package native is the C-linkage wallet core boundary.
//
// Every function here mirrors one TrustWalletCore entry point. Handles are
// opaque pointer-sized values and 0 is the null handle. Ownership of a handle
// returned by a Create function or by HDWalletGetAddressForCoin passes to the
// caller, who must release it exactly once with the matching Delete function.
// Strings cross the boundary NUL-terminated; buffers cross as pointer and
// length.
//
// The default build links an in-process engine. Building with the walletcore
// tag links libTrustWalletCore through cgo instead; point CGO_CFLAGS and
// CGO_LDFLAGS at the wallet-core include and build directories.
package native

// Data is a handle to a foreign byte buffer (TWData).
type Data uintptr

// String is a handle to a foreign NUL-terminated UTF-8 string (TWString).
type String uintptr

// HDWallet is a handle to a foreign HD wallet (TWHDWallet).
type HDWallet uintptr
