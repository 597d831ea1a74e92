//go:build walletcore

package native

/*
#cgo LDFLAGS: -lTrustWalletCore -lTrezorCrypto -lprotobuf -lwallet_core_rs -lstdc++ -lm
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <TrustWalletCore/TWData.h>
#include <TrustWalletCore/TWString.h>
#include <TrustWalletCore/TWHDWallet.h>
*/
import "C"

import "unsafe"

// Handles returned by wallet-core point into C memory, which the Go
// collector never moves, so they round-trip through uintptr safely.

func dataPtr(d Data) unsafe.Pointer { return unsafe.Pointer(d) }

func stringPtr(s String) unsafe.Pointer { return unsafe.Pointer(s) }

func walletPtr(w HDWallet) *C.struct_TWHDWallet {
	return (*C.struct_TWHDWallet)(unsafe.Pointer(w))
}

// DataCreateWithBytes copies b into a new foreign buffer.
func DataCreateWithBytes(b []byte) Data {
	var p *C.uint8_t
	if len(b) > 0 {
		p = (*C.uint8_t)(unsafe.Pointer(&b[0]))
	}
	return Data(uintptr(unsafe.Pointer(C.TWDataCreateWithBytes(p, C.size_t(len(b))))))
}

// DataSize returns the length of the buffer.
func DataSize(d Data) int {
	return int(C.TWDataSize(dataPtr(d)))
}

// DataBytes returns a copy of the buffer contents.
func DataBytes(d Data) []byte {
	n := C.TWDataSize(dataPtr(d))
	if n == 0 {
		return []byte{}
	}
	return C.GoBytes(unsafe.Pointer(C.TWDataBytes(dataPtr(d))), C.int(n))
}

// DataDelete releases the buffer.
func DataDelete(d Data) {
	C.TWDataDelete(dataPtr(d))
}

// StringCreateWithUTF8Bytes copies a NUL-terminated byte string into a new
// foreign string. cstr must contain a NUL.
func StringCreateWithUTF8Bytes(cstr []byte) String {
	if len(cstr) == 0 || cstr[len(cstr)-1] != 0 {
		cstr = append(cstr[:len(cstr):len(cstr)], 0)
	}
	p := (*C.char)(unsafe.Pointer(&cstr[0]))
	return String(uintptr(unsafe.Pointer(C.TWStringCreateWithUTF8Bytes(p))))
}

// StringUTF8Bytes returns a copy of the string bytes, without the terminator.
func StringUTF8Bytes(s String) []byte {
	n := C.TWStringSize(stringPtr(s))
	return C.GoBytes(unsafe.Pointer(C.TWStringUTF8Bytes(stringPtr(s))), C.int(n))
}

// StringDelete releases the string.
func StringDelete(s String) {
	C.TWStringDelete(stringPtr(s))
}

// HDWalletCreateWithMnemonicCheck creates a wallet from a mnemonic and
// passphrase. It returns 0 when the mnemonic is rejected.
func HDWalletCreateWithMnemonicCheck(mnemonic, passphrase String, check bool) HDWallet {
	w := C.TWHDWalletCreateWithMnemonicCheck(stringPtr(mnemonic), stringPtr(passphrase), C.bool(check))
	return HDWallet(uintptr(unsafe.Pointer(w)))
}

// HDWalletCreateWithEntropy creates a wallet from raw mnemonic entropy and a
// passphrase. It returns 0 when the entropy is rejected.
func HDWalletCreateWithEntropy(entropy Data, passphrase String) HDWallet {
	w := C.TWHDWalletCreateWithEntropy(dataPtr(entropy), stringPtr(passphrase))
	return HDWallet(uintptr(unsafe.Pointer(w)))
}

// HDWalletGetAddressForCoin returns a new string holding the default address
// of coinType. Behavior for an unknown coin type is undefined.
func HDWalletGetAddressForCoin(w HDWallet, coinType uint32) String {
	s := C.TWHDWalletGetAddressForCoin(walletPtr(w), C.enum_TWCoinType(coinType))
	return String(uintptr(unsafe.Pointer(s)))
}

// HDWalletDelete releases the wallet.
func HDWalletDelete(w HDWallet) {
	C.TWHDWalletDelete(walletPtr(w))
}
