package ffi

import (
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/Klingon-tech/walletscan/internal/native"
)

// String is an owned foreign NUL-terminated UTF-8 string.
type String struct {
	owned[native.String]
}

// NewString copies s into a new foreign string. s must not contain a NUL
// byte; one that does panics, as does a failed foreign allocation.
func NewString(s string) *String {
	if i := strings.IndexByte(s, 0); i >= 0 {
		panic(fmt.Sprintf("ffi.NewString: embedded NUL at byte %d", i))
	}
	cstr := make([]byte, len(s)+1)
	copy(cstr, s)
	h := native.StringCreateWithUTF8Bytes(cstr)
	if h == 0 {
		panic("ffi.String: foreign allocation failed")
	}
	return newString(h)
}

// AdoptString takes ownership of a string allocated by the wallet core. A
// null handle panics.
func AdoptString(h native.String) *String {
	if h == 0 {
		panic("ffi.AdoptString: null handle")
	}
	return newString(h)
}

func newString(h native.String) *String {
	s := &String{owned: owned[native.String]{h: h, kind: "ffi.String"}}
	runtime.SetFinalizer(s, func(s *String) { s.finalized(native.StringDelete) })
	return s
}

// Raw returns the foreign handle for passing to another native call. The
// handle is valid only while s is reachable and open.
func (s *String) Raw() native.String {
	return s.get()
}

// ToGoString copies the foreign string into a Go string. Invalid UTF-8 is
// reported as a *DecodeError and never replaced.
func (s *String) ToGoString() (string, error) {
	b := native.StringUTF8Bytes(s.get())
	runtime.KeepAlive(s)
	if !utf8.Valid(b) {
		return "", &DecodeError{Offset: invalidOffset(b)}
	}
	return string(b), nil
}

func invalidOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

// Close releases the string. It is safe to call more than once.
func (s *String) Close() error {
	if s.release(native.StringDelete) {
		runtime.SetFinalizer(s, nil)
	}
	return nil
}
