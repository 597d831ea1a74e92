package ffi

import (
	"runtime"

	"github.com/Klingon-tech/walletscan/internal/native"
)

// Data is an owned foreign byte buffer.
type Data struct {
	owned[native.Data]
}

// NewData copies b into a new foreign buffer. A failed foreign allocation
// panics.
func NewData(b []byte) *Data {
	h := native.DataCreateWithBytes(b)
	if h == 0 {
		panic("ffi.Data: foreign allocation failed")
	}
	d := &Data{owned: owned[native.Data]{h: h, kind: "ffi.Data"}}
	runtime.SetFinalizer(d, func(d *Data) { d.finalized(native.DataDelete) })
	return d
}

// Raw returns the foreign handle for passing to another native call. The
// handle is valid only while d is reachable and open.
func (d *Data) Raw() native.Data {
	return d.get()
}

// Len returns the buffer length.
func (d *Data) Len() int {
	n := native.DataSize(d.get())
	runtime.KeepAlive(d)
	return n
}

// Bytes returns a Go copy of the buffer.
func (d *Data) Bytes() []byte {
	b := native.DataBytes(d.get())
	runtime.KeepAlive(d)
	return b
}

// Close releases the buffer. It is safe to call more than once.
func (d *Data) Close() error {
	if d.release(native.DataDelete) {
		runtime.SetFinalizer(d, nil)
	}
	return nil
}
