package ffi

import (
	"sync/atomic"

	"github.com/Klingon-tech/walletscan/internal/log"
)

// owned is a single foreign handle and its release state.
type owned[H ~uintptr] struct {
	h        H
	kind     string
	released atomic.Bool
}

// get returns the handle, panicking if it has been released.
func (o *owned[H]) get() H {
	if o.released.Load() {
		panic(o.kind + ": use after release")
	}
	return o.h
}

// release calls free on the handle the first time it is called and reports
// whether it did.
func (o *owned[H]) release(free func(H)) bool {
	if !o.released.CompareAndSwap(false, true) {
		return false
	}
	free(o.h)
	return true
}

// finalized is run by the finalizer of an unreleased wrapper.
func (o *owned[H]) finalized(free func(H)) {
	if o.release(free) {
		log.FFI.Warn().Str("kind", o.kind).Msg("Handle released by finalizer, Close was not called")
	}
}
