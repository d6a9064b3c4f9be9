// Package memzero erases sensitive byte slices in place.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Wipe zeroes b with a plain loop the compiler is not allowed to elide.
// Use it where allocating a scratch slice (as Zero does) is undesirable,
// for example inside release paths of locked buffers.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
