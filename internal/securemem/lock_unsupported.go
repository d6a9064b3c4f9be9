//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package securemem

import "errors"

var errLockUnsupported = errors.New("memory locking not supported on this platform")

func lockMemory(b []byte) error { return errLockUnsupported }

func unlockMemory(b []byte) error { return nil }
