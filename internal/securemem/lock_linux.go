//go:build linux

package securemem

import "golang.org/x/sys/unix"

// lockMemory pins b's pages into RAM and excludes them from core dumps.
func lockMemory(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := unix.Mlock(b); err != nil {
		return err
	}
	// Keeping the pages out of core dumps is best effort; an old kernel
	// without MADV_DONTDUMP should not fail the lock.
	_ = unix.Madvise(b, unix.MADV_DONTDUMP)
	return nil
}

func unlockMemory(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	return unix.Munlock(b)
}
