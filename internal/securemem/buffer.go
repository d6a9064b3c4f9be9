package securemem

import (
	"errors"
	"fmt"
	"runtime"

	"coldsign/internal/domain"
	"coldsign/internal/util/memzero"
)

// Mode selects how a Buffer reacts when its memory cannot be locked
// against paging.
type Mode int

const (
	// Strict refuses to proceed without locked memory. Creation fails
	// before any sensitive byte is written.
	Strict Mode = iota
	// Permissive tolerates a failed lock. Intended for constrained or test
	// environments only; callers should surface the degraded posture.
	Permissive
)

func (m Mode) String() string {
	if m == Permissive {
		return "permissive"
	}
	return "strict"
}

// ErrDestroyed is returned by accessors on a buffer whose memory has
// already been released.
var ErrDestroyed = errors.New("secure buffer already destroyed")

// Buffer is a fixed-length byte container whose backing memory is locked
// against paging and zeroed before release. The backing slice is allocated
// once and never reallocated, so views handed out by Bytes and View stay
// valid until Destroy.
type Buffer struct {
	data      []byte
	locked    bool
	destroyed bool
}

// New allocates a zero-initialized buffer of exactly length bytes. In
// Strict mode a failed memory lock aborts creation with
// domain.ErrMemoryLock; no plaintext can ever have been written at that
// point since the buffer starts zeroed.
func New(length int, mode Mode) (*Buffer, error) {
	if length <= 0 {
		return nil, &domain.InvalidKeyFormatError{Length: length}
	}
	b := &Buffer{data: make([]byte, length)}
	if err := lockMemory(b.data); err != nil {
		if mode == Strict {
			return nil, fmt.Errorf("%w: %v", domain.ErrMemoryLock, err)
		}
	} else {
		b.locked = true
	}
	// Backstop for buffers abandoned without Destroy. The normal path is
	// an explicit deferred Destroy inside the owning operation.
	runtime.SetFinalizer(b, (*Buffer).Destroy)
	return b, nil
}

// FromBytes allocates a buffer of len(source) bytes and copies source in.
// The lock is acquired before the copy, so in Strict mode no plaintext is
// written into unlockable memory. The caller keeps ownership of source and
// is responsible for erasing its own copy.
func FromBytes(source []byte, mode Mode) (*Buffer, error) {
	b, err := New(len(source), mode)
	if err != nil {
		return nil, err
	}
	copy(b.data, source)
	return b, nil
}

// Len returns the fixed length of the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Locked reports whether the backing memory is pinned against paging.
func (b *Buffer) Locked() bool { return b.locked }

// Bytes returns the full backing slice. The slice aliases the guarded
// memory: it must not be retained past the buffer's lifetime and must not
// be copied outside it. Returns nil once the buffer is destroyed.
func (b *Buffer) Bytes() []byte {
	if b.destroyed {
		return nil
	}
	return b.data
}

// View returns a bounded window into the buffer. A request crossing the
// buffer's fixed bounds fails with InvalidKeyFormatError carrying the
// actual length.
func (b *Buffer) View(offset, length int) ([]byte, error) {
	if b.destroyed {
		return nil, ErrDestroyed
	}
	if offset < 0 || length < 0 || offset+length > len(b.data) {
		return nil, &domain.InvalidKeyFormatError{Length: len(b.data)}
	}
	return b.data[offset : offset+length], nil
}

// Zeroize overwrites every byte with zero. Idempotent; it is also invoked
// implicitly by Destroy, so calling it early only narrows the window in
// which plaintext is resident.
func (b *Buffer) Zeroize() {
	if b.destroyed {
		return
	}
	memzero.Wipe(b.data)
}

// Destroy zeroizes the buffer, unlocks its memory and marks it unusable.
// Safe to call more than once; the usual pattern is
//
//	buf, err := securemem.FromBytes(seed, mode)
//	if err != nil { ... }
//	defer buf.Destroy()
//
// which guarantees erasure on the success path, every error path, and any
// panic that unwinds the owning call.
func (b *Buffer) Destroy() {
	if b.destroyed {
		return
	}
	memzero.Wipe(b.data)
	if b.locked {
		// Unlock failures leave the pages pinned, which is the safe
		// direction; nothing sensitive remains either way.
		_ = unlockMemory(b.data)
		b.locked = false
	}
	b.destroyed = true
	runtime.SetFinalizer(b, nil)
}
