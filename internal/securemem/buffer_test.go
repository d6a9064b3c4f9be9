package securemem_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldsign/internal/domain"
	"coldsign/internal/securemem"
)

func TestNewZeroInitialized(t *testing.T) {
	buf, err := securemem.New(32, securemem.Permissive)
	require.NoError(t, err)
	defer buf.Destroy()

	assert.Equal(t, 32, buf.Len())
	assert.True(t, bytes.Equal(buf.Bytes(), make([]byte, 32)))
}

func TestNewRejectsNonPositiveLength(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := securemem.New(n, securemem.Permissive)
		var kf *domain.InvalidKeyFormatError
		require.ErrorAs(t, err, &kf)
		assert.Equal(t, n, kf.Length)
	}
}

func TestFromBytesCopiesWithoutAliasing(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	buf, err := securemem.FromBytes(src, securemem.Permissive)
	require.NoError(t, err)
	defer buf.Destroy()

	require.Equal(t, src, buf.Bytes())

	// Mutating the source must not reach the guarded copy.
	src[0] = 0xFF
	assert.Equal(t, byte(1), buf.Bytes()[0])
}

func TestViewBounds(t *testing.T) {
	buf, err := securemem.FromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8}, securemem.Permissive)
	require.NoError(t, err)
	defer buf.Destroy()

	v, err := buf.View(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5, 6}, v)

	for _, req := range [][2]int{{0, 9}, {8, 1}, {-1, 2}, {4, -1}} {
		_, err := buf.View(req[0], req[1])
		var kf *domain.InvalidKeyFormatError
		require.ErrorAs(t, err, &kf, "view(%d,%d)", req[0], req[1])
		assert.Equal(t, 8, kf.Length)
	}
}

func TestZeroizeIdempotent(t *testing.T) {
	buf, err := securemem.FromBytes([]byte{0xAA, 0xBB, 0xCC}, securemem.Permissive)
	require.NoError(t, err)
	defer buf.Destroy()

	buf.Zeroize()
	assert.Equal(t, []byte{0, 0, 0}, buf.Bytes())
	buf.Zeroize()
	assert.Equal(t, []byte{0, 0, 0}, buf.Bytes())
}

// TestDestroyErasesBackingMemory inspects the backing slice directly after
// Destroy: every byte must read zero even though the view was taken while
// the buffer still held plaintext.
func TestDestroyErasesBackingMemory(t *testing.T) {
	buf, err := securemem.FromBytes([]byte{0xDE, 0xAD, 0xBE, 0xEF}, securemem.Permissive)
	require.NoError(t, err)

	backing := buf.Bytes()
	buf.Destroy()

	assert.Equal(t, make([]byte, 4), backing)
	assert.Nil(t, buf.Bytes())

	_, err = buf.View(0, 1)
	assert.ErrorIs(t, err, securemem.ErrDestroyed)

	// Destroy is safe to repeat.
	buf.Destroy()
}

// TestDestroyErasesOnFailurePath mirrors the pipeline's deferred-destroy
// discipline: the buffer must come back zeroed even when the operation that
// owned it failed partway through.
func TestDestroyErasesOnFailurePath(t *testing.T) {
	var backing []byte

	err := func() (err error) {
		buf, err := securemem.FromBytes([]byte{9, 9, 9, 9}, securemem.Permissive)
		if err != nil {
			return err
		}
		defer buf.Destroy()
		backing = buf.Bytes()
		return errors.New("simulated signing failure")
	}()

	require.Error(t, err)
	assert.Equal(t, make([]byte, 4), backing)
}

func TestStrictModeLocks(t *testing.T) {
	buf, err := securemem.New(32, securemem.Strict)
	if errors.Is(err, domain.ErrMemoryLock) {
		t.Skipf("mlock unavailable in this environment: %v", err)
	}
	require.NoError(t, err)
	defer buf.Destroy()
	assert.True(t, buf.Locked())
}
