package signer_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/signer"
)

func randomSeed(t *testing.T) []byte {
	t.Helper()
	seed := make([]byte, 32)
	_, err := rand.Read(seed)
	require.NoError(t, err)
	return seed
}

func seedBuffer(t *testing.T, seed []byte) *securemem.Buffer {
	t.Helper()
	buf, err := securemem.FromBytes(seed, securemem.Permissive)
	require.NoError(t, err)
	t.Cleanup(buf.Destroy)
	return buf
}

func TestSignMessageVerifies(t *testing.T) {
	seed := randomSeed(t)
	message := []byte("transfer 1 SOL to the cold wallet")

	res, err := signer.SignMessage(seedBuffer(t, seed), message)
	require.NoError(t, err)

	priv := ed25519.NewKeyFromSeed(seed)
	pub := priv.Public().(ed25519.PublicKey)

	assert.Equal(t, base58.Encode(pub), res.PublicKey)

	sig, err := base58.Decode(res.Signature)
	require.NoError(t, err)
	require.Len(t, sig, ed25519.SignatureSize)
	assert.True(t, ed25519.Verify(pub, message, sig))
}

func TestSignMessageTransactionBlob(t *testing.T) {
	seed := randomSeed(t)
	message := []byte("serialized transaction message")

	res, err := signer.SignMessage(seedBuffer(t, seed), message)
	require.NoError(t, err)
	require.NotEmpty(t, res.SignedTransaction)

	blob, err := base64.StdEncoding.DecodeString(res.SignedTransaction)
	require.NoError(t, err)
	require.Len(t, blob, 1+ed25519.SignatureSize+len(message))

	sig, err := base58.Decode(res.Signature)
	require.NoError(t, err)

	assert.Equal(t, byte(1), blob[0])
	assert.Equal(t, sig, blob[1:1+ed25519.SignatureSize])
	assert.Equal(t, message, blob[1+ed25519.SignatureSize:])
}

func TestSignMessageShortMessageSkipsBlob(t *testing.T) {
	for _, message := range [][]byte{nil, {0x01}, {0x01, 0x02}} {
		res, err := signer.SignMessage(seedBuffer(t, randomSeed(t)), message)
		require.NoError(t, err)
		assert.Empty(t, res.SignedTransaction)
		assert.NotEmpty(t, res.Signature)
	}
}

func TestSignMessageRejectsBadSeedLength(t *testing.T) {
	for _, n := range []int{16, 31, 33, 64} {
		buf := seedBuffer(t, make([]byte, n))
		_, err := signer.SignMessage(buf, []byte("message"))
		var kf *domain.InvalidKeyFormatError
		require.ErrorAs(t, err, &kf, "seed length %d", n)
		assert.Equal(t, n, kf.Length)
	}
}

func TestEd25519PublicKey(t *testing.T) {
	seed := randomSeed(t)
	got, err := signer.Ed25519PublicKey(seedBuffer(t, seed))
	require.NoError(t, err)

	pub := ed25519.NewKeyFromSeed(seed).Public().(ed25519.PublicKey)
	assert.Equal(t, base58.Encode(pub), got)
}
