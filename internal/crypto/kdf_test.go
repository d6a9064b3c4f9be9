package crypto_test

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coldsign/internal/crypto"
	"coldsign/internal/domain"
	"coldsign/internal/securemem"
)

func randomSalt(t *testing.T) []byte {
	t.Helper()
	salt := make([]byte, 32)
	_, err := rand.Read(salt)
	require.NoError(t, err)
	return salt
}

func TestDeriveKeyDeterministic(t *testing.T) {
	salt := randomSalt(t)

	a, err := crypto.DeriveKey("correct horse battery staple", salt, securemem.Permissive)
	require.NoError(t, err)
	defer a.Destroy()

	b, err := crypto.DeriveKey("correct horse battery staple", salt, securemem.Permissive)
	require.NoError(t, err)
	defer b.Destroy()

	assert.Equal(t, crypto.KeyBytes, a.Len())
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestDeriveKeySaltChangesOutput(t *testing.T) {
	a, err := crypto.DeriveKey("passphrase", randomSalt(t), securemem.Permissive)
	require.NoError(t, err)
	defer a.Destroy()

	b, err := crypto.DeriveKey("passphrase", randomSalt(t), securemem.Permissive)
	require.NoError(t, err)
	defer b.Destroy()

	assert.NotEqual(t, a.Bytes(), b.Bytes())
}

func TestDeriveKeyEmptySalt(t *testing.T) {
	_, err := crypto.DeriveKey("passphrase", nil, securemem.Permissive)
	var kd *domain.KeyDerivationError
	require.ErrorAs(t, err, &kd)
}
