package crypto

import (
	"golang.org/x/crypto/argon2"

	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/util/memzero"
)

// KeyBytes is the size of a derived symmetric key.
const KeyBytes = 32

// Argon2id cost parameters. Intentionally expensive: 64 MiB of memory,
// three passes, four lanes, to resist offline brute force of the
// passphrase.
const (
	kdfMemoryKiB = 64 * 1024
	kdfPasses    = 3
	kdfLanes     = 4
)

// DeriveKey stretches a passphrase and salt into a 32-byte symmetric key.
// Deterministic: the same passphrase and salt always produce the same key,
// which is what lets a container be decrypted by re-deriving. The key is
// returned in a guarded buffer owned by the caller; the transient slice
// produced by the KDF is wiped before returning.
func DeriveKey(passphrase string, salt []byte, mode securemem.Mode) (*securemem.Buffer, error) {
	if len(salt) == 0 {
		return nil, &domain.KeyDerivationError{Reason: "empty salt"}
	}
	key := argon2.IDKey([]byte(passphrase), salt, kdfPasses, kdfMemoryKiB, kdfLanes, KeyBytes)
	buf, err := securemem.FromBytes(key, mode)
	memzero.Zero(key)
	if err != nil {
		return nil, err
	}
	return buf, nil
}
