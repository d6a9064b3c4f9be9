package container

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"coldsign/internal/crypto"
	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/signer"
	"coldsign/internal/util/memzero"
)

// Encrypt seals a private key under the passphrase and returns a fresh
// version-1 container.
//
// privateKey must be a 32-byte seed or a 64-byte secret-plus-public
// keypair encoding; only the leading seed half is ever encrypted or
// retained. The seed is staged through a guarded buffer and both it and
// the derived symmetric key are erased before returning, on success and on
// every error path.
func Encrypt(privateKey []byte, passphrase string, mode securemem.Mode) (domain.KeyContainer, error) {
	if len(privateKey) != domain.SeedSize && len(privateKey) != domain.KeypairSize {
		return domain.KeyContainer{}, &domain.InvalidKeyFormatError{Length: len(privateKey)}
	}

	seed, err := securemem.FromBytes(privateKey[:domain.SeedSize], mode)
	if err != nil {
		return domain.KeyContainer{}, err
	}
	defer seed.Destroy()

	salt := make([]byte, domain.SaltSize)
	nonce := make([]byte, domain.NonceSize)
	if _, err := rand.Read(salt); err != nil {
		return domain.KeyContainer{}, fmt.Errorf("generate salt: %w", err)
	}
	if _, err := rand.Read(nonce); err != nil {
		return domain.KeyContainer{}, fmt.Errorf("generate nonce: %w", err)
	}

	key, err := crypto.DeriveKey(passphrase, salt, mode)
	if err != nil {
		return domain.KeyContainer{}, err
	}
	defer key.Destroy()

	aead, err := newAEAD(key)
	if err != nil {
		return domain.KeyContainer{}, err
	}
	ciphertext := aead.Seal(nil, nonce, seed.Bytes(), nil)

	publicKey, err := signer.Ed25519PublicKey(seed)
	if err != nil {
		return domain.KeyContainer{}, err
	}

	return domain.KeyContainer{
		Version:    domain.ContainerVersion,
		Salt:       crypto.B64(salt),
		Nonce:      crypto.B64(nonce),
		Ciphertext: crypto.B64(ciphertext),
		PublicKey:  publicKey,
	}, nil
}

// ToJSON serializes a container.
func ToJSON(c domain.KeyContainer) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", &domain.SerializationError{Err: err}
	}
	return string(b), nil
}

// Parse decodes and validates container JSON. Unknown future versions are
// a hard rejection.
func Parse(containerJSON string) (domain.KeyContainer, error) {
	var c domain.KeyContainer
	if err := json.Unmarshal([]byte(containerJSON), &c); err != nil {
		return domain.KeyContainer{}, &domain.ContainerError{Reason: "malformed JSON", Err: err}
	}
	if c.Version != domain.ContainerVersion {
		return domain.KeyContainer{}, &domain.ContainerError{
			Reason: fmt.Sprintf("unsupported container version %d", c.Version),
		}
	}
	if c.Salt == "" || c.Nonce == "" || c.Ciphertext == "" {
		return domain.KeyContainer{}, &domain.ContainerError{Reason: "missing required fields"}
	}
	return c, nil
}

// Open re-derives the symmetric key from the passphrase and the stored
// salt, authenticates and decrypts the ciphertext, and returns the
// plaintext seed in a guarded buffer owned by the caller.
//
// Any authentication failure, whether from a wrong passphrase or from
// tampered salt, nonce or ciphertext, is reported as
// domain.ErrDecryptionFailed.
func Open(c domain.KeyContainer, passphrase string, mode securemem.Mode) (*securemem.Buffer, error) {
	salt, err := decodeField("salt", c.Salt, domain.SaltSize)
	if err != nil {
		return nil, err
	}
	nonce, err := decodeField("nonce", c.Nonce, domain.NonceSize)
	if err != nil {
		return nil, err
	}
	ciphertext, err := decodeField("ciphertext", c.Ciphertext, 0)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(passphrase, salt, mode)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}

	// The decrypted slice is the only plaintext copy outside guarded
	// memory; move it in and wipe it immediately.
	seed, err := securemem.FromBytes(plaintext, mode)
	memzero.Zero(plaintext)
	if err != nil {
		return nil, err
	}
	return seed, nil
}

// OpenJSON parses container JSON and opens it in one step.
func OpenJSON(containerJSON, passphrase string, mode securemem.Mode) (*securemem.Buffer, error) {
	c, err := Parse(containerJSON)
	if err != nil {
		return nil, err
	}
	return Open(c, passphrase, mode)
}

func newAEAD(key *securemem.Buffer) (cipher.AEAD, error) {
	aead, err := chacha20poly1305.New(key.Bytes())
	if err != nil {
		return nil, &domain.KeyDerivationError{Reason: err.Error()}
	}
	return aead, nil
}

// decodeField base64-decodes a container field, enforcing its fixed raw
// size when want is non-zero.
func decodeField(name, value string, want int) ([]byte, error) {
	raw, err := crypto.B64Decode(value)
	if err != nil {
		return nil, &domain.ContainerError{Reason: "undecodable " + name, Err: err}
	}
	if want != 0 && len(raw) != want {
		return nil, &domain.ContainerError{
			Reason: fmt.Sprintf("%s must be %d bytes, got %d", name, want, len(raw)),
		}
	}
	return raw, nil
}
