package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrDecryptionFailed covers both a wrong passphrase and tampered or
	// corrupted container data. The two causes are deliberately
	// indistinguishable so callers cannot be used as a decryption oracle.
	ErrDecryptionFailed = errors.New("decryption failed: wrong passphrase or corrupted container")

	// ErrMemoryLock is returned when a strict-mode buffer cannot be pinned
	// against paging.
	ErrMemoryLock = errors.New("cannot lock memory against paging")
)

// InvalidKeyFormatError reports a key or seed with an unsupported byte length.
type InvalidKeyFormatError struct {
	Length int
}

func (e *InvalidKeyFormatError) Error() string {
	return fmt.Sprintf("invalid key format: unsupported length %d", e.Length)
}

// KeyDerivationError reports rejected derivation parameters or an internal
// derivation failure.
type KeyDerivationError struct {
	Reason string
}

func (e *KeyDerivationError) Error() string {
	return "key derivation failed: " + e.Reason
}

// SigningError reports that the underlying signature scheme rejected the
// operation, for example an invalid secp256k1 scalar.
type SigningError struct {
	Reason string
	Err    error
}

func (e *SigningError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("signing failed: %s: %v", e.Reason, e.Err)
	}
	return "signing failed: " + e.Reason
}

func (e *SigningError) Unwrap() error { return e.Err }

// InvalidTransactionError reports a message or hash that fails a
// scheme-specific shape check.
type InvalidTransactionError struct {
	Reason string
}

func (e *InvalidTransactionError) Error() string {
	return "invalid transaction: " + e.Reason
}

// ContainerError reports a malformed container record: bad JSON, missing or
// undecodable fields, or an unsupported format version.
type ContainerError struct {
	Reason string
	Err    error
}

func (e *ContainerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("container error: %s: %v", e.Reason, e.Err)
	}
	return "container error: " + e.Reason
}

func (e *ContainerError) Unwrap() error { return e.Err }

// SerializationError reports a failure to encode a container or result.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
