package signer

import (
	"crypto/ed25519"

	"coldsign/internal/crypto"
	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/util/memzero"
)

// minTransactionSize is the smallest message for which a signed
// transaction blob is assembled.
const minTransactionSize = 3

// SignMessage signs message verbatim (no pre-hash) with the Ed25519 seed
// held in the guarded buffer.
//
// For messages of at least minTransactionSize bytes the result also
// carries a minimal single-signature transaction blob: a one-byte
// signature count, the 64-byte signature, then the original message. The
// blob supports only single-signer layouts.
func SignMessage(seed *securemem.Buffer, message []byte) (domain.SigningResult, error) {
	raw := seed.Bytes()
	if raw == nil {
		return domain.SigningResult{}, securemem.ErrDestroyed
	}
	if seed.Len() != domain.SeedSize {
		return domain.SigningResult{}, &domain.InvalidKeyFormatError{Length: seed.Len()}
	}

	// The expanded private key is a transient copy of the seed; wipe it
	// once the signature and verifying key are out.
	priv := ed25519.NewKeyFromSeed(raw)
	defer memzero.Zero(priv)

	pub := priv.Public().(ed25519.PublicKey)
	sig := ed25519.Sign(priv, message)

	res := domain.SigningResult{
		Signature: crypto.B58(sig),
		PublicKey: crypto.B58(pub),
	}
	if len(message) >= minTransactionSize {
		blob := make([]byte, 0, 1+ed25519.SignatureSize+len(message))
		blob = append(blob, 1) // one signature
		blob = append(blob, sig...)
		blob = append(blob, message...)
		res.SignedTransaction = crypto.B64(blob)
	}
	return res, nil
}

// Ed25519PublicKey derives the base58 verifying key for the seed without
// signing anything. Used to stamp containers with their public identity.
func Ed25519PublicKey(seed *securemem.Buffer) (string, error) {
	raw := seed.Bytes()
	if raw == nil {
		return "", securemem.ErrDestroyed
	}
	if seed.Len() != domain.SeedSize {
		return "", &domain.InvalidKeyFormatError{Length: seed.Len()}
	}
	priv := ed25519.NewKeyFromSeed(raw)
	defer memzero.Zero(priv)
	return crypto.B58(priv.Public().(ed25519.PublicKey)), nil
}
