// Package container implements the at-rest envelope format for key seeds:
// a versioned JSON record holding base64 salt, nonce and authenticated
// ciphertext, plus the base58 public identity stamped at encryption time.
//
// Encrypt seals a seed under an Argon2id-derived key with
// ChaCha20-Poly1305. Open re-derives the key and decrypts straight into a
// guarded buffer; an authentication failure is always reported as the
// single uniform domain.ErrDecryptionFailed so wrong-passphrase and
// tampered-data cases cannot be told apart.
package container
