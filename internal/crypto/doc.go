// Package crypto exposes the minimal primitives shared by the signing core.
//
// Contents
//
//   - Passphrase key derivation into guarded memory (DeriveKey), Argon2id
//     with deliberately expensive parameters
//   - Text encodings used by the container format and signing results
//     (B64, B64Decode, B58)
//
// Callers own every guarded buffer returned here and must destroy it as
// soon as the derived key has been consumed.
package crypto
