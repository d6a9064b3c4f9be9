// Package signing wires the container, key-derivation and signer layers
// into the decrypt-sign-destroy pipeline.
//
// Every entry point stages plaintext key material in a guarded buffer and
// destroys it with defer, so erasure holds on the success path, every
// typed-error path and any panic that unwinds the call. The buffer-locking
// posture (Strict or Permissive) is an explicit constructor argument, not
// ambient state.
package signing
