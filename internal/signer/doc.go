// Package signer holds the two chain-family signers: Ed25519 for
// Solana-style messages and secp256k1 ECDSA for EVM-style pre-hashed
// messages.
//
// Both signers are stateless pure functions of (guarded seed, message).
// They borrow the guarded buffer for the duration of the call only and
// retain no reference to it afterwards; destroying the buffer remains the
// caller's job.
package signer
