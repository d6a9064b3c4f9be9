package domain

// SigningResult is the outcome of an Ed25519 (Solana-style) signing call.
type SigningResult struct {
	// Signature is base58 and decodes to 64 bytes.
	Signature string `json:"signature"`
	// SignedTransaction is a base64 single-signature transaction blob
	// (signature count, signature, original message). Present only for
	// messages of at least 3 bytes.
	SignedTransaction string `json:"signed_transaction,omitempty"`
	// PublicKey is the base58 verifying key that produced the signature.
	PublicKey string `json:"public_key"`
}

// EVMSigningResult is the outcome of a secp256k1 recoverable signing call.
type EVMSigningResult struct {
	// Signature is 0x-prefixed hex of the 65-byte r||s||v signature.
	Signature string `json:"signature"`
	// Address is the 0x-prefixed lowercase hex EVM address of the signer.
	Address string `json:"address"`
	// V is the EVM recovery byte, 27 or 28.
	V byte `json:"v"`
}
