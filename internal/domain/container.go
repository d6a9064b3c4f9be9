package domain

// ContainerVersion is the current revision of the at-rest container format.
const ContainerVersion = 1

// KeyContainer is the at-rest and transport record for an encrypted key seed.
//
// Salt, Nonce and Ciphertext are standard base64. PublicKey is the base58
// Ed25519 verifying key derived at encryption time, kept for verification;
// it may be empty for containers produced by other tooling.
//
// A container is immutable once constructed: encryption produces a new one
// and decryption never mutates it.
type KeyContainer struct {
	Version    int    `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	PublicKey  string `json:"public_key,omitempty"`
}

// Fixed sizes of the container's raw fields.
const (
	SaltSize  = 32
	NonceSize = 12
	SeedSize  = 32
	// KeypairSize is a secret-plus-public Ed25519 keypair encoding; only the
	// leading seed half is ever retained.
	KeypairSize = 64
)
