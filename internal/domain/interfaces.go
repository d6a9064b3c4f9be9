package domain

// Signer is the decrypt-sign-destroy pipeline, one method per chain family
// plus raw entry points for keys the caller already holds. Implementations
// must guarantee that plaintext key material is erased on every exit path.
type Signer interface {
	// Encrypt seals a 32-byte seed (or the seed half of a 64-byte keypair)
	// under the passphrase and returns the at-rest container.
	Encrypt(privateKey []byte, passphrase string) (KeyContainer, error)

	// DecryptAndSign opens a container and signs message with Ed25519.
	DecryptAndSign(containerJSON, passphrase string, message []byte) (SigningResult, error)

	// DecryptAndSignEVM opens a container and signs a pre-computed 32-byte
	// hash with secp256k1 ECDSA.
	DecryptAndSignEVM(containerJSON, passphrase string, messageHash []byte) (EVMSigningResult, error)

	// SignMessage signs with a caller-supplied plaintext seed. The seed is
	// copied into guarded memory first; erasing the caller's copy is the
	// caller's responsibility.
	SignMessage(privateKey, message []byte) (SigningResult, error)

	// SignEVMHash is the raw secp256k1 counterpart of SignMessage.
	SignEVMHash(privateKey, messageHash []byte) (EVMSigningResult, error)
}

// ContainerStore persists encrypted key containers by name.
type ContainerStore interface {
	SaveContainer(name string, c KeyContainer) error
	LoadContainer(name string) (KeyContainer, error)
	ListContainers() ([]string, error)
}
