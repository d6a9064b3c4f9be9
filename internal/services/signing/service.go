package signing

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"coldsign/internal/container"
	"coldsign/internal/domain"
	"coldsign/internal/securemem"
	"coldsign/internal/signer"
)

// Service performs all signing-core operations under one explicit
// buffer-locking policy. It holds no key material between calls; each
// operation allocates and destroys its own guarded buffers, so concurrent
// calls share no mutable state.
type Service struct {
	mode securemem.Mode
	log  *zap.Logger

	warnOnce sync.Once
}

// New returns a service using the given locking mode. A nil logger
// disables logging. Permissive mode is announced once as a security risk.
func New(mode securemem.Mode, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if mode == securemem.Permissive {
		log.Warn("permissive memory locking: plaintext key material may be swappable",
			zap.String("mode", mode.String()))
	}
	return &Service{mode: mode, log: log}
}

// Encrypt seals a 32-byte seed (or the seed half of a 64-byte keypair)
// under the passphrase.
func (s *Service) Encrypt(privateKey []byte, passphrase string) (domain.KeyContainer, error) {
	return container.Encrypt(privateKey, passphrase, s.mode)
}

// EncryptToJSON is Encrypt plus serialization, for callers that store or
// transport the container as text.
func (s *Service) EncryptToJSON(privateKey []byte, passphrase string) (string, error) {
	c, err := s.Encrypt(privateKey, passphrase)
	if err != nil {
		return "", err
	}
	return container.ToJSON(c)
}

// DecryptAndSign opens the container with the passphrase and signs message
// with Ed25519. The decrypted seed lives only inside a guarded buffer that
// is destroyed whether signing succeeds or fails.
func (s *Service) DecryptAndSign(containerJSON, passphrase string, message []byte) (domain.SigningResult, error) {
	seed, err := container.OpenJSON(containerJSON, passphrase, s.mode)
	if err != nil {
		return domain.SigningResult{}, err
	}
	defer seed.Destroy()
	s.noteLockState(seed)

	return signer.SignMessage(seed, message)
}

// DecryptAndSignEVM opens the container and signs a pre-computed 32-byte
// hash with secp256k1 ECDSA. The hash shape is checked before the
// expensive key derivation runs.
func (s *Service) DecryptAndSignEVM(containerJSON, passphrase string, messageHash []byte) (domain.EVMSigningResult, error) {
	if len(messageHash) != signer.EVMHashSize {
		return domain.EVMSigningResult{}, &domain.InvalidTransactionError{
			Reason: fmt.Sprintf("EVM message hash must be %d bytes, got %d", signer.EVMHashSize, len(messageHash)),
		}
	}

	seed, err := container.OpenJSON(containerJSON, passphrase, s.mode)
	if err != nil {
		return domain.EVMSigningResult{}, err
	}
	defer seed.Destroy()
	s.noteLockState(seed)

	return signer.SignEVMHash(seed, messageHash)
}

// SignMessage signs with a caller-held plaintext seed. The seed is copied
// into a guarded buffer first; the caller still owns, and should erase,
// its own copy.
func (s *Service) SignMessage(privateKey, message []byte) (domain.SigningResult, error) {
	seed, err := securemem.FromBytes(privateKey, s.mode)
	if err != nil {
		return domain.SigningResult{}, err
	}
	defer seed.Destroy()
	s.noteLockState(seed)

	return signer.SignMessage(seed, message)
}

// SignEVMHash is the raw secp256k1 counterpart of SignMessage.
func (s *Service) SignEVMHash(privateKey, messageHash []byte) (domain.EVMSigningResult, error) {
	if len(messageHash) != signer.EVMHashSize {
		return domain.EVMSigningResult{}, &domain.InvalidTransactionError{
			Reason: fmt.Sprintf("EVM message hash must be %d bytes, got %d", signer.EVMHashSize, len(messageHash)),
		}
	}

	seed, err := securemem.FromBytes(privateKey, s.mode)
	if err != nil {
		return domain.EVMSigningResult{}, err
	}
	defer seed.Destroy()
	s.noteLockState(seed)

	return signer.SignEVMHash(seed, messageHash)
}

// noteLockState logs once if buffers come back unlocked, which can only
// happen in Permissive mode.
func (s *Service) noteLockState(buf *securemem.Buffer) {
	if buf.Locked() {
		return
	}
	s.warnOnce.Do(func() {
		s.log.Warn("guarded buffer is not locked against paging; operating in degraded posture")
	})
}

// Compile-time assertion that Service implements domain.Signer.
var _ domain.Signer = (*Service)(nil)
