package signer

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"coldsign/internal/domain"
	"coldsign/internal/securemem"
)

// EVMHashSize is the required length of a pre-computed message hash. The
// core never hashes transaction data itself; callers supply the
// Keccak-256 digest.
const EVMHashSize = 32

// SignEVMHash produces a recoverable secp256k1 signature over a
// pre-computed 32-byte hash using the seed held in the guarded buffer.
//
// The signature is the 65-byte r||s||v form with v = recovery id + 27 per
// EVM convention. The address is the last 20 bytes of
// Keccak-256(uncompressed public key without its format byte), encoded as
// 0x-prefixed lowercase hex with no mixed-case checksum.
func SignEVMHash(seed *securemem.Buffer, messageHash []byte) (domain.EVMSigningResult, error) {
	if len(messageHash) != EVMHashSize {
		return domain.EVMSigningResult{}, &domain.InvalidTransactionError{
			Reason: fmt.Sprintf("EVM message hash must be %d bytes, got %d", EVMHashSize, len(messageHash)),
		}
	}
	raw := seed.Bytes()
	if raw == nil {
		return domain.EVMSigningResult{}, securemem.ErrDestroyed
	}
	if seed.Len() != domain.SeedSize {
		return domain.EVMSigningResult{}, &domain.InvalidKeyFormatError{Length: seed.Len()}
	}

	// ToECDSA validates the scalar (rejects zero and values past the curve
	// order) and copies it into the key struct; wipe that copy on the way
	// out.
	priv, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return domain.EVMSigningResult{}, &domain.SigningError{Reason: "invalid secp256k1 key", Err: err}
	}
	defer zeroScalar(priv)

	sig, err := ethcrypto.Sign(messageHash, priv)
	if err != nil {
		return domain.EVMSigningResult{}, &domain.SigningError{Reason: "ECDSA signing failed", Err: err}
	}
	sig[64] += 27

	addr := ethcrypto.PubkeyToAddress(priv.PublicKey)

	return domain.EVMSigningResult{
		Signature: "0x" + hex.EncodeToString(sig),
		Address:   "0x" + hex.EncodeToString(addr[:]),
		V:         sig[64],
	}, nil
}

// zeroScalar wipes the private scalar inside an ecdsa key. The public
// point is left alone.
func zeroScalar(k *ecdsa.PrivateKey) {
	if k == nil || k.D == nil {
		return
	}
	bits := k.D.Bits()
	for i := range bits {
		bits[i] = 0
	}
}
