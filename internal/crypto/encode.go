package crypto

import (
	"encoding/base64"

	"github.com/mr-tron/base58"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// B64Decode decodes standard base64.
func B64Decode(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(s) }

// B58 returns Bitcoin-alphabet base58 encoding, as used for Solana keys
// and signatures.
func B58(b []byte) string { return base58.Encode(b) }
