package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coldsign/internal/container"
)

func signEVMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-evm <name> <hash-hex>",
		Short: "Decrypt a container and sign a 32-byte EVM transaction hash",
		Long: "Decrypt a container and sign a pre-computed transaction hash with\n" +
			"secp256k1 ECDSA. The hash must be the 32-byte Keccak-256 digest of\n" +
			"the encoded transaction; coldsign never hashes transaction data itself.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return fmt.Errorf("hash must be hex: %w", err)
			}

			pass, err := promptPassphrase()
			if err != nil {
				return err
			}

			c, err := appCtx.Store.LoadContainer(args[0])
			if err != nil {
				return err
			}
			containerJSON, err := container.ToJSON(c)
			if err != nil {
				return err
			}

			res, err := appCtx.Signer.DecryptAndSignEVM(containerJSON, pass, hash)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}
