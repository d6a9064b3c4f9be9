package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"coldsign/internal/util/memzero"
)

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt <name> <key-hex>",
		Short: "Seal an existing private key into an encrypted container",
		Long: "Seal an existing private key into an encrypted container.\n" +
			"The key is hex: a 32-byte seed or a 64-byte keypair encoding,\n" +
			"of which only the seed half is kept.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return fmt.Errorf("key must be hex: %w", err)
			}
			defer memzero.Zero(key)

			pass, err := promptPassphrase()
			if err != nil {
				return err
			}

			c, err := appCtx.Signer.Encrypt(key, pass)
			if err != nil {
				return err
			}
			if err := appCtx.Store.SaveContainer(args[0], c); err != nil {
				return err
			}
			fmt.Printf("Container %q created.\nPublic key: %s\n", args[0], c.PublicKey)
			return nil
		},
	}
}
