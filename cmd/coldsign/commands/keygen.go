package commands

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"coldsign/internal/util/memzero"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a fresh seed and store it as an encrypted container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := promptPassphrase()
			if err != nil {
				return err
			}

			seed := make([]byte, 32)
			if _, err := rand.Read(seed); err != nil {
				return err
			}
			defer memzero.Zero(seed)

			c, err := appCtx.Signer.Encrypt(seed, pass)
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
