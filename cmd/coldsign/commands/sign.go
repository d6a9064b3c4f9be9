package commands

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"coldsign/internal/container"
)

func signCmd() *cobra.Command {
	var messageB64 string

	cmd := &cobra.Command{
		Use:   "sign <name> [message]",
		Short: "Decrypt a container and sign a Solana-style message",
		Long: "Decrypt a container and sign a Solana-style message with Ed25519.\n" +
			"The message is taken verbatim from the argument, or from\n" +
			"--message-base64 for binary transaction messages.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			message, err := messageBytes(args, messageB64)
			if err != nil {
				return err
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

			res, err := appCtx.Signer.DecryptAndSign(containerJSON, pass, message)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
	cmd.Flags().StringVar(&messageB64, "message-base64", "", "message as base64 (overrides the argument)")
	return cmd
}

func messageBytes(args []string, b64 string) ([]byte, error) {
	if b64 != "" {
		return base64.StdEncoding.DecodeString(b64)
	}
	if len(args) < 2 {
		return nil, fmt.Errorf("message required (argument or --message-base64)")
	}
	return []byte(args[1]), nil
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
