package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"coldsign/internal/app"
)

// envPermissive switches to permissive memory locking when set to "1" or
// "true". Intended only for constrained or test environments; the
// --permissive flag is the explicit way to opt in.
const envPermissive = "COLDSIGN_ALLOW_UNLOCKED_MEMORY"

var (
	home       string
	passphrase string
	permissive bool
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "coldsign",
		Short: "Cold-wallet signing core for Solana and EVM keys",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".coldsign")
			}
			if v := os.Getenv(envPermissive); v == "1" || strings.EqualFold(v, "true") {
				permissive = true
			}

			logger, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			appCtx = app.NewWire(app.Config{
				Home:       home,
				Permissive: permissive,
				Logger:     logger,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "container dir (default ~/.coldsign)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "container passphrase (prompted if omitted)")
	root.PersistentFlags().BoolVar(&permissive, "permissive", false, "tolerate memory-lock failures (insecure, test environments only)")

	root.AddCommand(keygenCmd(), encryptCmd(), signCmd(), signEVMCmd(), inspectCmd(), listCmd())
	return root.Execute()
}

// promptPassphrase returns the -p flag value or reads the passphrase from
// the terminal without echo.
func promptPassphrase() (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fmt.Fprint(os.Stderr, "Passphrase: ")
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
