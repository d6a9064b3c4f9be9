package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show a stored container's version and public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := appCtx.Store.LoadContainer(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Name:       %s\n", args[0])
			fmt.Printf("Version:    %d\n", c.Version)
			if c.PublicKey != "" {
				fmt.Printf("Public key: %s\n", c.PublicKey)
			} else {
				fmt.Println("Public key: (not recorded)")
			}
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored container names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Store.ListContainers()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println("No containers.")
				return nil
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}
