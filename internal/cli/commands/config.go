package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roost-dev/roost/internal/cli/userconfig"
)

// NewConfigCmd creates the config command group
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set-url <api-url>",
		Short: "Set the Roost API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := userconfig.SetAPIURL(args[0]); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
			fmt.Printf("API URL set to %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("API URL: %s\n", userconfig.APIBaseURL())
			return nil
		},
	})

	return cmd
}
