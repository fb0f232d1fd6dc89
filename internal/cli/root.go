package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roost-dev/roost/internal/cli/commands"
)

var version = "dev" // Will be set during build

var rootCmd = &cobra.Command{
	Use:   "roost",
	Short: "Roost - Find your next home from the terminal",
	Long: `Roost CLI - Browse, search and save real-estate listings.

Log in once and every command runs with your identity; agents can submit
listings and receive inquiries from interested users.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("roost version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewListCmd())
	rootCmd.AddCommand(commands.NewSearchCmd())
	rootCmd.AddCommand(commands.NewShowCmd())
	rootCmd.AddCommand(commands.NewSaveCmd())
	rootCmd.AddCommand(commands.NewSavedCmd())
	rootCmd.AddCommand(commands.NewSubmitCmd())
	rootCmd.AddCommand(commands.NewInquireCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
