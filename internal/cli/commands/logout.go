package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runLogout(deps)
		},
	}
}

func runLogout(deps *Deps) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		fmt.Fprintln(deps.Out, "Not logged in.")
		return nil
	}

	if err := deps.Controller.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	// Saved listings are keyed by identity and survive logout
	fmt.Fprintf(deps.Out, "✓ Logged out %s\n", sess.Identity.Email)
	return nil
}
