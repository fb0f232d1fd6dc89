package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runWhoami(deps, remote)
		},
	}

	cmd.Flags().BoolVar(&remote, "remote", false, "Verify the session against the server")

	return cmd
}

func runWhoami(deps *Deps, remote bool) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		fmt.Fprintln(deps.Out, "Not logged in. Run 'roost login' first.")
		return nil
	}

	fmt.Fprintf(deps.Out, "%s (%s)\n", sess.Identity.Name, sess.Identity.Email)
	fmt.Fprintf(deps.Out, "Role: %s\n", sess.Identity.Role)
	fmt.Fprintf(deps.Out, "Credential: %s\n", sess.Credential.Scheme)

	if remote {
		user, err := deps.API.Me()
		if err != nil {
			return fmt.Errorf("session check failed: %w", err)
		}
		fmt.Fprintf(deps.Out, "Server confirms: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}
