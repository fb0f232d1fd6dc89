package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/roost-dev/roost/internal/cli/session"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, redirect string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the Roost API",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runLogin(deps, email, password, redirect)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set ROOST_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set ROOST_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&redirect, "redirect", "", "Explicit post-login destination (overrides the role default)")

	return cmd
}

func runLogin(deps *Deps, email, password, redirect string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("ROOST_EMAIL")
	}
	if password == "" {
		password = os.Getenv("ROOST_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or ROOST_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Fprint(deps.Out, "Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Fprintln(deps.Out)
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or ROOST_PASSWORD env var)")
		}
	}

	sess, err := deps.Controller.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintln(deps.Out, "✓ Login successful!")
	fmt.Fprintf(deps.Out, "  User: %s (%s)\n", sess.Identity.Name, sess.Identity.Email)
	if sess.Identity.Role != session.RoleUser {
		fmt.Fprintf(deps.Out, "  Role: %s\n", sess.Identity.Role)
	}
	fmt.Fprintf(deps.Out, "  Dashboard: %s\n", session.ResolveRedirect(sess, redirect))

	return nil
}
