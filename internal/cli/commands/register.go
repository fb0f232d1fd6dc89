package commands

import (
	"fmt"
	"syscall"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/roost-dev/roost/internal/cli/session"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var name, email, password, role string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a Roost account",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runRegister(deps, name, email, password, role)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&role, "role", "", "Account role: USER or AGENT (will prompt if not provided)")

	return cmd
}

func runRegister(deps *Deps, name, email, password, role string) error {
	if name == "" {
		return fmt.Errorf("name is required (use --name flag)")
	}
	if email == "" {
		return fmt.Errorf("email is required (use --email flag)")
	}

	interactive := term.IsTerminal(int(syscall.Stdin))

	if password == "" {
		if !interactive {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag)")
		}
		fmt.Fprint(deps.Out, "Password: ")
		bytePassword, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(bytePassword)
		fmt.Fprintln(deps.Out)
	}

	if role == "" {
		if interactive {
			selected, err := promptRole()
			if err != nil {
				return err
			}
			role = selected
		} else {
			role = string(session.RoleUser)
		}
	}

	sess, err := deps.Controller.Register(name, email, password, role)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(deps.Out, "✓ Account created!")
	fmt.Fprintf(deps.Out, "  User: %s (%s)\n", sess.Identity.Name, sess.Identity.Email)
	fmt.Fprintf(deps.Out, "  Role: %s\n", sess.Identity.Role)
	fmt.Fprintf(deps.Out, "  Dashboard: %s\n", session.ResolveRedirect(sess, ""))

	return nil
}

// promptRole shows an interactive role selection. Admin accounts are not
// self-service.
func promptRole() (string, error) {
	prompt := promptui.Select{
		Label: "Account type",
		Items: []string{
			"USER - browse and save listings",
			"AGENT - submit and manage listings",
		},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("role selection cancelled: %w", err)
	}

	if i == 1 {
		return string(session.RoleAgent), nil
	}
	return string(session.RoleUser), nil
}
