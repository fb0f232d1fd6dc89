package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewInquireCmd creates the inquire command
func NewInquireCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "inquire <property-id>",
		Short: "Send an inquiry about a property to its agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runInquire(deps, args[0], message)
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Inquiry message")

	return cmd
}

func runInquire(deps *Deps, propertyID, message string) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		return fmt.Errorf("please login to send inquiries (run 'roost login')")
	}
	if message == "" {
		return fmt.Errorf("message is required (use -m flag)")
	}

	inquiry, err := deps.API.CreateInquiry(propertyID, message)
	if err != nil {
		return fmt.Errorf("failed to send inquiry: %w", err)
	}

	fmt.Fprintf(deps.Out, "✓ Inquiry sent (id %s). The agent will be notified.\n", inquiry.ID)
	return nil
}
