package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <property-id>",
		Short: "Show a property's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runShow(deps, args[0])
		},
	}
}

func runShow(deps *Deps, id string) error {
	p, err := deps.API.GetProperty(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Out, "%s\n", p.Title)
	fmt.Fprintf(deps.Out, "  ID:       %s\n", p.ID)
	fmt.Fprintf(deps.Out, "  Type:     %s (%s)\n", p.Type, p.Status)
	fmt.Fprintf(deps.Out, "  Price:    %.0f\n", p.Price)
	fmt.Fprintf(deps.Out, "  Address:  %s\n", p.Address)
	fmt.Fprintf(deps.Out, "  Layout:   %d bed / %d bath, %.0f sq ft\n", p.Bedrooms, p.Bathrooms, p.AreaSqFt)
	if p.Description != "" {
		fmt.Fprintf(deps.Out, "\n%s\n", p.Description)
	}

	sess := deps.Store.Current()
	if deps.Saved.IsSaved(sess.Identity, p.ID) {
		fmt.Fprintln(deps.Out, "\n★ Saved")
	}

	return nil
}
