package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewSaveCmd creates the save command
func NewSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <property-id>",
		Short: "Save or unsave a property (toggles)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runSave(deps, args[0])
		},
	}
}

func runSave(deps *Deps, propertyID string) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		return fmt.Errorf("please login to save properties (run 'roost login')")
	}

	if deps.Saved.Toggle(sess.Identity, propertyID) {
		fmt.Fprintf(deps.Out, "★ Saved property %s\n", propertyID)
	} else {
		fmt.Fprintf(deps.Out, "Removed property %s from saved\n", propertyID)
	}
	return nil
}

// NewSavedCmd creates the saved command
func NewSavedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List your saved properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runSaved(deps)
		},
	}
}

func runSaved(deps *Deps) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		return fmt.Errorf("please login to see saved properties (run 'roost login')")
	}

	ids := deps.Saved.List(sess.Identity)
	if len(ids) == 0 {
		fmt.Fprintln(deps.Out, "No saved properties.")
		fmt.Fprintln(deps.Out, "\nSave one with: roost save <property-id>")
		return nil
	}

	for _, id := range ids {
		p, err := deps.API.GetProperty(id)
		if err != nil {
			// The listing may have been taken down; still show the id
			fmt.Fprintf(deps.Out, "%s\t(unavailable)\n", id)
			continue
		}
		fmt.Fprintf(deps.Out, "%s\t%s\t%.0f\n", p.ID, p.Title, p.Price)
	}
	return nil
}
