package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roost-dev/roost/internal/cli/client"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var propertyType string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List available properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runList(deps, propertyType)
		},
	}

	cmd.Flags().StringVar(&propertyType, "type", "", "Filter by type: SALE or RENT")

	return cmd
}

func runList(deps *Deps, propertyType string) error {
	var properties []client.Property
	var err error

	if propertyType != "" {
		properties, err = deps.API.PropertiesByType(strings.ToUpper(propertyType))
	} else {
		properties, err = deps.API.ListProperties()
	}
	if err != nil {
		return err
	}

	if len(properties) == 0 {
		fmt.Fprintln(deps.Out, "No properties found.")
		return nil
	}

	printProperties(deps, properties)
	return nil
}

func printProperties(deps *Deps, properties []client.Property) {
	sess := deps.Store.Current()

	w := tabwriter.NewWriter(deps.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tTYPE\tPRICE\tBEDS\tSAVED")
	fmt.Fprintln(w, "──\t─────\t────\t─────\t────\t─────")

	for _, p := range properties {
		savedMark := ""
		if deps.Saved.IsSaved(sess.Identity, p.ID) {
			savedMark = "★"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.0f\t%d\t%s\n",
			p.ID,
			p.Title,
			p.Type,
			p.Price,
			p.Bedrooms,
			savedMark,
		)
	}

	w.Flush()
}
