package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCmd creates the search command
func NewSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search properties by title, description or address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runSearch(deps, strings.Join(args, " "))
		},
	}
}

func runSearch(deps *Deps, query string) error {
	properties, err := deps.API.SearchProperties(query)
	if err != nil {
		return err
	}

	if len(properties) == 0 {
		fmt.Fprintf(deps.Out, "No properties matched %q.\n", query)
		return nil
	}

	printProperties(deps, properties)
	return nil
}
