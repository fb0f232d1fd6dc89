package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roost-dev/roost/internal/cli/client"
	"github.com/roost-dev/roost/internal/cli/session"
)

// NewSubmitCmd creates the submit command for agents
func NewSubmitCmd() *cobra.Command {
	var req client.CreatePropertyRequest

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a new listing (agents only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := DefaultDeps()
			if err != nil {
				return err
			}
			return runSubmit(deps, req)
		},
	}

	cmd.Flags().StringVar(&req.Title, "title", "", "Listing title")
	cmd.Flags().StringVar(&req.Description, "description", "", "Listing description")
	cmd.Flags().StringVar(&req.Address, "address", "", "Property address")
	cmd.Flags().Float64Var(&req.Price, "price", 0, "Asking price (or monthly rent)")
	cmd.Flags().StringVar(&req.Type, "type", "SALE", "Listing type: SALE or RENT")
	cmd.Flags().StringVar(&req.ImageURL, "image-url", "", "Photo URL")
	cmd.Flags().IntVar(&req.Bedrooms, "bedrooms", 0, "Number of bedrooms")
	cmd.Flags().IntVar(&req.Bathrooms, "bathrooms", 0, "Number of bathrooms")
	cmd.Flags().Float64Var(&req.AreaSqFt, "area", 0, "Area in square feet")

	return cmd
}

func runSubmit(deps *Deps, req client.CreatePropertyRequest) error {
	sess := deps.Store.Current()
	if !sess.Authenticated() {
		return fmt.Errorf("please login to submit listings (run 'roost login')")
	}
	if sess.Identity.Role == session.RoleUser {
		return fmt.Errorf("only agents can submit listings")
	}

	if req.Title == "" {
		return fmt.Errorf("title is required (use --title flag)")
	}
	if req.Price <= 0 {
		return fmt.Errorf("price is required (use --price flag)")
	}
	req.Type = strings.ToUpper(req.Type)
	if req.Type != "SALE" && req.Type != "RENT" {
		return fmt.Errorf("type must be SALE or RENT")
	}

	p, err := deps.API.CreateProperty(req)
	if err != nil {
		return fmt.Errorf("failed to submit listing: %w", err)
	}

	fmt.Fprintln(deps.Out, "✓ Listing submitted!")
	fmt.Fprintf(deps.Out, "  %s (%s) id %s\n", p.Title, p.Type, p.ID)
	return nil
}
