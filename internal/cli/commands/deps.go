package commands

import (
	"io"
	"os"

	"github.com/roost-dev/roost/internal/cli/client"
	"github.com/roost-dev/roost/internal/cli/saved"
	"github.com/roost-dev/roost/internal/cli/session"
	"github.com/roost-dev/roost/internal/cli/userconfig"
)

// Deps bundles the components every command works against. Production
// commands use DefaultDeps; tests build their own with temp paths, an
// in-memory credential store and an httptest server URL.
type Deps struct {
	Store      *session.Store
	Saved      *saved.Store
	API        *client.Client
	Controller *session.Controller
	Out        io.Writer
}

// DefaultDeps wires the real stores (config-dir files, OS keyring) and the
// configured API base URL
func DefaultDeps() (*Deps, error) {
	sessionPath, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	savedPath, err := saved.DefaultPath()
	if err != nil {
		return nil, err
	}

	store := session.NewStore(sessionPath, session.KeyringStore{})
	api := client.New(userconfig.APIBaseURL(), store)

	return &Deps{
		Store:      store,
		Saved:      saved.NewStore(savedPath),
		API:        api,
		Controller: session.NewController(api, store),
		Out:        os.Stdout,
	}, nil
}
