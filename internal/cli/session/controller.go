package session

// AuthResult is what the remote auth endpoints report on success
type AuthResult struct {
	Token string
	Name  string
	Role  string
}

// AuthAPI is the slice of the request gateway the lifecycle controller
// needs. *client.Client satisfies it.
type AuthAPI interface {
	Login(email, password string) (AuthResult, error)
	Register(name, email, password, role string) (AuthResult, error)
}

// Older deployments run HTTP basic auth and return this placeholder
// instead of a real token.
const basicAuthPlaceholder = "BASIC_AUTH_ENABLED"

// Controller orchestrates the identity-changing operations: login,
// registration and logout. It is the only writer of the session store.
type Controller struct {
	api   AuthAPI
	store *Store
}

// NewController creates a lifecycle controller over the given gateway and
// session store
func NewController(api AuthAPI, store *Store) *Controller {
	return &Controller{api: api, store: store}
}

// Login authenticates against the remote endpoint and persists the
// resulting session. On failure the store is left exactly as it was.
func (c *Controller) Login(email, password string) (Session, error) {
	res, err := c.api.Login(email, password)
	if err != nil {
		return Anonymous(), err
	}

	sess := c.buildSession(email, password, res)
	if err := c.store.Save(sess); err != nil {
		return Anonymous(), err
	}
	return sess, nil
}

// Register creates an account. A success response that authenticates the
// user is treated as an implicit login.
func (c *Controller) Register(name, email, password, role string) (Session, error) {
	res, err := c.api.Register(name, email, password, role)
	if err != nil {
		return Anonymous(), err
	}

	sess := c.buildSession(email, password, res)
	if err := c.store.Save(sess); err != nil {
		return Anonymous(), err
	}
	return sess, nil
}

// Logout clears the session store. Saved listings are keyed by identity,
// not by session, and survive.
func (c *Controller) Logout() error {
	return c.store.Clear()
}

// ResolveRedirect resolves the post-login destination for the current
// session
func (c *Controller) ResolveRedirect(explicitURL string) RedirectTarget {
	return ResolveRedirect(c.store.Current(), explicitURL)
}

// buildSession turns an auth response into a full session. A real token
// yields a bearer credential; a token-less success (or the basic-auth
// placeholder) falls back to the encoded email:password pair.
func (c *Controller) buildSession(email, password string, res AuthResult) Session {
	name := res.Name
	if name == "" {
		name = email
	}
	identity := Identity{Email: email, Name: name, Role: ParseRole(res.Role)}

	var cred Credential
	if res.Token != "" && res.Token != basicAuthPlaceholder {
		cred = Bearer(res.Token)
	} else {
		cred = EncodeBasic(email, password)
	}

	return Session{Identity: &identity, Credential: &cred}
}
