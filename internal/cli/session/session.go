// Package session holds the client-side representation of the current user:
// who they are, the credential that proves it, and where both are persisted
// between invocations.
package session

// Role is the authorization level reported by the server for an identity
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalizes a server-reported role, defaulting to USER
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAgent:
		return RoleAgent
	case RoleAdmin:
		return RoleAdmin
	}
	return RoleUser
}

// Identity is the stable user-facing part of an authenticated session
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Session is either fully authenticated (identity and credential both
// present) or fully anonymous (both absent). No partial state is valid;
// the Store enforces this on load.
type Session struct {
	Identity   *Identity
	Credential *Credential
}

// Anonymous returns the unauthenticated session
func Anonymous() Session {
	return Session{}
}

// Authenticated reports whether the session carries a usable identity
func (s Session) Authenticated() bool {
	return s.Identity != nil && s.Credential != nil && !s.Credential.IsZero()
}
