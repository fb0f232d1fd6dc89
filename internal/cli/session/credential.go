package session

import (
	"encoding/base64"
	"fmt"
)

// Scheme identifies which Authorization header form a credential produces.
type Scheme string

const (
	SchemeBearer Scheme = "bearer"
	SchemeBasic  Scheme = "basic"
)

// Credential is the opaque value attached to outbound requests. Exactly one
// scheme is in effect at a time: an opaque bearer token, or a base64-encoded
// "email:password" pair for deployments still running HTTP basic auth.
type Credential struct {
	Scheme Scheme
	Secret string // token for bearer, encoded pair for basic
}

// Bearer wraps an opaque API token
func Bearer(token string) Credential {
	return Credential{Scheme: SchemeBearer, Secret: token}
}

// Basic wraps an already-encoded basic-auth pair
func Basic(encoded string) Credential {
	return Credential{Scheme: SchemeBasic, Secret: encoded}
}

// EncodeBasic builds a basic credential from a raw email/password pair
func EncodeBasic(email, password string) Credential {
	encoded := base64.StdEncoding.EncodeToString([]byte(email + ":" + password))
	return Basic(encoded)
}

// IsZero reports whether the credential is absent
func (c Credential) IsZero() bool {
	return c.Scheme == "" || c.Secret == ""
}

// HeaderValue renders the Authorization header value for the credential.
// This and the request gateway are the only places that know the wire form.
func (c Credential) HeaderValue() string {
	switch c.Scheme {
	case SchemeBearer:
		return fmt.Sprintf("Bearer %s", c.Secret)
	case SchemeBasic:
		return fmt.Sprintf("Basic %s", c.Secret)
	}
	return ""
}
