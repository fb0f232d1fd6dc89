package client

import "fmt"

// AuthError means the server rejected the credentials (401/403). The
// gateway never retries and never clears the session on its own; whether
// to log the user out is the caller's call.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("authorization failed (status %d)", e.Status)
}

// ValidationError means the server rejected the input (400/409), e.g. a
// duplicate email on registration. The server's message is surfaced
// verbatim where available.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("invalid request (status %d)", e.Status)
}

// RequestError means the request could not complete at all (connectivity,
// timeout). Retrying is left to the user.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
