package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roost-dev/roost/internal/cli/session"
)

// staticSessions serves a fixed session to the client under test
type staticSessions struct {
	sess session.Session
}

func (s staticSessions) Current() session.Session {
	return s.sess
}

func anonymousSource() staticSessions {
	return staticSessions{sess: session.Anonymous()}
}

func bearerSource(token string) staticSessions {
	cred := session.Bearer(token)
	return staticSessions{sess: session.Session{
		Identity:   &session.Identity{Email: "alice@example.com", Role: session.RoleUser},
		Credential: &cred,
	}}
}

func basicSource(email, password string) staticSessions {
	cred := session.EncodeBasic(email, password)
	return staticSessions{sess: session.Session{
		Identity:   &session.Identity{Email: email, Role: session.RoleUser},
		Credential: &cred,
	}}
}

func TestAuthorizationHeaderFromSession(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	tests := []struct {
		name     string
		source   SessionSource
		expected string
	}{
		{"anonymous sends nothing", anonymousSource(), ""},
		{"bearer credential", bearerSource("abc"), "Bearer abc"},
		{"basic credential", basicSource("test", ""), "Basic dGVzdDo="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New(server.URL, tt.source)
			_, err := client.ListProperties()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, gotAuth)
		})
	}
}

func TestUnauthorizedSurfacesAuthError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer server.Close()

	client := New(server.URL, anonymousSource())
	_, err := client.Login("alice@example.com", "wrong")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	assert.Equal(t, "invalid email or password", authErr.Message)
}

func TestConflictSurfacesValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "email already registered"})
	}))
	defer server.Close()

	client := New(server.URL, anonymousSource())
	_, err := client.Register("Alice", "alice@example.com", "password1", "USER")
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, http.StatusConflict, valErr.Status)
	assert.Contains(t, valErr.Message, "already registered")
}

func TestUnreachableServerSurfacesRequestError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := New(server.URL, anonymousSource())
	_, err := client.ListProperties()
	require.Error(t, err)

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Error(t, reqErr.Unwrap())
}

func TestLoginDecodesAuthResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@example.com", body["email"])
		assert.Equal(t, "s3cret", body["password"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AuthResponse{
			Token: "jwt-token",
			Name:  "Alice",
			Email: "alice@example.com",
			Role:  "ADMIN",
		})
	}))
	defer server.Close()

	client := New(server.URL, anonymousSource())
	res, err := client.Login("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
	assert.Equal(t, "Alice", res.Name)
	assert.Equal(t, "ADMIN", res.Role)
}

func TestSearchPropertiesEncodesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/properties/search", r.URL.Path)
		assert.Equal(t, "lake view", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Property{{ID: "p1", Title: "Lake View Cottage"}})
	}))
	defer server.Close()

	client := New(server.URL, anonymousSource())
	properties, err := client.SearchProperties("lake view")
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Lake View Cottage", properties[0].Title)
}

func TestGetPropertyNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "property not found"})
	}))
	defer server.Close()

	client := New(server.URL, anonymousSource())
	_, err := client.GetProperty("missing")
	require.Error(t, err)

	// Not an auth or validation failure, just a plain error
	var authErr *AuthError
	var valErr *ValidationError
	assert.False(t, errors.As(err, &authErr))
	assert.False(t, errors.As(err, &valErr))
	assert.Contains(t, err.Error(), "property not found")
}
