// Package client is the authenticated request gateway: the single choke
// point for all outbound calls to the Roost API. It derives the
// Authorization header from the current session; no other code constructs
// one.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/roost-dev/roost/internal/cli/session"
)

const apiPrefix = "/api"

// SessionSource yields the session whose credential authorizes requests.
// *session.Store satisfies it.
type SessionSource interface {
	Current() session.Session
}

// Client represents an HTTP client for the Roost API
type Client struct {
	baseURL    string
	sessions   SessionSource
	httpClient *http.Client
}

// New creates a new API client. The base address and path prefix are fixed
// here, not per request.
func New(baseURL string, sessions SessionSource) *Client {
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient sets a custom HTTP client
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// errorResponse is the generic error body the API returns
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one API request. The Authorization header comes from the
// current session: bearer and basic credentials render their respective
// schemes, an anonymous session sends nothing. Responses indicating
// authorization failure surface as *AuthError without touching the
// session.
func (c *Client) do(method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+apiPrefix+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if sess := c.sessions.Current(); sess.Authenticated() {
		req.Header.Set("Authorization", sess.Credential.HeaderValue())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var body errorResponse
	_ = json.Unmarshal(raw, &body)
	message := body.Error
	if message == "" {
		message = body.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{Status: resp.StatusCode, Message: message}
	case http.StatusBadRequest, http.StatusConflict:
		return &ValidationError{Status: resp.StatusCode, Message: message}
	}

	if message == "" {
		message = string(raw)
	}
	return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, message)
}

// AuthResponse represents the login/register response
type AuthResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login authenticates the user against the remote endpoint
func (c *Client) Login(email, password string) (session.AuthResult, error) {
	reqBody := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/login", reqBody, &resp); err != nil {
		return session.AuthResult{}, err
	}
	return session.AuthResult{Token: resp.Token, Name: resp.Name, Role: resp.Role}, nil
}

// Register creates a new account
func (c *Client) Register(name, email, password, role string) (session.AuthResult, error) {
	reqBody := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}{name, email, password, role}

	var resp AuthResponse
	if err := c.do(http.MethodPost, "/auth/register", reqBody, &resp); err != nil {
		return session.AuthResult{}, err
	}
	return session.AuthResult{Token: resp.Token, Name: resp.Name, Role: resp.Role}, nil
}

// UserDetail represents the current user as reported by the server
type UserDetail struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Me returns the server's view of the authenticated user
func (c *Client) Me() (*UserDetail, error) {
	var user UserDetail
	if err := c.do(http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Property represents a listing as returned by the API
type Property struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	Status      string  `json:"status"`
	ImageURL    string  `json:"image_url"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	AreaSqFt    float64 `json:"area_sq_ft"`
	CreatedAt   string  `json:"created_at"`
}

// ListProperties returns all listings
func (c *Client) ListProperties() ([]Property, error) {
	var properties []Property
	if err := c.do(http.MethodGet, "/properties", nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// GetProperty returns a single listing by id
func (c *Client) GetProperty(id string) (*Property, error) {
	var property Property
	if err := c.do(http.MethodGet, "/properties/"+url.PathEscape(id), nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// SearchProperties returns listings matching the free-text query
func (c *Client) SearchProperties(query string) ([]Property, error) {
	var properties []Property
	path := "/properties/search?q=" + url.QueryEscape(query)
	if err := c.do(http.MethodGet, path, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// PropertiesByType returns listings filtered by SALE or RENT
func (c *Client) PropertiesByType(propertyType string) ([]Property, error) {
	var properties []Property
	if err := c.do(http.MethodGet, "/properties/type/"+url.PathEscape(propertyType), nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// CreatePropertyRequest represents a listing submission
type CreatePropertyRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Type        string  `json:"type"`
	ImageURL    string  `json:"image_url,omitempty"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	AreaSqFt    float64 `json:"area_sq_ft"`
}

// CreateProperty submits a new listing (agents and admins only)
func (c *Client) CreateProperty(req CreatePropertyRequest) (*Property, error) {
	var property Property
	if err := c.do(http.MethodPost, "/properties", req, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// Inquiry represents a submitted inquiry
type Inquiry struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Message    string `json:"message"`
	CreatedAt  string `json:"created_at"`
}

// CreateInquiry sends a message to a listing's agent
func (c *Client) CreateInquiry(propertyID, message string) (*Inquiry, error) {
	reqBody := struct {
		PropertyID string `json:"property_id"`
		Message    string `json:"message"`
	}{propertyID, message}

	var inquiry Inquiry
	if err := c.do(http.MethodPost, "/inquiries", reqBody, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}
