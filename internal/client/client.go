// Package client is the HTTP client used by the field terminal and admin
// tooling. It attaches the bearer token from the session store to every
// request and treats a 401 as a session-invalidation trigger.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/markusprap/web-penukaran-koin-sub001/internal/session"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "/api"

// ErrUnauthorized is returned on a 401 after the session has been
// invalidated and the navigator pointed at the login surface.
var ErrUnauthorized = errors.New("unauthorized")

// Navigator abstracts the navigation surface: where the user currently is
// and how to send them somewhere else.
type Navigator interface {
	CurrentPath() string
	Redirect(path string)
}

// Client wraps an http.Client with token attachment and 401 handling.
// No timeouts or retries are built in — callers own the context.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
	nav     Navigator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, sess *session.Store, nav Navigator, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		session: sess,
		nav:     nav,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends a JSON request to endpoint and decodes the JSON response into out
// (which may be nil). Caller-supplied headers override the defaults.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}, headers http.Header) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.handleUnauthorized()
		return ErrUnauthorized
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.New(errorMessage(data, resp.StatusCode))
	}

	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

// Get is a convenience wrapper for GET requests.
func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out, nil)
}

// Post is a convenience wrapper for POST requests.
func (c *Client) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out, nil)
}

// handleUnauthorized clears the identity (session context survives, per the
// same-day re-login flow) and redirects to the matching login surface —
// unless the user is already on a login page.
func (c *Client) handleUnauthorized() {
	current := c.nav.CurrentPath()
	if isLoginPath(current) {
		return
	}
	_ = c.session.Logout()
	if current == "/admin" || strings.HasPrefix(current, "/admin/") {
		c.nav.Redirect("/admin/login")
	} else {
		c.nav.Redirect("/app/login")
	}
}

func isLoginPath(path string) bool {
	return path == "/admin/login" || path == "/app/login"
}

// errorMessage extracts the server-provided message from an error body,
// falling back to a generic status line.
func errorMessage(body []byte, status int) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return fmt.Sprintf("request failed with status %d", status)
}
