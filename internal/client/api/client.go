// Package api implements the HTTP client for the chatkeeper backend. It keeps
// the session cookie in an in-memory jar so one Client value represents one
// logged-in browser-like session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Exchange is one logged chat turn as returned by the history endpoint.
type Exchange struct {
	ID          string    `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"created_at"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a Client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// Signup creates an account and, on success, leaves the new session cookie
// in the jar. A taken username yields ErrAlreadyExists.
func (c *Client) Signup(ctx context.Context, username string, password []byte) error {
	resp, err := c.postJSON(ctx, "/signup", map[string]string{
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, errorMessage(resp.Body))
	}
	return checkStatus(resp)
}

// Login authenticates and stores the session cookie in the jar.
// Wrong credentials yield ErrUnauthorized.
func (c *Client) Login(ctx context.Context, username string, password []byte) error {
	resp, err := c.postJSON(ctx, "/login", map[string]string{
		"username": username,
		"password": string(password),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return fmt.Errorf("%w: %s", ErrUnauthorized, errorMessage(resp.Body))
	}
	return checkStatus(resp)
}

// Logout revokes the current session on the server.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.postJSON(ctx, "/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

// Chat sends one message and returns the model's reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	resp, err := c.postJSON(ctx, "/chat", map[string]string{"message": message})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var parsed struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return parsed.Response, nil
}

// History returns every exchange logged for the current user.
func (c *Client) History(ctx context.Context) ([]Exchange, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/history", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var exchanges []Exchange
	if err := json.NewDecoder(resp.Body).Decode(&exchanges); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return exchanges, nil
}

// Ping probes server reachability.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

// checkStatus maps remaining non-2xx responses to sentinel errors. Endpoint
// specific 400 handling happens before this is called.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrUnavailable, errorMessage(resp.Body))
	default:
		return fmt.Errorf("%w: status %d: %s", ErrServer, resp.StatusCode, errorMessage(resp.Body))
	}
}

// errorMessage extracts the "error" field from an error response body.
func errorMessage(body io.Reader) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 1024)).Decode(&parsed); err != nil || parsed.Error == "" {
		return "unknown error"
	}
	return parsed.Error
}
