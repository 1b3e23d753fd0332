package identity

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// Client talks to a GoTrue-compatible identity provider over its REST surface.
// Only the calls this backend needs are implemented.
type Client struct {
	baseURL string
	anonKey string

	client *http.Client
}

type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
	UserID       string
}

type User struct {
	ID    string
	Email string
}

func NewClient(baseURL, anonKey string) *Client {
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		client: &http.Client{
			Timeout: time.Second * 10,
		},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, authorization string) (gjson.Result, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return gjson.Result{}, errors.Wrap(err, "identity: failed to marshal request body")
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "identity: failed to create request")
	}
	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", "Bearer "+authorization)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "identity: request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, errors.Wrap(err, "identity: failed to read response")
	}

	parsed := gjson.ParseBytes(raw)
	if resp.StatusCode >= 400 {
		msg := parsed.Get("error_description").String()
		if msg == "" {
			msg = parsed.Get("msg").String()
		}
		if msg == "" {
			msg = resp.Status
		}
		return gjson.Result{}, errors.Errorf("identity: provider returned %d: %s", resp.StatusCode, msg)
	}

	return parsed, nil
}

func sessionFrom(result gjson.Result) *Session {
	return &Session{
		AccessToken:  result.Get("access_token").String(),
		RefreshToken: result.Get("refresh_token").String(),
		ExpiresIn:    result.Get("expires_in").Int(),
		UserID:       result.Get("user.id").String(),
	}
}

// ExchangeCode trades an authorization code for a session.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Session, error) {
	result, err := c.do(ctx, http.MethodPost, "/token?grant_type=authorization_code", map[string]string{
		"auth_code": code,
	}, "")
	if err != nil {
		return nil, err
	}
	return sessionFrom(result), nil
}

// RefreshSession exchanges a refresh token for a fresh session. The provider
// rotates the refresh token on every call.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*Session, error) {
	result, err := c.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", map[string]string{
		"refresh_token": refreshToken,
	}, "")
	if err != nil {
		return nil, err
	}
	return sessionFrom(result), nil
}

// GetUser resolves the user an access token belongs to.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	result, err := c.do(ctx, http.MethodGet, "/user", nil, accessToken)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:    result.Get("id").String(),
		Email: result.Get("email").String(),
	}, nil
}
