package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"habitdash/internal/token"
)

const (
	DefaultBaseURL = "https://habit-tracker-zeta-one.vercel.app/api"
	DefaultTimeout = 10 * time.Second
)

// Config carries everything a Client needs. Tokens supplies the bearer
// token for authenticated calls and is consulted on every request, so a
// token stored after sign-in is picked up without rebuilding the client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  oauth2.TokenSource

	// OnUnauthorized runs whenever the API answers 401, typically to drop
	// the stored token.
	OnUnauthorized func()
}

type Client struct {
	BaseUrl string

	anon           *http.Client
	authed         *http.Client
	onUnauthorized func()
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		BaseUrl:        strings.TrimRight(cfg.BaseURL, "/"),
		anon:           &http.Client{Timeout: cfg.Timeout},
		onUnauthorized: cfg.OnUnauthorized,
	}
	if cfg.Tokens != nil {
		c.authed = &http.Client{
			Timeout: cfg.Timeout,
			Transport: &oauth2.Transport{
				Source: cfg.Tokens,
				Base:   http.DefaultTransport,
			},
		}
	} else {
		c.authed = c.anon
	}
	return c
}

// StaticToken wraps a fixed bearer token, for hosts configured with one.
func StaticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"})
}

func (c *Client) newRequest(ctx context.Context, method, urlPath string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("unable to encode request body: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	url := fmt.Sprintf("%s/%s", c.BaseUrl, strings.TrimLeft(urlPath, "/"))
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// do sends req and decodes a JSON body into out when out is non-nil. An
// empty body where data was expected is ErrNoData.
func (c *Client) do(hc *http.Client, req *http.Request, out any) error {
	resp, err := hc.Do(req)
	if err != nil {
		if errors.Is(err, token.ErrNotFound) {
			return fmt.Errorf("not signed in: %w", ErrUnauthorized)
		}
		return fmt.Errorf("unable to perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("error calling habit api", "code", resp.StatusCode, "url", req.URL, "resp", string(body))
		apiErr := &APIError{Response: resp}
		_ = json.Unmarshal(body, apiErr)
		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 || string(bytes.TrimSpace(body)) == "null" {
		return ErrNoData
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
