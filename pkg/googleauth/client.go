package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"
	defaultRevokeURL   = "https://oauth2.googleapis.com/revoke"

	defaultTimeout = 10 * time.Second
)

// Client talks to the Google identity endpoints. The interactive consent
// flow runs in the browser; this client only consumes the resulting bearer
// access token.
type Client struct {
	userInfoURL string
	revokeURL   string
	httpClient  *http.Client
}

// NewClient creates a new identity client.
func NewClient() *Client {
	return &Client{
		userInfoURL: defaultUserInfoURL,
		revokeURL:   defaultRevokeURL,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

// SetBaseURL points both identity endpoints at base. Used in tests.
func (c *Client) SetBaseURL(base string) {
	c.userInfoURL = base + "/oauth2/v3/userinfo"
	c.revokeURL = base + "/revoke"
}

// FetchProfile validates the access token by fetching the user's profile.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call userinfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed with status %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return &profile, nil
}

// Revoke invalidates the access token with Google. Best effort: a failed
// revoke still ends the local session.
func (c *Client) Revoke(ctx context.Context, accessToken string) error {
	form := url.Values{"token": {accessToken}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call revoke endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke request failed with status %d", resp.StatusCode)
	}
	return nil
}
