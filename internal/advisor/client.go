package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotConfigured is returned when no advisor backend is wired.
var ErrNotConfigured = errors.New("advisor backend not configured")

// RecommendInput is the request sent to the advisor backend.
type RecommendInput struct {
	Skills   []string `json:"skills"`
	Location string   `json:"location,omitempty"`
}

// Client produces a raw recommendation payload for a profile. The payload is
// deliberately untyped; the composer normalizes whatever comes back.
type Client interface {
	Recommend(ctx context.Context, in RecommendInput) (json.RawMessage, error)
}

// HTTPClient calls a remote advisor service. When OAuth settings are present
// requests carry a client-credentials bearer token.
type HTTPClient struct {
	BaseURL string
	Timeout time.Duration

	// Optional service-to-service auth.
	ClientID     string
	ClientSecret string
	TokenURL     string

	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration, clientID, clientSecret, tokenURL string) *HTTPClient {
	c := &HTTPClient{
		BaseURL:      baseURL,
		Timeout:      timeout,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	if timeout <= 0 {
		c.Timeout = 15 * time.Second
	}
	if clientID != "" && tokenURL != "" {
		creds := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
		}
		c.httpClient = creds.Client(context.Background())
		c.httpClient.Timeout = c.Timeout
	} else {
		c.httpClient = &http.Client{Timeout: c.Timeout}
	}
	return c
}

func (c *HTTPClient) Recommend(ctx context.Context, in RecommendInput) (json.RawMessage, error) {
	if c == nil || c.BaseURL == "" {
		return nil, ErrNotConfigured
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, fmt.Errorf("marshal advisor request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/recommendations", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("advisor request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read advisor response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}
	return json.RawMessage(payload), nil
}

// PlaceholderClient always reports the backend as unconfigured. It keeps the
// recommendation flow total when no advisor settings are provided.
type PlaceholderClient struct{}

func (PlaceholderClient) Recommend(ctx context.Context, in RecommendInput) (json.RawMessage, error) {
	return nil, ErrNotConfigured
}
