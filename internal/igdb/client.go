// Package igdb reads the game catalog from the IGDB API.
package igdb

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"vglist/backend/internal/schema"

	"golang.org/x/time/rate"
)

//go:embed games.schema.json
var gamesSchemaDoc []byte

//go:embed token.schema.json
var tokenSchemaDoc []byte

var (
	gamesSchema = schema.MustCompile("igdb games", gamesSchemaDoc)
	tokenSchema = schema.MustCompile("twitch token", tokenSchemaDoc)
)

const gameFields = "id,updated_at,name,slug,cover.url,first_release_date,summary,rating,rating_count"

// Config holds the API endpoints and service credentials.
type Config struct {
	BaseURL           string
	TokenURL          string
	ClientID          string
	ClientSecret      string
	RequestsPerSecond float64
}

// Client fetches pages of games. Requests are paced by a token bucket since
// IGDB rejects bursts above its per-second allowance.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter

	mu    sync.Mutex
	token string
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 4
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Authenticate obtains an app access token with the client credentials grant.
func (c *Client) Authenticate(ctx context.Context) error {
	params := url.Values{
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
		"grant_type":    {"client_credentials"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.TokenURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	body, err := c.do(req)
	if err != nil {
		return fmt.Errorf("fetch token: %w", err)
	}
	var tok tokenResponse
	if err := tokenSchema.Decode(body, &tok); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.mu.Unlock()
	return nil
}

// Games returns page index page of size pageSize, sorted by ascending ID.
func (c *Client) Games(ctx context.Context, page, pageSize int) ([]Record, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token == "" {
		return nil, fmt.Errorf("igdb client is not authenticated")
	}

	query := fmt.Sprintf("fields %s; sort id asc; limit %d; offset %d;", gameFields, pageSize, page*pageSize)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+"/games", strings.NewReader(query))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Client-ID", c.cfg.ClientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	body, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch games page %d: %w", page, err)
	}

	records := []Record{}
	if err := gamesSchema.Decode(body, &records); err != nil {
		return nil, fmt.Errorf("games page %d: %w", page, err)
	}
	return records, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}
	return body, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
