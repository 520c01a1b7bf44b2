package identity

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vglist/backend/internal/schema"
)

//go:embed users.schema.json
var usersSchemaDoc []byte

var usersSchema = schema.MustCompile("clerk users", usersSchemaDoc)

// maxSearchResults bounds user search responses.
const maxSearchResults = 10

// ClerkClient reads users from the Clerk backend API.
type ClerkClient struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClerkClient creates a directory client. A nil httpClient gets a default
// one with a timeout.
func NewClerkClient(baseURL, secretKey string, httpClient *http.Client) *ClerkClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &ClerkClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secretKey:  secretKey,
		httpClient: httpClient,
	}
}

var _ Directory = (*ClerkClient)(nil)

func (c *ClerkClient) UserByUsername(ctx context.Context, username string) (*User, error) {
	users, err := c.listUsers(ctx, url.Values{"username": {username}, "limit": {"1"}})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return &users[0], nil
}

func (c *ClerkClient) UsersByIDs(ctx context.Context, ids []string) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}
	return c.listUsers(ctx, url.Values{"user_id": ids, "limit": {fmt.Sprint(len(ids))}})
}

func (c *ClerkClient) SearchUsers(ctx context.Context, query string) ([]User, error) {
	return c.listUsers(ctx, url.Values{"query": {query}, "limit": {fmt.Sprint(maxSearchResults)}})
}

func (c *ClerkClient) listUsers(ctx context.Context, params url.Values) ([]User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("list users: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list users: unexpected status %d", resp.StatusCode)
	}

	users := []User{}
	if err := usersSchema.Decode(body, &users); err != nil {
		return nil, err
	}
	return users, nil
}
