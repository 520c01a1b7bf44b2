// Package search mirrors catalog games into the hosted search index.
package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vglist/backend/internal/models"

	"github.com/goccy/go-json"
)

// Indexer stores game documents in a search index.
type Indexer interface {
	SaveGames(ctx context.Context, games []models.Game) error
}

// Document is the indexed shape of a game. ObjectID is the decimal game ID.
type Document struct {
	ObjectID string `json:"objectID"`
	models.Game
}

func NewDocument(g models.Game) Document {
	return Document{ObjectID: strconv.FormatInt(g.ID, 10), Game: g}
}

type batchOperation struct {
	Action string   `json:"action"`
	Body   Document `json:"body"`
}

type batchRequest struct {
	Requests []batchOperation `json:"requests"`
}

// AlgoliaConfig identifies the application and index to write to.
type AlgoliaConfig struct {
	AppID  string
	APIKey string
	Index  string
	// BaseURL overrides https://{AppID}.algolia.net.
	BaseURL string
}

// AlgoliaClient writes documents through the Algolia REST batch endpoint.
type AlgoliaClient struct {
	cfg        AlgoliaConfig
	baseURL    string
	httpClient *http.Client
}

func NewAlgoliaClient(cfg AlgoliaConfig, httpClient *http.Client) *AlgoliaClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.algolia.net", cfg.AppID)
	}
	return &AlgoliaClient{cfg: cfg, baseURL: strings.TrimRight(base, "/"), httpClient: httpClient}
}

// SaveGames upserts games, replacing documents with the same objectID.
func (c *AlgoliaClient) SaveGames(ctx context.Context, games []models.Game) error {
	if len(games) == 0 {
		return nil
	}
	batch := batchRequest{Requests: make([]batchOperation, 0, len(games))}
	for _, g := range games {
		batch.Requests = append(batch.Requests, batchOperation{Action: "updateObject", Body: NewDocument(g)})
	}
	payload, err := json.Marshal(batch)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/1/indexes/%s/batch", c.baseURL, url.PathEscape(c.cfg.Index))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("X-Algolia-Application-Id", c.cfg.AppID)
	req.Header.Set("X-Algolia-API-Key", c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("index batch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("index batch: unexpected status %d: %s", resp.StatusCode, body)
	}
	return nil
}
