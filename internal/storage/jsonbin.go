// Package storage talks to the remote JSON document store holding the
// published event set.
package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kulhunter/eventis-backend/internal/models"
)

const defaultBaseURL = "https://api.jsonbin.io/v3/b"

// Client reads and replaces the single document that backs the published set.
type Client struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	binID   string
}

type remoteRecord struct {
	Record struct {
		Events []models.Event `json:"events"`
	} `json:"record"`
}

type publishBody struct {
	Events []models.Event `json:"events"`
}

func NewClient(apiKey, binID string) *Client {
	return &Client{
		client:  resty.New().SetTimeout(30 * time.Second),
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		binID:   binID,
	}
}

// ReadLatest returns the currently published event set.
func (c *Client) ReadLatest(ctx context.Context) ([]models.Event, error) {
	var record remoteRecord
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-Master-Key", c.apiKey).
		SetResult(&record).
		Get(fmt.Sprintf("%s/%s/latest", c.baseURL, c.binID))

	if err != nil {
		return nil, fmt.Errorf("read latest: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("read latest: unexpected status %d", resp.StatusCode())
	}

	return record.Record.Events, nil
}

// Publish overwrites the whole document with the given set. All-or-nothing: a
// failed call leaves the previously published set intact. Transient image URLs
// are stripped to keep the stored document small.
func (c *Client) Publish(ctx context.Context, events []models.Event) error {
	stored := make([]models.Event, len(events))
	for i, e := range events {
		e.ImageURL = ""
		stored[i] = e
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Master-Key", c.apiKey).
		SetBody(publishBody{Events: stored}).
		Put(fmt.Sprintf("%s/%s", c.baseURL, c.binID))

	if err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("publish: unexpected status %d", resp.StatusCode())
	}

	return nil
}
