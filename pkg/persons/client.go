// Package persons fetches raw person records from the persons directory
// service
package persons

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/sage/pkg/httpclient"
	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/tracing"
)

// directoryEnvelope is the response shape of the persons directory
type directoryEnvelope struct {
	Data []models.SourceRecord `json:"data"`
}

// Config holds persons directory configuration
type Config struct {
	URL     string
	Timeout time.Duration
}

// Client calls the persons directory service
type Client struct {
	http   *httpclient.Client
	logger ectologger.Logger
	config Config
}

// NewClient creates a new persons directory client
func NewClient(cfg Config, http *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		http:   http,
		logger: logger,
		config: cfg,
	}
}

// URL returns the configured directory endpoint
func (c *Client) URL() string {
	return c.config.URL
}

// Fetch returns every source record in the directory. Any failure (missing
// configuration, transport error, non-2xx status, malformed envelope)
// degrades to an empty batch so the pipeline keeps running.
func (c *Client) Fetch(ctx context.Context) []models.SourceRecord {
	ctx, span := tracing.StartSpan(ctx, "persons.Client.Fetch")
	defer span.End()

	log := c.logger.WithContext(ctx)

	if c.config.URL == "" {
		log.Warn("Persons directory URL is not configured")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	resp, err := c.http.Get(ctx, c.config.URL, nil)
	if err != nil {
		log.WithError(err).Warn("Persons directory fetch failed")
		return nil
	}

	if !httpclient.IsSuccessStatus(resp.StatusCode) {
		log.WithField("status", resp.StatusCode).Warn("Persons directory returned a non-success status")
		return nil
	}

	var envelope directoryEnvelope
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		log.WithError(err).Warn("Persons directory returned an unexpected payload")
		return nil
	}

	return envelope.Data
}
