// Package client provides the HTTP client for the Google Places API (v1).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bumpti_backend/platform/logger"
)

const (
	// DefaultBaseURL is the production Places API host.
	DefaultBaseURL = "https://places.googleapis.com"

	nearbyFieldMask  = "places.id,places.displayName,places.formattedAddress,places.location,places.types"
	detailsFieldMask = "id,displayName,formattedAddress,location,types"

	providerName = "google_places"

	// maxErrorBody bounds how much of an upstream error body is kept.
	maxErrorBody = 8 << 10
)

// StatusError is returned when the Places API answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d - %s", e.Status, e.Body)
}

// Client is the HTTP client for the Places API. The API key is supplied per
// call so that credential rotation never requires a new client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a Places API client. An empty baseURL selects DefaultBaseURL.
func New(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        log,
	}
}

// SearchNearby calls places:searchNearby. A success response whose places
// field is missing or not an array yields an empty slice.
func (c *Client) SearchNearby(ctx context.Context, apiKey string, body SearchNearbyRequest) ([]Place, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	reqURL := c.baseURL + "/v1/places:searchNearby"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", apiKey)
	req.Header.Set("X-Goog-FieldMask", nearbyFieldMask)

	data, err := c.do(req, "searchNearby")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Places json.RawMessage `json:"places"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		c.log.Error("places decode failed", "operation", "searchNearby", "error", err)
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var places []Place
	if err := json.Unmarshal(envelope.Places, &places); err != nil {
		c.log.Debug("places field missing or malformed", "operation", "searchNearby")
		return []Place{}, nil
	}
	if places == nil {
		places = []Place{}
	}
	return places, nil
}

// GetPlace fetches a single place by its resource id.
func (c *Client) GetPlace(ctx context.Context, apiKey, placeID string) (Place, error) {
	reqURL := c.baseURL + "/v1/places/" + url.PathEscape(placeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", apiKey)
	req.Header.Set("X-Goog-FieldMask", detailsFieldMask)

	data, err := c.do(req, "getPlace")
	if err != nil {
		return Place{}, err
	}

	var place Place
	if err := json.Unmarshal(data, &place); err != nil {
		c.log.Error("places decode failed", "operation", "getPlace", "error", err)
		return Place{}, fmt.Errorf("decode response: %w", err)
	}
	return place, nil
}

func (c *Client) do(req *http.Request, operation string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("places request failed", "operation", operation, "error", err)
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.UpstreamError(providerName, operation, resp.StatusCode, string(body))
		return nil, &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}
