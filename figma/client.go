// Package figma talks to the design tool REST API and knows the shape of its
// payloads.
package figma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.figma.com/v1"
	tokenHeader    = "X-Figma-Token"
)

// APIError is returned for any non successful HTTP status.
type APIError struct {
	StatusCode int
	StatusText string
}

func (e *APIError) Error() string {
	return "figma API error: " + e.StatusText
}

// Client retrieves design documents. It is safe for concurrent use.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func WithBaseURL(u string) func(*Client) {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimSuffix(u, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithTimeout(d time.Duration) func(*Client) {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

func WithLogger(log *zap.Logger) func(*Client) {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates API client authenticated with personal access token.
func NewClient(token string, options ...func(*Client)) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		http:    &http.Client{},
		log:     zap.NewNop(),
	}
	for _, opt := range options {
		opt(c)
	}
	c.log = c.log.Named("figma")
	return c
}

// GetFileData returns undecoded JSON of the design file.
func (c *Client) GetFileData(ctx context.Context, fileKey string) ([]byte, error) {
	return c.get(ctx, "/files/"+url.PathEscape(fileKey), nil)
}

// GetFile retrieves and decodes the design file.
func (c *Client) GetFile(ctx context.Context, fileKey string) (*File, error) {
	data, err := c.GetFileData(ctx, fileKey)
	if err != nil {
		return nil, err
	}
	return ParseFile(data)
}

// GetImages asks the API to render requested nodes and returns map of node
// IDs to image URLs. Nodes which could not be rendered are not present in the
// result.
func (c *Client) GetImages(ctx context.Context, fileKey string, nodeIDs []string) (map[string]string, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(nodeIDs, ","))
	q.Set("format", "png")
	q.Set("scale", "2")

	data, err := c.get(ctx, "/images/"+url.PathEscape(fileKey), q)
	if err != nil {
		return nil, err
	}

	var resp ImagesResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unable to decode images response: %w", err)
	}
	if resp.Err != nil && *resp.Err != "" {
		return nil, fmt.Errorf("figma API error: %s", *resp.Err)
	}

	images := make(map[string]string, len(resp.Images))
	for id, u := range resp.Images {
		if u != "" {
			images[id] = u
		}
	}
	return images, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare request: %w", err)
	}
	req.Header.Set(tokenHeader, c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to reach figma API: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("API request completed", zap.String("path", path), zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so connection could be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read API response: %w", err)
	}
	return data, nil
}

// statusText extracts reason phrase from the status line, "404 Not Found"
// becomes "Not Found".
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// ParseFile decodes design file JSON.
func ParseFile(data []byte) (*File, error) {
	var f File
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&f); err != nil {
		return nil, fmt.Errorf("unable to decode design file: %w", err)
	}
	return &f, nil
}
