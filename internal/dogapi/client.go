// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package dogapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/breedctl/internal/breed"
)

// DefaultBaseURL is the root of the dog.ceo API.
const DefaultBaseURL = "https://dog.ceo/api"

// DefaultTimeout bounds a single request when no http.Client is supplied.
const DefaultTimeout = 10 * time.Second

// MaxResponseBytes caps how much of a response body is read. The full breed
// listing is well under 100KiB.
const MaxResponseBytes = 1 << 20

var (
	errStatus  = errors.New("unexpected http status")
	errPayload = errors.New("malformed response")
	errAPI     = errors.New("api reported an error")
)

// Client talks to the dog.ceo API.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ breed.Fetcher = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the per-request timeout. Zero or less keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// New returns a Client for DefaultBaseURL unless overridden by opts.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client is using.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubBreeds asks the API for the sub-breeds of b. Every failure, whether
// transport, status, payload or an API-level error, is reported as a
// *breed.NotFoundError carrying the underlying cause.
func (c *Client) SubBreeds(ctx context.Context, b string) ([]string, error) {
	if b == "" {
		return nil, breed.NotFound(b, nil)
	}

	target := fmt.Sprintf("%s/breed/%s/list", c.baseURL, url.PathEscape(b))
	doc, err := c.get(ctx, target)
	if err != nil {
		return nil, breed.NotFound(b, err)
	}

	msg, err := message(doc)
	if err != nil {
		return nil, breed.NotFound(b, err)
	}
	if !msg.IsArray() {
		return nil, breed.NotFound(b, fmt.Errorf("%w: message is not an array", errPayload))
	}

	elems := msg.Array()
	subs := make([]string, 0, len(elems))
	for i, v := range elems {
		if v.Type != gjson.String {
			return nil, breed.NotFound(b, fmt.Errorf("%w: message element %d is %s, not a string", errPayload, i, v.Type))
		}
		subs = append(subs, v.String())
	}

	log.WithField("breed", b).Debugf("api returned %d sub-breeds", len(subs))
	return subs, nil
}

// Breeds lists every breed the API knows about, sorted by name.
func (c *Client) Breeds(ctx context.Context) ([]string, error) {
	doc, err := c.get(ctx, c.baseURL+"/breeds/list/all")
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}

	msg, err := message(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}
	if !msg.IsObject() {
		return nil, fmt.Errorf("failed to list breeds: %w: message is not an object", errPayload)
	}

	var names []string
	msg.ForEach(func(key, _ gjson.Result) bool {
		names = append(names, key.String())
		return true
	})
	sort.Strings(names)

	return names, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	log.Debugf("GET %s", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(io.LimitReader(resp.Body, MaxResponseBytes+1)); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if doc.Len() > MaxResponseBytes {
		return nil, fmt.Errorf("%w: response exceeds %d bytes", errPayload, MaxResponseBytes)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debugf("GET %s: %s", target, resp.Status)
		return nil, fmt.Errorf("%w: %s", errStatus, resp.Status)
	}

	return doc.Bytes(), nil
}

// message validates the dog.ceo envelope and returns its message member.
func message(doc []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(doc) {
		return gjson.Result{}, fmt.Errorf("%w: invalid json", errPayload)
	}

	status := gjson.GetBytes(doc, "status").String()
	if status != "success" {
		detail := gjson.GetBytes(doc, "message").String()
		return gjson.Result{}, fmt.Errorf("%w: status %q: %s", errAPI, status, detail)
	}

	return gjson.GetBytes(doc, "message"), nil
}
