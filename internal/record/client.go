package record

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jask/swipedeck/internal/errors"
)

// maxBody caps how much of a response is read; records are small JSON objects.
const maxBody = 1 << 20

// Client fetches records from the card service.
type Client struct {
	base *url.URL
	http *http.Client
}

// NewClient builds a Client for baseURL. A zero timeout leaves requests bounded
// only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", baseURL)
	}
	return &Client{base: u, http: &http.Client{Timeout: timeout}}, nil
}

// FetchNext asks for an arbitrary unseen record.
func (c *Client) FetchNext(ctx context.Context) (Record, error) {
	return c.get(ctx, "/api/next")
}

// FetchByID asks for one specific record.
func (c *Client) FetchByID(ctx context.Context, id string) (Record, error) {
	return c.get(ctx, "/api/meta/"+url.PathEscape(id))
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

// Resolve turns a record's image URL into an absolute URL against the service.
func (c *Client) Resolve(ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return c.base.ResolveReference(r).String()
}

func (c *Client) get(ctx context.Context, endpoint string) (Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+endpoint, nil)
	if err != nil {
		return Record{}, errors.NewTransport(endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Record{}, errors.NewTransport(endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return Record{}, errors.NewBadStatus(endpoint, resp.StatusCode)
	}
	return decode(endpoint, io.LimitReader(resp.Body, maxBody))
}

// decode accepts only a JSON object whose id and url are non-empty strings.
func decode(endpoint string, r io.Reader) (Record, error) {
	var raw map[string]json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return Record{}, errors.NewMalformed(endpoint, "body is not a JSON object", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Record{}, errors.NewMalformed(endpoint, "trailing data after object", err)
	}
	var rec Record
	fields := []struct {
		key      string
		dst      *string
		required bool
	}{
		{"id", &rec.ID, true},
		{"url", &rec.URL, true},
		{"name", &rec.Name, false},
		{"description", &rec.Description, false},
	}
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok || string(v) == "null" {
			if f.required {
				return Record{}, errors.NewMalformed(endpoint, "missing "+f.key, nil)
			}
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return Record{}, errors.NewMalformed(endpoint, f.key+" is not a string", err)
		}
		if f.required && *f.dst == "" {
			return Record{}, errors.NewMalformed(endpoint, "empty "+f.key, nil)
		}
	}
	return rec, nil
}
