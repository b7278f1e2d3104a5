package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// DefaultURL is the placeholder collection endpoint.
const DefaultURL = "https://jsonplaceholder.typicode.com/posts"

const (
	userAgent    = "journal/1.0"
	maxBodyBytes = 5 * 1024 * 1024
	// maxErrorBody caps the response text kept in a StatusError.
	maxErrorBody = 512
)

// ErrMalformed marks a response body that could not be decoded.
var ErrMalformed = errors.New("malformed response")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method string
	URL    string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: api error (status %d): %s", e.Method, e.URL, e.Code, e.Body)
}

// Post is the wire shape of the remote collection.
type Post struct {
	ID     int64  `json:"id,omitempty"`
	UserID int    `json:"userId"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type requestIDKey struct{}

// WithRequestID attaches an id that is sent as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// Client talks JSON to a /posts style collection endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http = &http.Client{Timeout: d} }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

// List fetches the whole collection in server order.
func (c *Client) List(ctx context.Context) ([]Post, error) {
	var posts []Post
	if err := c.do(ctx, http.MethodGet, c.baseURL, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Create posts {title, body, userId}; the echoed object is returned.
func (c *Client) Create(ctx context.Context, p Post) (Post, error) {
	p.ID = 0
	var out Post
	if err := c.do(ctx, http.MethodPost, c.baseURL, p, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// Update puts {id, title, body, userId} to the item url.
func (c *Client) Update(ctx context.Context, id int64, p Post) (Post, error) {
	p.ID = id
	var out Post
	if err := c.do(ctx, http.MethodPut, c.itemURL(id), p, &out); err != nil {
		return Post{}, err
	}
	return out, nil
}

// Delete removes the item. Any response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

func (c *Client) itemURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, URL: url, Code: resp.StatusCode, Body: errorBody(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unmarshal response: %w: %v", ErrMalformed, err)
	}
	return nil
}

func errorBody(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) <= maxErrorBody {
		return s
	}
	s = strings.ToValidUTF8(s[:maxErrorBody], "")
	return s + "..."
}
