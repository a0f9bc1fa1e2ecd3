package bookapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bookweb/internal/book"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://localhost:7058/api"
	DefaultUserAgent = "bookweb/1.0"
	DefaultTimeout   = 15 * time.Second

	maxErrorBody = 1 << 20
)

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// RPS caps outgoing requests per second. Zero means no limit.
	RPS float64
	// InsecureSkipVerify accepts the self-signed certificate of a local API.
	InsecureSkipVerify bool
}

var _ book.Client = (*Client)(nil)

// Client talks to the books resource under BaseURL. Every method performs a
// single request: nothing is retried or cached.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RPS), 1)
	}

	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.InsecureSkipVerify {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		httpClient.Transport = transport
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		limiter:    limiter,
	}
}

// apiError matches the error body returned by the books API.
type apiError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// List calls GET /books
func (c *Client) List(ctx context.Context) ([]book.Book, error) {
	const op = "Failed to fetch books"

	resp, err := c.do(ctx, http.MethodGet, "/books", nil)
	if err != nil {
		return nil, fail("fetching books", &FetchError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fail("fetching books", statusError(op, resp))
	}

	var books []book.Book
	if err := json.NewDecoder(resp.Body).Decode(&books); err != nil {
		return nil, fail("fetching books", &FetchError{Op: op, StatusCode: resp.StatusCode, Err: err})
	}
	if books == nil {
		books = []book.Book{}
	}
	return books, nil
}

// Get calls GET /books/{id}
func (c *Client) Get(ctx context.Context, id int64) (book.Book, error) {
	const op = "Failed to fetch book"
	what := fmt.Sprintf("fetching book %d", id)

	if id <= 0 {
		return book.Book{}, fail(what, &FetchError{Op: op, Err: ErrInvalidID})
	}

	resp, err := c.do(ctx, http.MethodGet, bookPath(id), nil)
	if err != nil {
		return book.Book{}, fail(what, &FetchError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return book.Book{}, fail(what, &NotFoundError{ID: id})
	}
	if !isSuccess(resp.StatusCode) {
		return book.Book{}, fail(what, statusError(op, resp))
	}

	var b book.Book
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return book.Book{}, fail(what, &FetchError{Op: op, StatusCode: resp.StatusCode, Err: err})
	}
	return b, nil
}

// Create calls POST /books
func (c *Client) Create(ctx context.Context, in book.CreateInput) (book.Book, error) {
	const op = "Failed to create book"

	resp, err := c.do(ctx, http.MethodPost, "/books", in)
	if err != nil {
		return book.Book{}, fail("creating book", &FetchError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return book.Book{}, fail("creating book", rejection(op, resp))
	}

	var b book.Book
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return book.Book{}, fail("creating book", &FetchError{Op: op, StatusCode: resp.StatusCode, Err: err})
	}
	return b, nil
}

// Update calls PUT /books/{id}
func (c *Client) Update(ctx context.Context, id int64, in book.UpdateInput) (book.Book, error) {
	const op = "Failed to update book"
	what := fmt.Sprintf("updating book %d", id)

	if id <= 0 {
		return book.Book{}, fail(what, &FetchError{Op: op, Err: ErrInvalidID})
	}

	resp, err := c.do(ctx, http.MethodPut, bookPath(id), in)
	if err != nil {
		return book.Book{}, fail(what, &FetchError{Op: op, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return book.Book{}, fail(what, &NotFoundError{ID: id})
	}
	if !isSuccess(resp.StatusCode) {
		return book.Book{}, fail(what, rejection(op, resp))
	}

	var b book.Book
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return book.Book{}, fail(what, &FetchError{Op: op, StatusCode: resp.StatusCode, Err: err})
	}
	return b, nil
}

// Delete calls DELETE /books/{id}
func (c *Client) Delete(ctx context.Context, id int64) error {
	const op = "Failed to delete book"
	what := fmt.Sprintf("deleting book %d", id)

	if id <= 0 {
		return fail(what, &FetchError{Op: op, Err: ErrInvalidID})
	}

	resp, err := c.do(ctx, http.MethodDelete, bookPath(id), nil)
	if err != nil {
		return fail(what, &FetchError{Op: op, Err: err})
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode == http.StatusNotFound {
		return fail(what, &NotFoundError{ID: id})
	}
	if !isSuccess(resp.StatusCode) {
		return fail(what, &FetchError{Op: op, StatusCode: resp.StatusCode})
	}
	return nil
}

// Ping reports whether the books resource answers with a success status.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/books", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if !isSuccess(resp.StatusCode) {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.httpClient.Do(req)
}

func bookPath(id int64) string {
	return "/books/" + strconv.FormatInt(id, 10)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func statusError(op string, resp *http.Response) *FetchError {
	return &FetchError{
		Op:         op,
		StatusCode: resp.StatusCode,
		Status:     http.StatusText(resp.StatusCode),
	}
}

// rejection turns a non-2xx create/update response into a ValidationError,
// using the server message when the body has one.
func rejection(fallback string, resp *http.Response) *ValidationError {
	ve := &ValidationError{StatusCode: resp.StatusCode, Message: fallback}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ve
	}

	var body apiError
	if err := json.Unmarshal(raw, &body); err != nil {
		return ve
	}
	if body.Message != "" {
		ve.Message = body.Message
	}
	ve.Fields = body.Errors
	return ve
}

func fail(what string, err error) error {
	log.Printf("Error %s: %v", what, err)
	return err
}
