package labelapi

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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/labelkit/label-console/internal/model"
)

// Endpoint paths on the label server
const (
	ProductsPath = "/api/products"
	PreviewPath  = "/preview"
	PrintPath    = "/api/print"
)

// Request defaults
const (
	DefaultTimeout  = 10 * time.Second
	RequestIDHeader = "X-Request-ID"
	maxBodySize     = 64 << 10
	maxPreviewSize  = 8 << 20
)

// Client talks to the label server over HTTP
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	logger   *zap.Logger
	validate *validator.Validate
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout sets the per-request timeout of the underlying http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client for the label server at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: missing host", baseURL)
	}
	u.RawQuery = ""
	u.Fragment = ""

	c := &Client{
		baseURL:  u,
		http:     &http.Client{Timeout: DefaultTimeout},
		logger:   zap.NewNop(),
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the server URL the client was created with
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// SearchProducts calls GET /api/products?q=<query>
func (c *Client) SearchProducts(ctx context.Context, query string) ([]model.Product, error) {
	q := url.Values{}
	q.Set("q", query)

	resp, err := c.do(ctx, http.MethodGet, c.endpoint(ProductsPath, q), nil)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("search products: %w", readStatusError(resp))
	}

	var products []model.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("search products: decode response: %w", err)
	}
	return products, nil
}

// PreviewURL returns GET /preview?barcode=<b>&store=<s>&exp=<e>
func (c *Client) PreviewURL(barcode, store, exp string) string {
	q := url.Values{}
	q.Set("barcode", barcode)
	q.Set("store", store)
	q.Set("exp", exp)
	return c.endpoint(PreviewPath, q)
}

// FetchPreview downloads the preview image
func (c *Client) FetchPreview(ctx context.Context, barcode, store, exp string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, c.PreviewURL(barcode, store, exp), nil)
	if err != nil {
		return nil, fmt.Errorf("fetch preview: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("fetch preview: %w", readStatusError(resp))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPreviewSize))
	if err != nil {
		return nil, fmt.Errorf("fetch preview: read image: %w", err)
	}
	return data, nil
}

// Print calls POST /api/print with req as JSON
func (c *Client) Print(ctx context.Context, req model.PrintRequest) (*model.PrintResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("print: encode request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.endpoint(PrintPath, nil), body)
	if err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("print: read response: %w", err)
	}

	var result model.PrintResult
	if err := json.Unmarshal(raw, &result); err != nil {
		if isSuccess(resp.StatusCode) {
			return nil, fmt.Errorf("print: decode response: %w", err)
		}
		return nil, fmt.Errorf("print: %w", &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))})
	}

	if !isSuccess(resp.StatusCode) {
		result.OK = false
	}
	return &result, nil
}

// endpoint joins path onto the base URL, keeping any base path prefix
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, method, target string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("label server request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", req.URL.Path),
			zap.Duration("elapsed", time.Since(started)),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("label server request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(started)))
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func readStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	return &StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
}
