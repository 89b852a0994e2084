package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/google/uuid"
)

const (
	// APIKeyHeader carries the key required by mutating routes
	APIKeyHeader = "api_key"
	// RequestIDHeader correlates client and server logs
	RequestIDHeader = "X-Request-Id"

	maxErrorBody = 4 << 10
)

// Client talks to the food ordering REST API
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	apiKey     string
	log        *slog.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithAPIKey sends key in the api_key header of every request
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithTimeout bounds every request, including reading the body
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for request tracing
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a client for the API rooted at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: missing host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FoodFilter narrows ListFoods; zero values do not filter
type FoodFilter struct {
	Category *int64
	Name     string
}

func (f FoodFilter) values() url.Values {
	q := url.Values{}
	if f.Category != nil {
		q.Set("category_like", strconv.FormatInt(*f.Category, 10))
	}
	if f.Name != "" {
		q.Set("name_like", f.Name)
	}
	return q
}

// ListFoods returns the foods matching filter
func (c *Client) ListFoods(ctx context.Context, filter FoodFilter) ([]models.Food, error) {
	var foods []models.Food
	if err := c.do(ctx, http.MethodGet, "/foods", filter.values(), nil, &foods); err != nil {
		return nil, err
	}
	for _, food := range foods {
		if err := food.Validate(); err != nil {
			return nil, malformed(http.MethodGet, "/foods", err)
		}
	}
	return foods, nil
}

// GetFood returns one food with its extras
func (c *Client) GetFood(ctx context.Context, id int64) (*models.Food, error) {
	path := "/foods/" + strconv.FormatInt(id, 10)

	var food models.Food
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &food); err != nil {
		return nil, err
	}
	if err := food.Validate(); err != nil {
		return nil, malformed(http.MethodGet, path, err)
	}
	return &food, nil
}

// ListCategories returns every category
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	for _, category := range categories {
		if err := category.Validate(); err != nil {
			return nil, malformed(http.MethodGet, "/categories", err)
		}
	}
	return categories, nil
}

// GetFavorite returns the favorite stored for a food.
// A food that is not a favorite yields an error matching ErrNotFound.
func (c *Client) GetFavorite(ctx context.Context, foodID int64) (*models.Favorite, error) {
	path := "/favorites/" + strconv.FormatInt(foodID, 10)

	var fav models.Favorite
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &fav); err != nil {
		return nil, err
	}
	if err := fav.Validate(); err != nil {
		return nil, malformed(http.MethodGet, path, err)
	}
	return &fav, nil
}

// AddFavorite marks a food as favorite
func (c *Client) AddFavorite(ctx context.Context, fav models.Favorite) error {
	return c.do(ctx, http.MethodPost, "/favorites", nil, fav, nil)
}

// RemoveFavorite unmarks a food
func (c *Client) RemoveFavorite(ctx context.Context, foodID int64) error {
	return c.do(ctx, http.MethodDelete, "/favorites/"+strconv.FormatInt(foodID, 10), nil, nil, nil)
}

// CreateOrder submits an order and returns it as stored by the API
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	var created models.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, order, &created); err != nil {
		return nil, err
	}
	if err := created.Validate(); err != nil {
		return nil, malformed(http.MethodPost, "/orders", err)
	}
	return &created, nil
}

// ListOrders returns the order history
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &orders); err != nil {
		return nil, err
	}
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, malformed(http.MethodGet, "/orders", err)
		}
	}
	return orders, nil
}

// do sends one request and decodes a 2xx body into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("api request failed",
			"method", method,
			"path", path,
			"request_id", requestID,
			"duration", time.Since(start),
			"error", err,
		)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
		}
		return malformed(method, path, err)
	}
	return nil
}

func malformed(method, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
}

// errorMessage extracts {"error": "..."} from a failure body, or its raw text
func errorMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(data) == 0 {
		return ""
	}

	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(data))
}
