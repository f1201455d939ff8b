// Package client is a Go consumer of the Naksh Jewels API. It wraps the
// HTTP contract and carries the local state mirrors (CatalogState,
// CartState) that a front end keeps between renders.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/internal/domain"
)

// APIError is a failure envelope decoded from the server, including field
// errors for 422 responses.
type APIError struct {
	Status  int
	Message string
	Fields  []domain.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
	log        *logrus.Logger
}

type Option func(*Client)

// WithUserID sets the x-user-id header selecting the server-side cart.
func WithUserID(userID string) Option {
	return func(c *Client) { c.userID = userID }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) { c.log = logger }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		userID:     domain.DefaultUserID,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logrus.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Count   int                 `json:"count"`
	Data    json.RawMessage     `json:"data"`
	Error   string              `json:"error"`
	Errors  []domain.FieldError `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-user-id", c.userID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debugf("Client: %s %s", method, path)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decoding response from %s %s: %w", method, path, err)
	}
	if !env.Success {
		message := env.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &APIError{Status: resp.StatusCode, Message: message, Fields: env.Errors}
	}
	return &env, nil
}

// ItemStatus is the payload of a successful cart mutation.
type ItemStatus struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
	ItemCount int `json:"itemCount"`
}

// Products fetches the catalog, optionally restricted by price bounds.
func (c *Client) Products(ctx context.Context, filter domain.PriceFilter) ([]domain.Product, error) {
	query := url.Values{}
	if filter.MinPrice != nil {
		query.Set("minPrice", strconv.Itoa(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		query.Set("maxPrice", strconv.Itoa(*filter.MaxPrice))
	}
	path := "/api/products"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	env, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var products []domain.Product
	if err := json.Unmarshal(env.Data, &products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

func (c *Client) Product(ctx context.Context, id int) (*domain.Product, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}
	var product domain.Product
	if err := json.Unmarshal(env.Data, &product); err != nil {
		return nil, fmt.Errorf("decoding product: %w", err)
	}
	return &product, nil
}

// Cart fetches the enriched server-side cart.
func (c *Client) Cart(ctx context.Context) (*domain.CartView, error) {
	env, err := c.do(ctx, http.MethodGet, "/api/cart", nil)
	if err != nil {
		return nil, err
	}
	var view domain.CartView
	if err := json.Unmarshal(env.Data, &view); err != nil {
		return nil, fmt.Errorf("decoding cart: %w", err)
	}
	return &view, nil
}

func (c *Client) AddItem(ctx context.Context, productID, quantity int) (*ItemStatus, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/cart", map[string]int{
		"productId": productID,
		"quantity":  quantity,
	})
	if err != nil {
		return nil, err
	}
	return decodeItemStatus(env)
}

func (c *Client) UpdateItem(ctx context.Context, productID, quantity int) (*ItemStatus, error) {
	env, err := c.do(ctx, http.MethodPut, "/api/cart/"+strconv.Itoa(productID), map[string]int{
		"quantity": quantity,
	})
	if err != nil {
		return nil, err
	}
	return decodeItemStatus(env)
}

func (c *Client) RemoveItem(ctx context.Context, productID int) (*ItemStatus, error) {
	env, err := c.do(ctx, http.MethodDelete, "/api/cart/"+strconv.Itoa(productID), nil)
	if err != nil {
		return nil, err
	}
	return decodeItemStatus(env)
}

func (c *Client) ClearCart(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/cart", nil)
	return err
}

// Health reports whether the server answers its liveness probe.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}

func decodeItemStatus(env *envelope) (*ItemStatus, error) {
	var status ItemStatus
	if err := json.Unmarshal(env.Data, &status); err != nil {
		return nil, fmt.Errorf("decoding cart item status: %w", err)
	}
	return &status, nil
}
