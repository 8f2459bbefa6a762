package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials and ErrSignupFailed carry the two fixed
	// user-facing auth messages. Underlying causes are deliberately not
	// distinguished.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrSignupFailed       = errors.New("Signup failed")

	// ErrMissingCredentials rejects empty credentials locally, before
	// any network call.
	ErrMissingCredentials = errors.New("Please enter username and password")

	// ErrNoIdentity is returned when a scoped request is attempted
	// without an authenticated session.
	ErrNoIdentity = errors.New("no identity in session")
)

// Client is a thin typed wrapper over the warehouse REST API. Every
// non-auth request is scoped with the current identity's id, taken from
// the injected session store. Requests are independent: no queuing, no
// retries, and a failed request mutates no local state.
type Client struct {
	http    *http.Client
	baseURL string
	session models.SessionStore
}

var _ models.WarehouseClient = (*Client)(nil)

func NewClient(baseURL string, session models.SessionStore) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		session: session,
	}
}

// Login authenticates against the remote store. On success the returned
// identity is persisted in the session; any failure collapses to
// ErrInvalidCredentials.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Identity, error) {
	return c.authenticate(ctx, "/auth/login", creds, ErrInvalidCredentials)
}

// Register creates an account. On success the returned identity is
// persisted in the session; any failure collapses to ErrSignupFailed.
func (c *Client) Register(ctx context.Context, creds models.Credentials) (*models.Identity, error) {
	return c.authenticate(ctx, "/auth/register", creds, ErrSignupFailed)
}

func (c *Client) authenticate(ctx context.Context, path string, creds models.Credentials, failure error) (*models.Identity, error) {
	if !creds.Valid() {
		return nil, ErrMissingCredentials
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, creds)
	if err != nil {
		return nil, failure
	}

	var identity models.Identity
	if err := c.do(req, &identity); err != nil {
		logger.Log.Info("authentication failed", zap.String("path", path), zap.Error(err))
		return nil, failure
	}

	if err := c.session.Init(identity); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	return &identity, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	req, err := c.scopedRequest(ctx, http.MethodGet, "/products", nil, nil)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := c.do(req, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error) {
	req, err := c.scopedRequest(ctx, http.MethodPost, "/products", nil, draft)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, draft models.ProductDraft) (*models.Product, error) {
	req, err := c.scopedRequest(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), nil, draft)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	req, err := c.scopedRequest(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	req, err := c.scopedRequest(ctx, http.MethodGet, "/orders", nil, nil)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := c.do(req, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (c *Client) GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	req, err := c.scopedRequest(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/items", orderID), nil, nil)
	if err != nil {
		return nil, err
	}

	var items []models.OrderItem
	if err := c.do(req, &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (c *Client) CreateOrder(ctx context.Context, items []models.LineItem) (*models.Order, error) {
	req, err := c.scopedRequest(ctx, http.MethodPost, "/orders", nil, models.CreateOrderRequest{Items: items})
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, items []models.LineItem) (*models.Order, error) {
	req, err := c.scopedRequest(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), nil, models.CreateOrderRequest{Items: items})
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown order status %q", status)
	}

	query := url.Values{"status": {string(status)}}
	req, err := c.scopedRequest(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", id), query, nil)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := c.do(req, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	req, err := c.scopedRequest(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
	if err != nil {
		return err
	}

	return c.do(req, nil)
}

// scopedRequest builds a request carrying the current identity's id as
// the userId query parameter. It fails before any network activity when
// the session is unauthenticated.
func (c *Client) scopedRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	identity := c.session.Current()
	if identity == nil || identity.ID == 0 {
		return nil, ErrNoIdentity
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("userId", strconv.FormatInt(identity.ID, 10))

	return c.newRequest(ctx, method, path, query, body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	endpoint := c.baseURL + "/api" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("remote returned %s for %s %s", res.Status, req.Method, req.URL.Path)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}
