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
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/restomate/poscli/internal/common"
	"github.com/restomate/poscli/internal/logging"
	"github.com/restomate/poscli/internal/models"
)

// RESTClient is the HTTP implementation of Client.
type RESTClient struct {
	baseURL  string
	http     *http.Client
	tokens   TokenSource
	authLost func()
	log      logging.Logger
}

type Option func(*RESTClient)

// WithAuthLostHandler sets the hook invoked when an authenticated request is
// rejected with 401. It is called once per failing response, on the goroutine
// that issued the request.
func WithAuthLostHandler(fn func()) Option {
	return func(c *RESTClient) {
		c.authLost = fn
	}
}

// WithHTTPClient replaces the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *RESTClient) {
		c.http = h
	}
}

// NewRESTClient builds a client for the backend at baseURL (which includes
// the /api prefix). tokens supplies the bearer token per request.
func NewRESTClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger, opts ...Option) *RESTClient {
	c := &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// call describes a single outbound request.
type call struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
	out         any
	// skipAuth marks credential-exchange calls: no bearer header is attached
	// and a 401 means rejected credentials, not a lost session.
	skipAuth bool
}

func (c *RESTClient) do(ctx context.Context, cl call) error {
	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, cl.body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	contentType := cl.contentType
	if contentType == "" {
		contentType = "application/json"
	}
	if cl.body != nil {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// The token is read at the moment of use, never cached on the client:
	// login and logout must be visible to the very next request.
	authenticated := false
	if !cl.skipAuth {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			authenticated = true
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", cl.method, "path", cl.path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request finished",
		"method", cl.method, "path", cl.path,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode == http.StatusUnauthorized {
		if !authenticated {
			return common.ErrInvalidCredentials
		}
		if c.authLost != nil {
			c.authLost()
		}
		return common.ErrAuthorizationLost
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := readDetail(resp.Body)
		if resp.StatusCode == http.StatusNotFound {
			if detail != "" {
				return fmt.Errorf("%w: %s", common.ErrNotFound, detail)
			}
			return common.ErrNotFound
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}

	if cl.out != nil {
		if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// readDetail extracts FastAPI's {"detail": "..."} error body, if present.
func readDetail(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return ""
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || body.Detail == "" {
		return strings.TrimSpace(string(data))
	}
	return body.Detail
}

func (c *RESTClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, call{method: http.MethodGet, path: path, query: query, out: out})
}

func (c *RESTClient) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}
	return c.do(ctx, call{method: method, path: path, body: body, out: out})
}

func (c *RESTClient) delete(ctx context.Context, path string) error {
	return c.do(ctx, call{method: http.MethodDelete, path: path})
}

// Login exchanges credentials for an access token via the form-encoded login
// endpoint. A 401 here maps to common.ErrInvalidCredentials.
func (c *RESTClient) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var token models.Token
	err := c.do(ctx, call{
		method:      http.MethodPost,
		path:        "/users/login",
		body:        strings.NewReader(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		out:         &token,
		skipAuth:    true,
	})
	if err != nil {
		return "", err
	}
	return token.AccessToken, nil
}

func (c *RESTClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates an account via the public user-creation endpoint.
func (c *RESTClient) Register(ctx context.Context, user models.UserCreate) (*models.User, error) {
	var created models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.getJSON(ctx, "/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *RESTClient) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error) {
	return c.Register(ctx, user)
}

func (c *RESTClient) UpdateUser(ctx context.Context, id int64, user models.UserUpdate) (*models.User, error) {
	var updated models.User
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (c *RESTClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON(ctx, "/products/categories/", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *RESTClient) CreateCategory(ctx context.Context, category models.CategoryCreate) (*models.Category, error) {
	var created models.Category
	if err := c.sendJSON(ctx, http.MethodPost, "/products/categories/", category, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) UpdateCategory(ctx context.Context, id int64, category models.CategoryUpdate) (*models.Category, error) {
	var updated models.Category
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/products/categories/%d", id), category, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/products/categories/%d", id))
}

func (c *RESTClient) ListProducts(ctx context.Context) ([]models.ProductSimple, error) {
	var products []models.ProductSimple
	if err := c.getJSON(ctx, "/products/", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *RESTClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *RESTClient) CreateProduct(ctx context.Context, product models.ProductCreate) (*models.Product, error) {
	var created models.Product
	if err := c.sendJSON(ctx, http.MethodPost, "/products/", product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) UpdateProduct(ctx context.Context, id int64, product models.ProductUpdate) (*models.Product, error) {
	var updated models.Product
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteProduct(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/products/%d", id))
}

func (c *RESTClient) ListTables(ctx context.Context) ([]models.Table, error) {
	var tables []models.Table
	if err := c.getJSON(ctx, "/tables/", nil, &tables); err != nil {
		return nil, err
	}
	return tables, nil
}

func (c *RESTClient) CreateTable(ctx context.Context, table models.TableCreate) (*models.Table, error) {
	var created models.Table
	if err := c.sendJSON(ctx, http.MethodPost, "/tables/", table, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) UpdateTable(ctx context.Context, id int64, table models.TableUpdate) (*models.Table, error) {
	var updated models.Table
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/tables/%d", id), table, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) DeleteTable(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/tables/%d", id))
}

func (c *RESTClient) SetTableOccupied(ctx context.Context, id int64, occupied bool) (*models.Table, error) {
	query := url.Values{}
	query.Set("is_occupied", strconv.FormatBool(occupied))

	var updated models.Table
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("/tables/%d/occupy", id),
		query:  query,
		out:    &updated,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) ListOrders(ctx context.Context, filter OrderFilter) ([]models.OrderSummary, error) {
	query := url.Values{}
	if filter.Skip > 0 {
		query.Set("skip", strconv.Itoa(filter.Skip))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Status != "" {
		query.Set("status", string(filter.Status))
	}
	if filter.OrderType != "" {
		query.Set("order_type", string(filter.OrderType))
	}

	var orders []models.OrderSummary
	if err := c.getJSON(ctx, "/orders/", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *RESTClient) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, fmt.Sprintf("/orders/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *RESTClient) CreateOrder(ctx context.Context, order models.OrderCreate) (*models.Order, error) {
	var created models.Order
	if err := c.sendJSON(ctx, http.MethodPost, "/orders/", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *RESTClient) UpdateOrder(ctx context.Context, id int64, order models.OrderUpdate) (*models.Order, error) {
	var updated models.Order
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), order, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var updated models.Order
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   fmt.Sprintf("/orders/%d/status", id),
		query:  query,
		out:    &updated,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) AddOrderItems(ctx context.Context, id int64, items []models.OrderItemCreate) (*models.Order, error) {
	var updated models.Order
	body := models.OrderItemsCreate{Items: items}
	if err := c.sendJSON(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/items", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) UpdateOrderItem(ctx context.Context, orderID, itemID int64, item models.OrderItemUpdate) (*models.Order, error) {
	var updated models.Order
	if err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/items/%d", orderID, itemID), item, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) RemoveOrderItem(ctx context.Context, orderID, itemID int64) (*models.Order, error) {
	var updated models.Order
	err := c.do(ctx, call{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/orders/%d/items/%d", orderID, itemID),
		out:    &updated,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *RESTClient) KitchenOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/kitchen", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *RESTClient) CashierPendingOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.getJSON(ctx, "/orders/cashier/pending", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

var _ Client = (*RESTClient)(nil)
