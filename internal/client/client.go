package client

import (
	"context"

	"github.com/restomate/poscli/internal/models"
)

// TokenSource yields the bearer token to attach to an outgoing request.
// An empty token with a nil error means "no session"; the request is then
// sent unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, error)

func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// OrderFilter narrows GET /orders/ results. Zero values mean "not set".
type OrderFilter struct {
	Skip      int
	Limit     int
	Status    models.OrderStatus
	OrderType models.OrderType
}

// Client is the full backend surface consumed by the screens.
type Client interface {
	// Auth.
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Register(ctx context.Context, user models.UserCreate) (*models.User, error)

	// Users (admin).
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, user models.UserCreate) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, user models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	// Categories.
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.CategoryCreate) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, category models.CategoryUpdate) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// Products.
	ListProducts(ctx context.Context) ([]models.ProductSimple, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.ProductCreate) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, product models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	// Tables.
	ListTables(ctx context.Context) ([]models.Table, error)
	CreateTable(ctx context.Context, table models.TableCreate) (*models.Table, error)
	UpdateTable(ctx context.Context, id int64, table models.TableUpdate) (*models.Table, error)
	DeleteTable(ctx context.Context, id int64) error
	SetTableOccupied(ctx context.Context, id int64, occupied bool) (*models.Table, error)

	// Orders.
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.OrderSummary, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, order models.OrderCreate) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, order models.OrderUpdate) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	AddOrderItems(ctx context.Context, id int64, items []models.OrderItemCreate) (*models.Order, error)
	UpdateOrderItem(ctx context.Context, orderID, itemID int64, item models.OrderItemUpdate) (*models.Order, error)
	RemoveOrderItem(ctx context.Context, orderID, itemID int64) (*models.Order, error)
	KitchenOrders(ctx context.Context) ([]models.Order, error)
	CashierPendingOrders(ctx context.Context) ([]models.Order, error)
}
