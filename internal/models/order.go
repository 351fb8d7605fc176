package models

import (
	"fmt"
	"time"
)

type OrderType string

const (
	OrderTypeTable    OrderType = "table"
	OrderTypeDelivery OrderType = "delivery"
)

func ParseOrderType(s string) (OrderType, error) {
	switch t := OrderType(s); t {
	case OrderTypeTable, OrderTypeDelivery:
		return t, nil
	default:
		return "", fmt.Errorf("unknown order type %q", s)
	}
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusPaid      OrderStatus = "paid"
)

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch st := OrderStatus(s); st {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusPaid:
		return st, nil
	default:
		return "", fmt.Errorf("unknown order status %q", s)
	}
}

type OrderItem struct {
	ID        int64         `json:"id"`
	ProductID int64         `json:"product_id"`
	Quantity  int           `json:"quantity"`
	Price     float64       `json:"price"`
	Notes     string        `json:"notes,omitempty"`
	Product   ProductSimple `json:"product"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

type Order struct {
	ID              int64       `json:"id"`
	OrderNumber     string      `json:"order_number"`
	OrderType       OrderType   `json:"order_type"`
	Status          OrderStatus `json:"status"`
	TableID         *int64      `json:"table_id,omitempty"`
	CustomerName    string      `json:"customer_name,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	CustomerAddress string      `json:"customer_address,omitempty"`
	Subtotal        float64     `json:"subtotal"`
	Tax             float64     `json:"tax"`
	Total           float64     `json:"total"`
	CreatedBy       int64       `json:"created_by"`
	Items           []OrderItem `json:"items"`
	Table           *Table      `json:"table,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       *time.Time  `json:"updated_at,omitempty"`
}

// OrderSummary is the list-endpoint shape.
type OrderSummary struct {
	ID           int64       `json:"id"`
	OrderNumber  string      `json:"order_number"`
	OrderType    OrderType   `json:"order_type"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	TableID      *int64      `json:"table_id,omitempty"`
	CustomerName string      `json:"customer_name,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItemCreate struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

type OrderItemUpdate struct {
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

type OrderCreate struct {
	OrderType       OrderType         `json:"order_type"`
	TableID         *int64            `json:"table_id,omitempty"`
	CustomerName    string            `json:"customer_name,omitempty"`
	CustomerPhone   string            `json:"customer_phone,omitempty"`
	CustomerAddress string            `json:"customer_address,omitempty"`
	Items           []OrderItemCreate `json:"items"`
}

type OrderUpdate struct {
	Status          *OrderStatus `json:"status,omitempty"`
	TableID         *int64       `json:"table_id,omitempty"`
	CustomerName    *string      `json:"customer_name,omitempty"`
	CustomerPhone   *string      `json:"customer_phone,omitempty"`
	CustomerAddress *string      `json:"customer_address,omitempty"`
}

// OrderItemsCreate is the body of POST /orders/{id}/items.
type OrderItemsCreate struct {
	Items []OrderItemCreate `json:"items"`
}
