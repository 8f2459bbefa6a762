package models

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_client.go . WarehouseClient
type WarehouseClient interface {
	Login(ctx context.Context, creds Credentials) (*Identity, error)

	Register(ctx context.Context, creds Credentials) (*Identity, error)

	ListProducts(ctx context.Context) ([]Product, error)

	CreateProduct(ctx context.Context, draft ProductDraft) (*Product, error)

	UpdateProduct(ctx context.Context, id int64, draft ProductDraft) (*Product, error)

	DeleteProduct(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]Order, error)

	GetOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error)

	CreateOrder(ctx context.Context, items []LineItem) (*Order, error)

	UpdateOrder(ctx context.Context, id int64, items []LineItem) (*Order, error)

	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) (*Order, error)

	DeleteOrder(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_session.go . SessionStore
type SessionStore interface {
	Current() *Identity

	Init(identity Identity) error

	Clear() error
}
