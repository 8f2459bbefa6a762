package models

import (
	"github.com/sakthiprasad2004/warehouse-manager/internal/utils"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusDelivered OrderStatus = "DELIVERED"
)

// OrderStatuses lists every status in its fixed enumeration order. The
// status histogram and every exhaustive switch follow this order.
var OrderStatuses = []OrderStatus{StatusPending, StatusShipped, StatusDelivered}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered:
		return true
	}
	return false
}

type Order struct {
	ID        int64             `json:"id"`
	OrderDate utils.RFC3339Date `json:"orderDate"`
	Status    OrderStatus       `json:"status"`
}

// OrderItem exists only as a child of an order and embeds a snapshot of
// the product it refers to.
type OrderItem struct {
	ID       int64   `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineItem is one slot of the in-progress, unpersisted draft list edited
// in the order dialog. Drafts are discarded on close and submitted
// all-or-nothing in a single request.
type LineItem struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Valid reports whether the slot references a product and carries a
// positive quantity.
func (li LineItem) Valid() bool {
	return li.ProductID > 0 && li.Quantity > 0
}

// ValidLineItems filters items down to the submittable ones, preserving
// order.
func ValidLineItems(items []LineItem) []LineItem {
	valid := make([]LineItem, 0, len(items))
	for _, item := range items {
		if item.Valid() {
			valid = append(valid, item)
		}
	}
	return valid
}

// CreateOrderRequest is the payload for creating or replacing an order's
// item set.
type CreateOrderRequest struct {
	Items []LineItem `json:"items"`
}
