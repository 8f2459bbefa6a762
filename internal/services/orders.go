package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/session"
	"go.uber.org/zap"
)

type orderClient interface {
	ListOrders(ctx context.Context) ([]models.Order, error)

	GetOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error)

	CreateOrder(ctx context.Context, items []models.LineItem) (*models.Order, error)

	UpdateOrder(ctx context.Context, id int64, items []models.LineItem) (*models.Order, error)

	UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)

	DeleteOrder(ctx context.Context, id int64) error
}

// OrderWorkflow keeps the local order view consistent with the remote
// store. Mutations never patch local state: every successful write is
// followed by a full reload, so the view always shows an authoritative
// post-mutation snapshot.
type OrderWorkflow struct {
	client orderClient
	guard  *session.Guard

	mu     sync.Mutex
	gen    uint64
	orders []models.Order

	state   DialogState
	editing *int64
	drafts  []models.LineItem
}

func NewOrderWorkflow(client orderClient, guard *session.Guard) *OrderWorkflow {
	return &OrderWorkflow{client: client, guard: guard}
}

// blankSlot is the single empty draft a new dialog starts with.
func blankSlot() models.LineItem {
	return models.LineItem{ProductID: 0, Quantity: 1}
}

// Reload fetches the authoritative order collection. A response that
// arrives after the view moved on (another reload started, or the view
// closed) is discarded instead of clobbering newer state.
func (w *OrderWorkflow) Reload(ctx context.Context) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	orders, err := w.client.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen {
		logger.Log.Debug("discarding stale order snapshot", zap.Uint64("generation", gen))
		return nil
	}

	w.orders = orders

	return nil
}

// Orders returns the last loaded snapshot.
func (w *OrderWorkflow) Orders() []models.Order {
	w.mu.Lock()
	defer w.mu.Unlock()

	orders := make([]models.Order, len(w.orders))
	copy(orders, w.orders)
	return orders
}

// ViewItems fetches the line items of one order for the read-only items
// dialog.
func (w *OrderWorkflow) ViewItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	if err := w.guard.Require(); err != nil {
		return nil, err
	}

	items, err := w.client.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	return items, nil
}

// OpenCreate opens the dialog with a single blank slot.
func (w *OrderWorkflow) OpenCreate() []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogOpen
	w.editing = nil
	w.drafts = []models.LineItem{blankSlot()}

	return w.draftsLocked()
}

// OpenEdit opens the dialog for an existing order, mapping its current
// items to drafts. An order with no items still gets one blank slot.
func (w *OrderWorkflow) OpenEdit(ctx context.Context, orderID int64) ([]models.LineItem, error) {
	if err := w.guard.Require(); err != nil {
		return nil, err
	}

	items, err := w.client.GetOrderItems(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}

	drafts := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		drafts = append(drafts, models.LineItem{ProductID: item.Product.ID, Quantity: item.Quantity})
	}
	if len(drafts) == 0 {
		drafts = append(drafts, blankSlot())
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogOpen
	w.editing = &orderID
	w.drafts = drafts

	return w.draftsLocked(), nil
}

// AddItem appends a blank slot to the draft list.
func (w *OrderWorkflow) AddItem() []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != DialogOpen {
		return nil
	}

	w.drafts = append(w.drafts, blankSlot())

	return w.draftsLocked()
}

// RemoveItem deletes the slot at index. The list never shrinks below one
// slot; removing the last remaining one is a no-op.
func (w *OrderWorkflow) RemoveItem(index int) []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != DialogOpen || len(w.drafts) <= 1 || index < 0 || index >= len(w.drafts) {
		return w.draftsLocked()
	}

	w.drafts = append(w.drafts[:index], w.drafts[index+1:]...)

	return w.draftsLocked()
}

// SetItem replaces the slot at index. Out-of-range indexes are ignored.
func (w *OrderWorkflow) SetItem(index int, item models.LineItem) []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != DialogOpen || index < 0 || index >= len(w.drafts) {
		return w.draftsLocked()
	}

	w.drafts[index] = item

	return w.draftsLocked()
}

// Drafts returns a copy of the current draft list.
func (w *OrderWorkflow) Drafts() []models.LineItem {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.draftsLocked()
}

func (w *OrderWorkflow) draftsLocked() []models.LineItem {
	drafts := make([]models.LineItem, len(w.drafts))
	copy(drafts, w.drafts)
	return drafts
}

// State returns the dialog's current lifecycle state.
func (w *OrderWorkflow) State() DialogState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Close discards the draft and closes the dialog.
func (w *OrderWorkflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogClosed
	w.editing = nil
	w.drafts = nil
}

// Submit validates the draft list and sends it as a single create or
// update request. An all-invalid draft is rejected locally with zero
// network calls. On success the dialog closes and the order collection
// is reloaded; on failure the dialog stays open with the draft intact.
func (w *OrderWorkflow) Submit(ctx context.Context) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	w.mu.Lock()

	if w.state != DialogOpen {
		w.mu.Unlock()
		return ErrDialogClosed
	}

	valid := models.ValidLineItems(w.drafts)
	if len(valid) == 0 {
		w.mu.Unlock()
		return ErrNoValidItems
	}

	w.state = DialogSubmitting
	editing := w.editing
	w.mu.Unlock()

	var err error
	if editing != nil {
		_, err = w.client.UpdateOrder(ctx, *editing, valid)
	} else {
		_, err = w.client.CreateOrder(ctx, valid)
	}

	if err != nil {
		w.mu.Lock()
		if w.state == DialogSubmitting {
			w.state = DialogOpen
		}
		w.mu.Unlock()
		return fmt.Errorf("failed to save order: %w", err)
	}

	w.Close()

	if err := w.Reload(ctx); err != nil {
		// The order was persisted; a failed refresh only leaves the
		// previous snapshot on screen until the next reload.
		logger.Log.Warn("order saved but reload failed", zap.Error(err))
	}

	return nil
}

// ChangeStatus updates one order's status. It is independent of the
// draft dialog and fires immediately, reloading the collection on
// success.
func (w *OrderWorkflow) ChangeStatus(ctx context.Context, orderID int64, status models.OrderStatus) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}

	if _, err := w.client.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	if err := w.Reload(ctx); err != nil {
		logger.Log.Warn("status updated but reload failed", zap.Error(err))
	}

	return nil
}

// Delete removes an order after interactive confirmation. A declined
// confirmation issues no request and returns ErrDeclined; the target
// order is left unchanged.
func (w *OrderWorkflow) Delete(ctx context.Context, orderID int64, confirm Confirmer) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	if confirm == nil || !confirm(fmt.Sprintf("Delete order #%d?", orderID)) {
		return ErrDeclined
	}

	if err := w.client.DeleteOrder(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := w.Reload(ctx); err != nil {
		logger.Log.Warn("order deleted but reload failed", zap.Error(err))
	}

	return nil
}
