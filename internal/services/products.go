package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sakthiprasad2004/warehouse-manager/internal/logger"
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/sakthiprasad2004/warehouse-manager/internal/session"
	"go.uber.org/zap"
)

type productClient interface {
	ListProducts(ctx context.Context) ([]models.Product, error)

	CreateProduct(ctx context.Context, draft models.ProductDraft) (*models.Product, error)

	UpdateProduct(ctx context.Context, id int64, draft models.ProductDraft) (*models.Product, error)

	DeleteProduct(ctx context.Context, id int64) error
}

// ProductForm carries the raw field values of the product dialog. Fields
// stay strings until submission, when they are checked and parsed.
type ProductForm struct {
	Name     string
	Price    string
	Quantity string
}

// ProductWorkflow is the single-entity analogue of OrderWorkflow: one
// name/price/quantity form, create-or-update on submit, reload on
// success.
type ProductWorkflow struct {
	client productClient
	guard  *session.Guard

	mu       sync.Mutex
	gen      uint64
	products []models.Product

	state   DialogState
	editing *int64
	form    ProductForm
}

func NewProductWorkflow(client productClient, guard *session.Guard) *ProductWorkflow {
	return &ProductWorkflow{client: client, guard: guard}
}

// Reload fetches the authoritative product collection, discarding a
// response the view has already moved past.
func (w *ProductWorkflow) Reload(ctx context.Context) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	w.mu.Lock()
	w.gen++
	gen := w.gen
	w.mu.Unlock()

	products, err := w.client.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if gen != w.gen {
		logger.Log.Debug("discarding stale product snapshot", zap.Uint64("generation", gen))
		return nil
	}

	w.products = products

	return nil
}

// Products returns the last loaded snapshot.
func (w *ProductWorkflow) Products() []models.Product {
	w.mu.Lock()
	defer w.mu.Unlock()

	products := make([]models.Product, len(w.products))
	copy(products, w.products)
	return products
}

// OpenCreate opens the dialog with an empty form.
func (w *ProductWorkflow) OpenCreate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogOpen
	w.editing = nil
	w.form = ProductForm{}
}

// OpenEdit opens the dialog prefilled from an existing product.
func (w *ProductWorkflow) OpenEdit(product models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogOpen
	w.editing = &product.ID
	w.form = ProductForm{
		Name:     product.Name,
		Price:    strconv.FormatFloat(product.Price, 'f', -1, 64),
		Quantity: strconv.Itoa(product.Quantity),
	}
}

// SetForm replaces the form's field values.
func (w *ProductWorkflow) SetForm(form ProductForm) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != DialogOpen {
		return
	}

	w.form = form
}

// Form returns the current field values.
func (w *ProductWorkflow) Form() ProductForm {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.form
}

// State returns the dialog's current lifecycle state.
func (w *ProductWorkflow) State() DialogState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.state
}

// Close discards the form and closes the dialog.
func (w *ProductWorkflow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.gen++
	w.state = DialogClosed
	w.editing = nil
	w.form = ProductForm{}
}

// parseForm checks required fields and parses them into a draft. Every
// failure here is a local validation error: no request is issued.
func parseForm(form ProductForm) (models.ProductDraft, error) {
	if form.Name == "" || form.Price == "" || form.Quantity == "" {
		return models.ProductDraft{}, ErrMissingFields
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		return models.ProductDraft{}, fmt.Errorf("price must be a non-negative number")
	}

	quantity, err := strconv.Atoi(form.Quantity)
	if err != nil || quantity < 0 {
		return models.ProductDraft{}, fmt.Errorf("quantity must be a non-negative integer")
	}

	return models.ProductDraft{Name: form.Name, Price: price, Quantity: quantity}, nil
}

// Submit validates the form and issues a create or update depending on
// whether an existing product is being edited. On success the dialog
// closes and the collection reloads; on failure it stays open with the
// form intact.
func (w *ProductWorkflow) Submit(ctx context.Context) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	w.mu.Lock()

	if w.state != DialogOpen {
		w.mu.Unlock()
		return ErrDialogClosed
	}

	draft, err := parseForm(w.form)
	if err != nil {
		w.mu.Unlock()
		return err
	}

	w.state = DialogSubmitting
	editing := w.editing
	w.mu.Unlock()

	if editing != nil {
		_, err = w.client.UpdateProduct(ctx, *editing, draft)
	} else {
		_, err = w.client.CreateProduct(ctx, draft)
	}

	if err != nil {
		w.mu.Lock()
		if w.state == DialogSubmitting {
			w.state = DialogOpen
		}
		w.mu.Unlock()
		return fmt.Errorf("failed to save product: %w", err)
	}

	w.Close()

	if err := w.Reload(ctx); err != nil {
		logger.Log.Warn("product saved but reload failed", zap.Error(err))
	}

	return nil
}

// Delete removes a product after interactive confirmation. A declined
// confirmation issues no request and returns ErrDeclined.
func (w *ProductWorkflow) Delete(ctx context.Context, productID int64, confirm Confirmer) error {
	if err := w.guard.Require(); err != nil {
		return err
	}

	if confirm == nil || !confirm(fmt.Sprintf("Delete product #%d?", productID)) {
		return ErrDeclined
	}

	if err := w.client.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if err := w.Reload(ctx); err != nil {
		logger.Log.Warn("product deleted but reload failed", zap.Error(err))
	}

	return nil
}
