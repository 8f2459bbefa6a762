package stub

import (
	"fmt"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
)

// Seed registers a demo account with a few products and orders so the
// front end has something to show on first run. It returns the demo
// credentials.
func (s *Server) Seed() (models.Credentials, error) {
	creds := models.Credentials{Username: "demo", Password: "demo"}

	identity, err := s.register(creds.Username, creds.Password)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to seed demo user: %w", err)
	}

	drafts := []models.ProductDraft{
		{Name: "Mechanical Keyboard", Price: 199.90, Quantity: 12},
		{Name: "Barcode Scanner", Price: 89.50, Quantity: 3},
		{Name: "Thermal Printer", Price: 249.00, Quantity: 0},
		{Name: "Pallet Jack", Price: 1250.00, Quantity: 7},
		{Name: "Label Roll", Price: 4.75, Quantity: 240},
		{Name: "Packing Tape", Price: 2.10, Quantity: 58},
	}

	products := make([]models.Product, 0, len(drafts))
	for _, draft := range drafts {
		products = append(products, s.createProduct(identity.ID, draft))
	}

	first, err := s.createOrder(identity.ID, []models.LineItem{
		{ProductID: products[0].ID, Quantity: 2},
		{ProductID: products[4].ID, Quantity: 20},
	})
	if err != nil {
		return models.Credentials{}, fmt.Errorf("failed to seed orders: %w", err)
	}

	if _, err := s.createOrder(identity.ID, []models.LineItem{
		{ProductID: products[3].ID, Quantity: 1},
	}); err != nil {
		return models.Credentials{}, fmt.Errorf("failed to seed orders: %w", err)
	}

	if _, err := s.updateOrderStatus(identity.ID, first.ID, models.StatusShipped); err != nil {
		return models.Credentials{}, fmt.Errorf("failed to seed shipped order: %w", err)
	}

	return creds, nil
}
