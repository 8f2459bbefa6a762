package stats

import (
	"testing"

	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTotalStock(t *testing.T) {
	testCases := []struct {
		testName string
		products []models.Product
		expected int
	}{
		{
			testName: "Should be zero for an empty collection",
			products: nil,
			expected: 0,
		},
		{
			testName: "Should sum quantities",
			products: []models.Product{
				{ID: 1, Quantity: 3},
				{ID: 2, Quantity: 0},
				{ID: 3, Quantity: 17},
			},
			expected: 20,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			assert.Equal(t, tc.expected, TotalStock(tc.products))
		})
	}
}

func TestLowStockCount(t *testing.T) {
	products := []models.Product{
		{ID: 1, Quantity: 0},
		{ID: 2, Quantity: 4},
		{ID: 3, Quantity: 5},
		{ID: 4, Quantity: 100},
	}

	// quantity 5 is not low, 4 and 0 are
	assert.Equal(t, 2, LowStockCount(products))
}

func TestInventoryValue(t *testing.T) {
	products := []models.Product{
		{ID: 1, Price: 19.99, Quantity: 3},
		{ID: 2, Price: 0.10, Quantity: 100},
		{ID: 3, Price: 250, Quantity: 0},
	}

	assert.Equal(t, "69.97", InventoryValue(products).StringFixed(2))
	assert.True(t, InventoryValue(nil).IsZero())
}

func TestStockDistribution(t *testing.T) {
	testCases := []struct {
		testName string
		count    int
		expected int
	}{
		{"Should be empty for no products", 0, 0},
		{"Should keep fewer than five products", 3, 3},
		{"Should truncate at five products", 8, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			products := make([]models.Product, tc.count)
			for i := range products {
				products[i] = models.Product{Name: string(rune('A' + i)), Quantity: i}
			}

			slices := StockDistribution(products)

			assert.Len(t, slices, tc.expected)
			for i, slice := range slices {
				// input order is preserved, no sorting before truncation
				assert.Equal(t, products[i].Name, slice.Name)
				assert.Equal(t, products[i].Quantity, slice.Value)
			}
		})
	}
}

func TestStatusHistogram(t *testing.T) {
	orders := []models.Order{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusDelivered},
		{ID: 3, Status: models.StatusPending},
		{ID: 4, Status: models.StatusShipped},
	}

	histogram := StatusHistogram(orders)

	assert.Equal(t, []StatusCount{
		{Status: models.StatusPending, Count: 2},
		{Status: models.StatusShipped, Count: 1},
		{Status: models.StatusDelivered, Count: 1},
	}, histogram)

	total := 0
	for _, bar := range histogram {
		total += bar.Count
	}
	assert.Equal(t, len(orders), total)
}

func TestStatusHistogramEmpty(t *testing.T) {
	histogram := StatusHistogram(nil)

	assert.Len(t, histogram, 3)
	for i, status := range models.OrderStatuses {
		assert.Equal(t, status, histogram[i].Status)
		assert.Zero(t, histogram[i].Count)
	}
}

func TestSummarize(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.False(t, summary.HasData)
	assert.Zero(t, summary.TotalStock)
	assert.Empty(t, summary.StockDistribution)
	assert.Len(t, summary.StatusHistogram, 3)

	summary = Summarize(
		[]models.Product{{ID: 1, Name: "Label Roll", Price: 4.75, Quantity: 240}},
		[]models.Order{{ID: 1, Status: models.StatusPending}},
	)

	assert.True(t, summary.HasData)
	assert.Equal(t, 1, summary.ProductCount)
	assert.Equal(t, 1, summary.OrderCount)
	assert.Equal(t, 240, summary.TotalStock)
	assert.Equal(t, 0, summary.LowStockCount)
	assert.Equal(t, "1140.00", summary.InventoryValue.StringFixed(2))
}

func TestStockLevelOf(t *testing.T) {
	testCases := []struct {
		quantity int
		expected StockLevel
	}{
		{0, StockOut},
		{1, StockLow},
		{4, StockLow},
		{5, StockIn},
		{100, StockIn},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StockLevelOf(tc.quantity), "quantity %d", tc.quantity)
	}
}

func TestStockLevelString(t *testing.T) {
	assert.Equal(t, "Out of Stock", StockOut.String())
	assert.Equal(t, "Low Stock", StockLow.String())
	assert.Equal(t, "In Stock", StockIn.String())
}
