package stats

import (
	"github.com/sakthiprasad2004/warehouse-manager/internal/models"
	"github.com/shopspring/decimal"
)

// Aggregations are pure functions over already-fetched collections,
// recomputed on every render. Nothing here is persisted.

// LowStockThreshold is the quantity below which a product counts as low
// on stock.
const LowStockThreshold = 5

// distributionSize caps the stock distribution chart at the first five
// products, in whatever order the backend returned them.
const distributionSize = 5

// TotalStock sums the quantity of every product.
func TotalStock(products []models.Product) int {
	var total int
	for _, p := range products {
		total += p.Quantity
	}
	return total
}

// LowStockCount counts products below the low-stock threshold.
func LowStockCount(products []models.Product) int {
	var count int
	for _, p := range products {
		if p.Quantity < LowStockThreshold {
			count++
		}
	}
	return count
}

// InventoryValue sums price × quantity over all products. Decimal math
// keeps the total exact regardless of how the float prices combine.
func InventoryValue(products []models.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		value := decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Quantity)))
		total = total.Add(value)
	}
	return total
}

// DistributionSlice is one wedge of the stock distribution chart.
type DistributionSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// StockDistribution maps the first five products to chart slices,
// preserving input order and truncating deterministically.
func StockDistribution(products []models.Product) []DistributionSlice {
	size := len(products)
	if size > distributionSize {
		size = distributionSize
	}

	slices := make([]DistributionSlice, size)
	for i, p := range products[:size] {
		slices[i] = DistributionSlice{Name: p.Name, Value: p.Quantity}
	}
	return slices
}

// StatusCount is one bar of the order status histogram.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int                `json:"count"`
}

// StatusHistogram counts orders per status. It always returns exactly
// one entry per known status, in the fixed enumeration order.
func StatusHistogram(orders []models.Order) []StatusCount {
	counts := make([]StatusCount, len(models.OrderStatuses))
	for i, status := range models.OrderStatuses {
		counts[i] = StatusCount{Status: status}
		for _, o := range orders {
			if o.Status == status {
				counts[i].Count++
			}
		}
	}
	return counts
}

// Summary is the full set of dashboard metrics derived from one fetch of
// the product and order collections.
type Summary struct {
	// HasData distinguishes an empty product collection from a
	// zero-valued chart.
	HasData bool

	ProductCount  int
	OrderCount    int
	TotalStock    int
	LowStockCount int

	InventoryValue    decimal.Decimal
	StockDistribution []DistributionSlice
	StatusHistogram   []StatusCount
}

// Summarize derives every dashboard metric in one pass over the fetched
// collections.
func Summarize(products []models.Product, orders []models.Order) Summary {
	return Summary{
		HasData:           len(products) > 0,
		ProductCount:      len(products),
		OrderCount:        len(orders),
		TotalStock:        TotalStock(products),
		LowStockCount:     LowStockCount(products),
		InventoryValue:    InventoryValue(products),
		StockDistribution: StockDistribution(products),
		StatusHistogram:   StatusHistogram(orders),
	}
}
