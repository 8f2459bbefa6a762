package stats

// StockLevel is the tri-state badge shown for a product's quantity.
type StockLevel int

const (
	StockOut StockLevel = iota
	StockLow
	StockIn
)

// StockLevelOf classifies a quantity: zero is out of stock, anything
// below the low-stock threshold is low, the rest is in stock.
func StockLevelOf(quantity int) StockLevel {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < LowStockThreshold:
		return StockLow
	default:
		return StockIn
	}
}

func (l StockLevel) String() string {
	switch l {
	case StockOut:
		return "Out of Stock"
	case StockLow:
		return "Low Stock"
	case StockIn:
		return "In Stock"
	}
	return "Unknown"
}
