package models

// Product is a transient copy of a remote product. The remote store owns
// it; the client re-fetches instead of patching local copies.
type Product struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// ProductDraft is the payload for creating or updating a product.
type ProductDraft struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}
