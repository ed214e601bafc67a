package domain

type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Stock is the available quantity for one product, served separately from
// the product itself.
type Stock struct {
	ID     int64 `json:"id"`
	Amount int64 `json:"amount"`
}
