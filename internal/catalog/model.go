package catalog

type Category struct {
	ID          int64
	Description string
}

type Product struct {
	ID          int64
	Description string
}

// Offer is one seller's price for a product.
type Offer struct {
	SellerID   int64
	SellerName string
	Price      float64
}
