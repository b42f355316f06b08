package order

// StatusPlaced is the status every new order and order line starts with.
const StatusPlaced = "Placed"

// HistoryRow is one order line joined to its order header and display
// names, ready for grouped rendering.
type HistoryRow struct {
	OrderID  int64
	Date     string
	Product  string
	Seller   string
	Price    float64
	Quantity int
	Status   string
}

// CheckoutParams drives the one multi-step transaction in the system.
// NewAddress/NewCard, when set, are rows captured during resolution that do
// not exist yet; they are inserted inside the same transaction as the order
// so a failed checkout persists nothing.
type CheckoutParams struct {
	ShopperID  int64
	BasketID   int64
	NewAddress string
	NewCard    string
}
