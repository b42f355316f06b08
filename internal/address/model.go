package address

type Address struct {
	ID        int64
	ShopperID int64
	Text      string
	LastUsed  string
}

// Resolution is the outcome of picking a delivery address for checkout.
// When New is true the row does not exist yet; it is inserted inside the
// checkout transaction so a failed checkout leaves nothing behind.
type Resolution struct {
	Text string
	New  bool
}
