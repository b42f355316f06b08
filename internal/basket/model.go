package basket

// State is the session's view of the current basket, threaded through every
// basket-affecting call. The zero value means no basket is open, so the
// "no basket id" and "empty" conditions can never disagree.
type State struct {
	ID int64
}

func (s State) Open() bool { return s.ID != 0 }

// LineParams carries one line insert. Price is the offer price snapshotted
// at add time; it is never re-derived afterwards.
type LineParams struct {
	ProductID int64
	SellerID  int64
	Quantity  int
	Price     float64
}

// Line is a basket line joined to its display names.
type Line struct {
	Product  string
	Seller   string
	Quantity int
	Price    float64
}

func (l Line) Total() float64 {
	return float64(l.Quantity) * l.Price
}
