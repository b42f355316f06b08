package payment

type Card struct {
	ID        int64
	ShopperID int64
	Number    string
	LastUsed  string
}

// Resolution is the outcome of picking a payment card for checkout. Number
// is the full card number, kept only for the pending insert when New is
// true; Masked is the only form ever written to output.
type Resolution struct {
	Number string
	Masked string
	New    bool
}

// Mask hides everything but the last four characters of a card number.
func Mask(number string) string {
	last4 := number
	if len(number) > 4 {
		last4 = number[len(number)-4:]
	}
	return "**** **** **** " + last4
}
