package shopper

type Shopper struct {
	ID        int64
	FirstName string
	Surname   string
}
