package shell

import (
	"context"
	"fmt"
	"strings"

	"orinoco/internal/money"
)

// showHistory prints the shopper's orders newest first, grouping lines
// under their order header: the first line of an order carries the id and
// date, subsequent lines leave those columns blank.
func (s *Session) showHistory(ctx context.Context, shopperID int64) {
	rows, err := s.orders.History(ctx, shopperID)
	if err != nil {
		s.reportStorage(ctx, err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintln(s.out, "\nNo orders placed by this customer")
		return
	}

	rule := strings.Repeat("=", 150)
	fmt.Fprintf(s.out, "\n%s\n", rule)
	fmt.Fprintln(s.out, "ORDER HISTORY")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "%-10s %-12s %-50s %-20s %10s %5s %-12s\n",
		"Order ID", "Order Date", "Product Description", "Seller", "Price", "Qty", "Status")
	fmt.Fprintln(s.out, strings.Repeat("-", 150))

	var currentOrderID int64
	for _, row := range rows {
		if row.OrderID != currentOrderID {
			fmt.Fprintf(s.out, "\n%-10d %-12s %-50s %-20s %10s %5d %-12s\n",
				row.OrderID, row.Date, row.Product, row.Seller, money.GBP(row.Price), row.Quantity, row.Status)
			currentOrderID = row.OrderID
		} else {
			fmt.Fprintf(s.out, "%-10s %-12s %-50s %-20s %10s %5d %-12s\n",
				"", "", row.Product, row.Seller, money.GBP(row.Price), row.Quantity, row.Status)
		}
	}

	fmt.Fprintln(s.out, rule)
}
