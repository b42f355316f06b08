package basket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"orinoco/internal/catalog"
	"orinoco/internal/money"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Service defines the business logic for baskets.
type Service interface {
	Resume(ctx context.Context, shopperID int64) (State, error)
	AddItem(ctx context.Context, shopperID int64, state State, productID, sellerID int64, quantity int) (State, error)
	Lines(ctx context.Context, state State) ([]Line, error)
	View(ctx context.Context, w io.Writer, state State) error
}

type service struct {
	repo    Repository
	catalog catalog.Repository
}

func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalog: catalogRepo}
}

// Resume picks up the basket this shopper already opened today, if any.
func (s *service) Resume(ctx context.Context, shopperID int64) (State, error) {
	return s.repo.CurrentForShopper(ctx, shopperID)
}

// AddItem snapshots the current offer price for (product, seller) and
// records the line, lazily opening a basket. A missing offer fails loudly:
// catalog.ErrNoOffer comes back and nothing is written.
func (s *service) AddItem(ctx context.Context, shopperID int64, state State, productID, sellerID int64, quantity int) (State, error) {
	if quantity < 1 {
		return state, ErrInvalidQuantity
	}

	price, err := s.catalog.OfferPrice(ctx, productID, sellerID)
	if err != nil {
		return state, err
	}

	return s.repo.AddLine(ctx, state, shopperID, LineParams{
		ProductID: productID,
		SellerID:  sellerID,
		Quantity:  quantity,
		Price:     price,
	})
}

func (s *service) Lines(ctx context.Context, state State) ([]Line, error) {
	if !state.Open() {
		return nil, nil
	}
	return s.repo.Contents(ctx, state.ID)
}

// View prints the basket table with per-line and grand totals. Read-only.
func (s *service) View(ctx context.Context, w io.Writer, state State) error {
	if !state.Open() {
		fmt.Fprintln(w, "\nYour basket is empty")
		return nil
	}

	lines, err := s.repo.Contents(ctx, state.ID)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		fmt.Fprintln(w, "\nYour basket is empty")
		return nil
	}

	rule := strings.Repeat("=", 120)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "YOUR SHOPPING BASKET")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-50s %-25s %5s %10s %15s\n", "Product Description", "Seller", "Qty", "Price", "Total")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	var total float64
	for _, l := range lines {
		total += l.Total()
		fmt.Fprintf(w, "%-50s %-25s %5d %10s %15s\n",
			l.Product, l.Seller, l.Quantity, money.GBP(l.Price), money.GBP(l.Total()))
	}

	fmt.Fprintln(w, strings.Repeat("-", 120))
	fmt.Fprintf(w, "%-93s %15s\n", "BASKET TOTAL", money.GBP(total))
	fmt.Fprintln(w, rule)

	return nil
}
