// Package shell is the interactive surface of the storefront: one operator,
// one connection, a fixed five-option menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"orinoco/internal/basket"
	"orinoco/internal/catalog"
	"orinoco/internal/checkout"
	"orinoco/internal/logger"
	"orinoco/internal/order"
	"orinoco/internal/prompt"
	"orinoco/internal/shopper"

	"go.uber.org/zap"
)

type Session struct {
	prompter *prompt.Prompter
	out      io.Writer

	shoppers shopper.Repository
	catalog  catalog.Repository
	baskets  basket.Service
	orders   order.Repository
	checkout checkout.Service
}

func NewSession(
	prompter *prompt.Prompter,
	out io.Writer,
	shoppers shopper.Repository,
	catalogRepo catalog.Repository,
	baskets basket.Service,
	orders order.Repository,
	checkoutSvc checkout.Service,
) *Session {
	return &Session{
		prompter: prompter,
		out:      out,
		shoppers: shoppers,
		catalog:  catalogRepo,
		baskets:  baskets,
		orders:   orders,
		checkout: checkoutSvc,
	}
}

// Run drives one session from shopper login to exit. It returns
// shopper.ErrNotFound for an unknown id; a closed input stream ends the
// session without error.
func (s *Session) Run(ctx context.Context) error {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(s.out, "\n%s\n", rule)
	fmt.Fprintln(s.out, "ORINOCO ELECTRONICS SHOPPING SYSTEM")
	fmt.Fprintln(s.out, rule)

	shopperID, err := s.prompter.ReadInt("\nEnter shopper ID to begin: ")
	if err != nil {
		return s.inputDone(err)
	}

	sh, err := s.shoppers.ByID(ctx, int64(shopperID))
	if errors.Is(err, shopper.ErrNotFound) {
		fmt.Fprintf(s.out, "\nError: Shopper ID %d not found.\n", shopperID)
		return err
	}
	if err != nil {
		s.reportStorage(ctx, err)
		return err
	}

	fmt.Fprintf(s.out, "\nWelcome back, %s %s!\n", sh.FirstName, sh.Surname)

	state, err := s.baskets.Resume(ctx, sh.ID)
	if err != nil {
		s.reportStorage(ctx, err)
		return err
	}

	for {
		s.printMenu()

		choice, err := s.prompter.ReadInt("\nEnter your choice (1-5): ")
		if err != nil {
			return s.inputDone(err)
		}

		switch choice {
		case 1:
			s.showHistory(ctx, sh.ID)
		case 2:
			state, err = s.addToBasket(ctx, sh.ID, state)
		case 3:
			if viewErr := s.baskets.View(ctx, s.out, state); viewErr != nil {
				s.reportStorage(ctx, viewErr)
			}
		case 4:
			state, err = s.checkoutBasket(ctx, sh.ID, state)
		case 5:
			fmt.Fprintln(s.out, "\nThank you for shopping with Orinoco Electronics!")
			return nil
		default:
			fmt.Fprintln(s.out, "Please enter a number between 1 and 5.")
		}

		if err != nil {
			return s.inputDone(err)
		}
	}
}

// inputDone maps a closed input stream to a clean session end.
func (s *Session) inputDone(err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		return nil
	}
	return err
}

func (s *Session) printMenu() {
	rule := strings.Repeat("-", 40)
	fmt.Fprintf(s.out, "\n%s\n", rule)
	fmt.Fprintln(s.out, "MAIN MENU")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "1. Display your order history")
	fmt.Fprintln(s.out, "2. Add an item to your basket")
	fmt.Fprintln(s.out, "3. View your basket")
	fmt.Fprintln(s.out, "4. Checkout")
	fmt.Fprintln(s.out, "5. Exit")
	fmt.Fprintln(s.out, rule)
}

func (s *Session) reportStorage(ctx context.Context, err error) {
	logger.FromCtx(ctx).Error("storage operation failed", zap.Error(err))
	fmt.Fprintf(s.out, "Database error: %v\n", err)
}

// addToBasket walks category, product and seller selection then records the
// line. Empty catalog results abort back to the menu with basket state
// unchanged; only a closed input stream is returned as an error.
func (s *Session) addToBasket(ctx context.Context, shopperID int64, state basket.State) (basket.State, error) {
	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		s.reportStorage(ctx, err)
		return state, nil
	}
	if len(categories) == 0 {
		fmt.Fprintln(s.out, "No product categories available.")
		return state, nil
	}

	options := make([]prompt.Option, 0, len(categories))
	for _, c := range categories {
		options = append(options, prompt.Option{Code: c.ID, Label: c.Description})
	}
	categoryID, err := s.prompter.Select("PRODUCT CATEGORIES", "category", options)
	if err != nil {
		return state, err
	}

	products, err := s.catalog.ProductsInCategory(ctx, categoryID)
	if err != nil {
		s.reportStorage(ctx, err)
		return state, nil
	}
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products available in this category.")
		return state, nil
	}

	options = options[:0]
	for _, p := range products {
		options = append(options, prompt.Option{Code: p.ID, Label: p.Description})
	}
	productID, err := s.prompter.Select("PRODUCTS IN SELECTED CATEGORY", "product", options)
	if err != nil {
		return state, err
	}

	offers, err := s.catalog.OffersForProduct(ctx, productID)
	if err != nil {
		s.reportStorage(ctx, err)
		return state, nil
	}
	if len(offers) == 0 {
		fmt.Fprintln(s.out, "No sellers available for this product.")
		return state, nil
	}

	options = options[:0]
	for _, o := range offers {
		options = append(options, prompt.Option{Code: o.SellerID, Label: o.SellerName, Price: prompt.Price(o.Price)})
	}
	sellerID, err := s.prompter.Select("SELLERS FOR SELECTED PRODUCT", "seller", options)
	if err != nil {
		return state, err
	}

	quantity, err := s.prompter.ReadQuantity("Enter the quantity you want to purchase: ")
	if err != nil {
		return state, err
	}

	newState, err := s.baskets.AddItem(ctx, shopperID, state, productID, sellerID, quantity)
	if err != nil {
		s.reportStorage(ctx, err)
		return state, nil
	}

	fmt.Fprintln(s.out, "\nItem successfully added to your basket!")
	return newState, nil
}

func (s *Session) checkoutBasket(ctx context.Context, shopperID int64, state basket.State) (basket.State, error) {
	newState, err := s.checkout.Checkout(ctx, s.out, shopperID, state)
	if errors.Is(err, checkout.ErrEmptyBasket) {
		fmt.Fprintln(s.out, "\nYour basket is empty. Add items before checkout.")
		return state, nil
	}
	if errors.Is(err, prompt.ErrInputClosed) {
		return state, err
	}
	if err != nil {
		s.reportStorage(ctx, err)
		return state, nil
	}
	return newState, nil
}
