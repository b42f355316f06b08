package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"orinoco/internal/address"
	"orinoco/internal/basket"
	"orinoco/internal/logger"
	"orinoco/internal/order"
	"orinoco/internal/payment"

	"go.uber.org/zap"
)

// ErrEmptyBasket aborts a checkout before anything is prompted or written.
var ErrEmptyBasket = errors.New("basket is empty")

// Service walks the one multi-step sequence in the system: confirm the
// basket, resolve address and card, then hand order creation and basket
// teardown to the order repository as a single transaction.
type Service interface {
	Checkout(ctx context.Context, w io.Writer, shopperID int64, state basket.State) (basket.State, error)
}

type service struct {
	baskets   basket.Service
	orders    order.Repository
	addresses address.Service
	cards     payment.Service
}

func NewService(baskets basket.Service, orders order.Repository, addresses address.Service, cards payment.Service) Service {
	return &service{baskets: baskets, orders: orders, addresses: addresses, cards: cards}
}

func (s *service) Checkout(ctx context.Context, w io.Writer, shopperID int64, state basket.State) (basket.State, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "Checkout"),
		zap.Int64("shopper_id", shopperID),
		zap.Int64("basket_id", state.ID),
	)

	lines, err := s.baskets.Lines(ctx, state)
	if err != nil {
		return state, err
	}
	if !state.Open() || len(lines) == 0 {
		return state, ErrEmptyBasket
	}

	if err := s.baskets.View(ctx, w, state); err != nil {
		return state, err
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "CHECKOUT PROCESS")
	fmt.Fprintln(w, rule)

	addr, err := s.addresses.Resolve(ctx, w, shopperID)
	if err != nil {
		return state, err
	}

	card, err := s.cards.Resolve(ctx, w, shopperID)
	if err != nil {
		return state, err
	}

	params := order.CheckoutParams{
		ShopperID: shopperID,
		BasketID:  state.ID,
	}
	if addr.New {
		params.NewAddress = addr.Text
	}
	if card.New {
		params.NewCard = card.Number
	}

	orderID, err := s.orders.CreateFromBasket(ctx, params)
	if err != nil {
		log.Error("checkout failed", zap.Error(err))
		return state, err
	}

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "ORDER CONFIRMED!")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Order ID: %d\n", orderID)
	fmt.Fprintf(w, "Delivery to: %s\n", addr.Text)
	fmt.Fprintf(w, "Payment: %s\n", card.Masked)
	fmt.Fprintf(w, "Status: %s\n", order.StatusPlaced)
	fmt.Fprintln(w, rule)

	log.Info("order placed", zap.Int64("order_id", orderID))
	return basket.State{}, nil
}
