package order

import (
	"context"
	"database/sql"
	"time"

	"orinoco/internal/db"
	"orinoco/internal/logger"

	"go.uber.org/zap"
)

const timestampFormat = "2006-01-02 15:04:05"

type Repository interface {
	History(ctx context.Context, shopperID int64) ([]HistoryRow, error)
	CreateFromBasket(ctx context.Context, params CheckoutParams) (int64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

// History returns every order line for the shopper, newest order first,
// lines within an order sorted by product description.
func (r *repository) History(ctx context.Context, shopperID int64) ([]HistoryRow, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "History"),
		zap.Int64("shopper_id", shopperID),
	)

	const q = `
		SELECT so.order_id,
		       strftime('%d-%m-%Y', so.order_date) AS formatted_date,
		       p.product_description,
		       se.seller_name,
		       op.price,
		       op.quantity,
		       op.ordered_product_status
		FROM shopper_orders so
		JOIN ordered_products op ON so.order_id = op.order_id
		JOIN products p ON op.product_id = p.product_id
		JOIN sellers se ON op.seller_id = se.seller_id
		WHERE so.shopper_id = ?
		ORDER BY so.order_date DESC, so.order_id, p.product_description
	`

	rows, err := r.db.QueryContext(ctx, q, shopperID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.OrderID, &h.Date, &h.Product, &h.Seller, &h.Price, &h.Quantity, &h.Status); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, h)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

// CreateFromBasket converts a basket into an order in one transaction:
// pending address/card inserts, the order row, one order line per basket
// line (product, seller, quantity and snapshotted price carried over
// verbatim), then basket teardown. Any failure rolls the lot back.
func (r *repository) CreateFromBasket(ctx context.Context, params CheckoutParams) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Order"),
		zap.String("method", "CreateFromBasket"),
		zap.Int64("shopper_id", params.ShopperID),
		zap.Int64("basket_id", params.BasketID),
	)

	log.Debug("starting checkout transaction")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return 0, err
	}
	defer tx.Rollback()

	if params.NewAddress != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO shopper_delivery_addresses (shopper_id, delivery_address, date_last_used)
			VALUES (?, ?, DATE('now'))
		`, params.ShopperID, params.NewAddress)
		if err != nil {
			log.Error("failed to insert delivery address", zap.Error(err))
			return 0, err
		}
	}

	if params.NewCard != "" {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO shopper_payment_cards (shopper_id, card_number, date_last_used)
			VALUES (?, ?, DATE('now'))
		`, params.ShopperID, params.NewCard)
		if err != nil {
			log.Error("failed to insert payment card", zap.Error(err))
			return 0, err
		}
	}

	orderID, err := db.NextID(ctx, tx, "shopper_orders")
	if err != nil {
		log.Error("failed to allocate order id", zap.Error(err))
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shopper_orders (order_id, shopper_id, order_date, order_status)
		VALUES (?, ?, ?, ?)
	`, orderID, params.ShopperID, time.Now().Format(timestampFormat), StatusPlaced)
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ordered_products (order_id, product_id, seller_id, quantity, price, ordered_product_status)
		SELECT ?, product_id, seller_id, quantity, price, ?
		FROM basket_contents
		WHERE basket_id = ?
	`, orderID, StatusPlaced, params.BasketID)
	if err != nil {
		log.Error("failed to copy basket lines", zap.Error(err))
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM basket_contents WHERE basket_id = ?`, params.BasketID)
	if err != nil {
		log.Error("failed to clear basket lines", zap.Error(err))
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM shopper_baskets WHERE basket_id = ?`, params.BasketID)
	if err != nil {
		log.Error("failed to delete basket", zap.Error(err))
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit checkout transaction", zap.Error(err))
		return 0, err
	}

	log.Info("checkout transaction committed", zap.Int64("order_id", orderID))
	return orderID, nil
}
