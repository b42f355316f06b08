package basket

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
	CurrentForShopper(ctx context.Context, shopperID int64) (State, error)
	AddLine(ctx context.Context, state State, shopperID int64, params LineParams) (State, error)
	Contents(ctx context.Context, basketID int64) ([]Line, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

// CurrentForShopper resumes the basket created earlier today, if any.
func (r *repository) CurrentForShopper(ctx context.Context, shopperID int64) (State, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "CurrentForShopper"),
		zap.Int64("shopper_id", shopperID),
	)

	const q = `
		SELECT basket_id
		FROM shopper_baskets
		WHERE shopper_id = ?
		  AND DATE(basket_created_date_time) = DATE('now')
		ORDER BY basket_created_date_time DESC
		LIMIT 1
	`

	var id int64
	err := r.db.QueryRowContext(ctx, q, shopperID).Scan(&id)

	if err == sql.ErrNoRows {
		return State{}, nil
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return State{}, err
	}

	log.Debug("resumed basket", zap.Int64("basket_id", id))
	return State{ID: id}, nil
}

// AddLine inserts one basket line, creating the basket row first when no
// basket is open. Both writes commit together; any failure rolls the whole
// operation back and leaves the prior state untouched.
func (r *repository) AddLine(ctx context.Context, state State, shopperID int64, params LineParams) (State, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "AddLine"),
		zap.Int64("shopper_id", shopperID),
		zap.Int64("product_id", params.ProductID),
		zap.Int64("seller_id", params.SellerID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("failed to begin transaction", zap.Error(err))
		return state, err
	}
	defer tx.Rollback()

	basketID := state.ID
	if !state.Open() {
		basketID, err = db.NextID(ctx, tx, "shopper_baskets")
		if err != nil {
			log.Error("failed to allocate basket id", zap.Error(err))
			return state, err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO shopper_baskets (basket_id, shopper_id, basket_created_date_time)
			VALUES (?, ?, ?)
		`, basketID, shopperID, time.Now().Format(timestampFormat))
		if err != nil {
			log.Error("failed to insert basket", zap.Error(err))
			return state, err
		}

		log.Debug("created basket", zap.Int64("basket_id", basketID))
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO basket_contents (basket_id, product_id, seller_id, quantity, price)
		VALUES (?, ?, ?, ?, ?)
	`, basketID, params.ProductID, params.SellerID, params.Quantity, params.Price)
	if err != nil {
		log.Error("failed to insert basket line", zap.Error(err))
		return state, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("failed to commit", zap.Error(err))
		return state, err
	}

	log.Info("basket line added", zap.Int64("basket_id", basketID))
	return State{ID: basketID}, nil
}

func (r *repository) Contents(ctx context.Context, basketID int64) ([]Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Basket"),
		zap.String("method", "Contents"),
		zap.Int64("basket_id", basketID),
	)

	const q = `
		SELECT p.product_description, s.seller_name, bc.quantity, bc.price
		FROM basket_contents bc
		JOIN products p ON bc.product_id = p.product_id
		JOIN sellers s ON bc.seller_id = s.seller_id
		WHERE bc.basket_id = ?
	`

	rows, err := r.db.QueryContext(ctx, q, basketID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.Product, &l.Seller, &l.Quantity, &l.Price); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return lines, nil
}
