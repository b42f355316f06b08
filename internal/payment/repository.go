package payment

import (
	"context"
	"database/sql"
	"errors"

	"orinoco/internal/logger"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("payment card not found")

type Repository interface {
	ByShopper(ctx context.Context, shopperID int64) ([]Card, error)
	NumberByID(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ByShopper lists a shopper's payment cards most recently used first.
func (r *repository) ByShopper(ctx context.Context, shopperID int64) ([]Card, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Payment"),
		zap.String("method", "ByShopper"),
		zap.Int64("shopper_id", shopperID),
	)

	const q = `
		SELECT card_id, shopper_id, card_number, date_last_used
		FROM shopper_payment_cards
		WHERE shopper_id = ?
		ORDER BY date_last_used DESC
	`

	rows, err := r.db.QueryContext(ctx, q, shopperID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []Card
	for rows.Next() {
		var c Card
		if err := rows.Scan(&c.ID, &c.ShopperID, &c.Number, &c.LastUsed); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) NumberByID(ctx context.Context, id int64) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Payment"),
		zap.String("method", "NumberByID"),
		zap.Int64("card_id", id),
	)

	const q = `
		SELECT card_number
		FROM shopper_payment_cards
		WHERE card_id = ?
	`

	var number string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&number)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return "", err
	}

	return number, nil
}
