package address

import (
	"context"
	"database/sql"
	"errors"

	"orinoco/internal/logger"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	ByShopper(ctx context.Context, shopperID int64) ([]Address, error)
	TextByID(ctx context.Context, id int64) (string, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// ByShopper lists a shopper's delivery addresses most recently used first.
func (r *repository) ByShopper(ctx context.Context, shopperID int64) ([]Address, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "ByShopper"),
		zap.Int64("shopper_id", shopperID),
	)

	const q = `
		SELECT address_id, shopper_id, delivery_address, date_last_used
		FROM shopper_delivery_addresses
		WHERE shopper_id = ?
		ORDER BY date_last_used DESC
	`

	rows, err := r.db.QueryContext(ctx, q, shopperID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var res []Address
	for rows.Next() {
		var a Address
		if err := rows.Scan(&a.ID, &a.ShopperID, &a.Text, &a.LastUsed); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		res = append(res, a)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return res, nil
}

func (r *repository) TextByID(ctx context.Context, id int64) (string, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Address"),
		zap.String("method", "TextByID"),
		zap.Int64("address_id", id),
	)

	const q = `
		SELECT delivery_address
		FROM shopper_delivery_addresses
		WHERE address_id = ?
	`

	var text string
	err := r.db.QueryRowContext(ctx, q, id).Scan(&text)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return "", err
	}

	return text, nil
}
