package shopper

import (
	"context"
	"database/sql"
	"errors"

	"orinoco/internal/logger"

	"go.uber.org/zap"
)

// ErrNotFound is fatal to the session: the menu is never shown for an
// unknown shopper.
var ErrNotFound = errors.New("shopper not found")

type Repository interface {
	ByID(ctx context.Context, id int64) (*Shopper, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ByID(ctx context.Context, id int64) (*Shopper, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Shopper"),
		zap.String("method", "ByID"),
		zap.Int64("shopper_id", id),
	)

	const q = `
		SELECT shopper_id, shopper_first_name, shopper_surname
		FROM shoppers
		WHERE shopper_id = ?
	`

	var s Shopper
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.FirstName, &s.Surname)

	if err == sql.ErrNoRows {
		log.Warn("unknown shopper id")
		return nil, ErrNotFound
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}

	return &s, nil
}
