package catalog

import (
	"context"
	"database/sql"
	"errors"

	"orinoco/internal/logger"

	"go.uber.org/zap"
)

// ErrNoOffer reports a missing (product, seller) price row. A basket line is
// never written with a made-up price.
var ErrNoOffer = errors.New("no offer for this product and seller")

type Repository interface {
	Categories(ctx context.Context) ([]Category, error)
	ProductsInCategory(ctx context.Context, categoryID int64) ([]Product, error)
	OffersForProduct(ctx context.Context, productID int64) ([]Offer, error)
	OfferPrice(ctx context.Context, productID, sellerID int64) (float64, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Categories(ctx context.Context) ([]Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Catalog"),
		zap.String("method", "Categories"),
	)

	const q = `
		SELECT category_id, category_description
		FROM categories
		ORDER BY category_description
	`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Description); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (r *repository) ProductsInCategory(ctx context.Context, categoryID int64) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Catalog"),
		zap.String("method", "ProductsInCategory"),
		zap.Int64("category_id", categoryID),
	)

	const q = `
		SELECT p.product_id, p.product_description
		FROM products p
		WHERE p.category_id = ?
		ORDER BY p.product_description
	`

	rows, err := r.db.QueryContext(ctx, q, categoryID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Description); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

// OffersForProduct lists a product's seller offers cheapest first.
func (r *repository) OffersForProduct(ctx context.Context, productID int64) ([]Offer, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Catalog"),
		zap.String("method", "OffersForProduct"),
		zap.Int64("product_id", productID),
	)

	const q = `
		SELECT ps.seller_id, s.seller_name, ps.price
		FROM product_sellers ps
		JOIN sellers s ON ps.seller_id = s.seller_id
		WHERE ps.product_id = ?
		ORDER BY ps.price, s.seller_name
	`

	rows, err := r.db.QueryContext(ctx, q, productID)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		var o Offer
		if err := rows.Scan(&o.SellerID, &o.SellerName, &o.Price); err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, err
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return offers, nil
}

func (r *repository) OfferPrice(ctx context.Context, productID, sellerID int64) (float64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Catalog"),
		zap.String("method", "OfferPrice"),
		zap.Int64("product_id", productID),
		zap.Int64("seller_id", sellerID),
	)

	const q = `
		SELECT price
		FROM product_sellers
		WHERE product_id = ? AND seller_id = ?
	`

	var price float64
	err := r.db.QueryRowContext(ctx, q, productID, sellerID).Scan(&price)

	if err == sql.ErrNoRows {
		log.Warn("offer missing for product and seller")
		return 0, ErrNoOffer
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return 0, err
	}

	return price, nil
}
