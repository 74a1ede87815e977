package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ProductRepository wraps stock lookups, the stock update procedure and the
// per-product review aggregates.
type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

// GetProduct reads one product row. A missing product returns pgx.ErrNoRows
// tagged with the products table.
func (r *ProductRepository) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	var product model.Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price::text, stock_quantity, category_id
		FROM products
		WHERE id = $1
	`, productID).Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.StockQuantity,
		&product.CategoryID,
	)
	if err != nil {
		return nil, sqlerr.WithTable("products", err)
	}
	return &product, nil
}

// GetStock calls fn_product_stock. Unknown products yield 0.
func (r *ProductRepository) GetStock(ctx context.Context, productID int64) (int, error) {
	var stock int
	err := r.db.QueryRow(ctx, `SELECT fn_product_stock($1)`, productID).Scan(&stock)
	if err != nil {
		return 0, fmt.Errorf("fn_product_stock: %w", err)
	}
	return stock, nil
}

// UpdateStock calls sp_update_stock, decrementing stock by quantity.
//
// The procedure has no floor check: stock goes negative when quantity
// exceeds what is on hand, and an unknown product is a silent no-op.
func (r *ProductRepository) UpdateStock(ctx context.Context, productID int64, quantity int) error {
	if _, err := r.db.Exec(ctx, `CALL sp_update_stock($1, $2)`, productID, quantity); err != nil {
		return fmt.Errorf("sp_update_stock: %w", err)
	}
	return nil
}

// GetReviewCount calls fn_review_count.
func (r *ProductRepository) GetReviewCount(ctx context.Context, productID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT fn_review_count($1)`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("fn_review_count: %w", err)
	}
	return count, nil
}

// GetAverageRating calls fn_product_avg_rating.
func (r *ProductRepository) GetAverageRating(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var rating decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT fn_product_avg_rating($1)::text`, productID).Scan(&rating)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fn_product_avg_rating: %w", err)
	}
	return rating, nil
}

// ListByCategory reads sp_products_by_category.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.CategoryProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, name, price::text, stock_quantity
		FROM sp_products_by_category($1)
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("sp_products_by_category: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.CategoryProduct, error) {
		var p model.CategoryProduct
		err := row.Scan(&p.ProductID, &p.Name, &p.Price, &p.StockQuantity)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("sp_products_by_category: %w", err)
	}
	return products, nil
}
