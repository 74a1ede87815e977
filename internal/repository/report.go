package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/jackc/pgx/v5"
)

// ReportRepository wraps the cross-entity reports.
type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// TopProducts reads sp_top_products: at most limit rows, ordered by units
// sold descending.
func (r *ReportRepository) TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error) {
	rows, err := r.db.Query(ctx, `
		SELECT product_id, name, units_sold, revenue::text
		FROM sp_top_products($1)
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("sp_top_products: %w", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.TopProduct, error) {
		var p model.TopProduct
		err := row.Scan(&p.ProductID, &p.Name, &p.UnitsSold, &p.Revenue)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("sp_top_products: %w", err)
	}
	return products, nil
}
