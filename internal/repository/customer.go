package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CustomerRepository wraps the customer lookups and customer reports.
type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// GetFullName calls fn_customer_full_name. Unknown customers yield "".
func (r *CustomerRepository) GetFullName(ctx context.Context, customerID int64) (string, error) {
	var fullName string
	err := r.db.QueryRow(ctx, `SELECT fn_customer_full_name($1)`, customerID).Scan(&fullName)
	if err != nil {
		return "", fmt.Errorf("fn_customer_full_name: %w", err)
	}
	return fullName, nil
}

// Exists calls fn_customer_exists.
func (r *CustomerRepository) Exists(ctx context.Context, customerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT fn_customer_exists($1)`, customerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("fn_customer_exists: %w", err)
	}
	return exists, nil
}

// GetOrderCount calls fn_customer_order_count.
func (r *CustomerRepository) GetOrderCount(ctx context.Context, customerID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT fn_customer_order_count($1)`, customerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("fn_customer_order_count: %w", err)
	}
	return count, nil
}

// GetTotalSpent calls fn_customer_total_spent.
func (r *CustomerRepository) GetTotalSpent(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT fn_customer_total_spent($1)::text`, customerID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fn_customer_total_spent: %w", err)
	}
	return total, nil
}

// GetSummary reads the single row of sp_customer_summary.
func (r *CustomerRepository) GetSummary(ctx context.Context, customerID int64) (*model.CustomerSummary, error) {
	var summary model.CustomerSummary
	err := r.db.QueryRow(ctx, `
		SELECT customer_id, full_name, order_count, total_spent::text, last_order_date
		FROM sp_customer_summary($1)
	`, customerID).Scan(
		&summary.CustomerID,
		&summary.FullName,
		&summary.OrderCount,
		&summary.TotalSpent,
		&summary.LastOrderDate,
	)
	if err != nil {
		return nil, sqlerr.WithTable("customers", fmt.Errorf("sp_customer_summary: %w", err))
	}
	return &summary, nil
}

// ListOrders reads sp_customer_orders.
func (r *CustomerRepository) ListOrders(ctx context.Context, customerID int64) ([]model.OrderRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, customer_id, customer_name, order_date, total_amount::text, status
		FROM sp_customer_orders($1)
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("sp_customer_orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrderRow)
	if err != nil {
		return nil, fmt.Errorf("sp_customer_orders: %w", err)
	}
	return orders, nil
}
