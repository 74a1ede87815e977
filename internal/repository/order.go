package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderRepository wraps the order aggregates and order listings.
type OrderRepository struct {
	db DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetTotal calls fn_order_total: sum(quantity*unit_price) of the order's
// items, 0.00 when it has none.
func (r *OrderRepository) GetTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT fn_order_total($1)::text`, orderID).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fn_order_total: %w", err)
	}
	return total, nil
}

// GetPaidAmount calls fn_order_paid_amount (completed payments only).
func (r *OrderRepository) GetPaidAmount(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	var paid decimal.Decimal
	err := r.db.QueryRow(ctx, `SELECT fn_order_paid_amount($1)::text`, orderID).Scan(&paid)
	if err != nil {
		return decimal.Zero, fmt.Errorf("fn_order_paid_amount: %w", err)
	}
	return paid, nil
}

// ListLatest reads sp_latest_orders.
func (r *OrderRepository) ListLatest(ctx context.Context, limit int) ([]model.OrderRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, customer_id, customer_name, order_date, total_amount::text, status
		FROM sp_latest_orders($1)
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("sp_latest_orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrderRow)
	if err != nil {
		return nil, fmt.Errorf("sp_latest_orders: %w", err)
	}
	return orders, nil
}

// ListByStatus reads sp_orders_by_status.
func (r *OrderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, customer_id, customer_name, order_date, total_amount::text, status
		FROM sp_orders_by_status($1)
	`, string(status))
	if err != nil {
		return nil, fmt.Errorf("sp_orders_by_status: %w", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrderRow)
	if err != nil {
		return nil, fmt.Errorf("sp_orders_by_status: %w", err)
	}
	return orders, nil
}

// scanOrderRow scans the shared column layout of the order listings.
func scanOrderRow(row pgx.CollectableRow) (model.OrderRow, error) {
	var o model.OrderRow
	var status string
	err := row.Scan(&o.OrderID, &o.CustomerID, &o.CustomerName, &o.OrderDate, &o.TotalAmount, &status)
	o.Status = model.OrderStatus(status)
	return o, err
}
