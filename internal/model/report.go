package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerSummary is the single row returned by sp_customer_summary.
//
// LastOrderDate is nil for customers without orders.
type CustomerSummary struct {
	CustomerID    int64           `json:"customer_id"`
	FullName      string          `json:"full_name"`
	OrderCount    int             `json:"order_count"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastOrderDate *time.Time      `json:"last_order_date"`
}

// TopProduct is a row of sp_top_products.
type TopProduct struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitsSold int64           `json:"units_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// OrderRow is a row of sp_latest_orders, sp_orders_by_status and sp_customer_orders.
type OrderRow struct {
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       OrderStatus     `json:"status"`
}

// CategoryProduct is a row of sp_products_by_category.
type CategoryProduct struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}
