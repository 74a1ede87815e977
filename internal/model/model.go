// Package model holds the product entity, order statuses and the report rows
// returned by the query layer.
//
// Money is carried as decimal.Decimal so NUMERIC(10,2) columns round-trip
// without float drift.
package model

import "github.com/shopspring/decimal"

// Product is a row of the products table.
//
// StockQuantity can be negative: stock updates do not floor at zero.
type Product struct {
	ID            int64           `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Price         decimal.Decimal `json:"price" db:"price"`
	StockQuantity int             `json:"stock_quantity" db:"stock_quantity"`
	CategoryID    *int64          `json:"category_id" db:"category_id"`
}
