package service

import (
	"context"

	"github.com/deppfellow/go-retail/internal/lib/job"
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/shopspring/decimal"
)

// The interfaces below are satisfied by the repository package and mocked in
// tests.

type CustomerRepository interface {
	GetFullName(ctx context.Context, customerID int64) (string, error)
	Exists(ctx context.Context, customerID int64) (bool, error)
	GetOrderCount(ctx context.Context, customerID int64) (int, error)
	GetTotalSpent(ctx context.Context, customerID int64) (decimal.Decimal, error)
	GetSummary(ctx context.Context, customerID int64) (*model.CustomerSummary, error)
	ListOrders(ctx context.Context, customerID int64) ([]model.OrderRow, error)
}

type ProductRepository interface {
	GetProduct(ctx context.Context, productID int64) (*model.Product, error)
	GetStock(ctx context.Context, productID int64) (int, error)
	UpdateStock(ctx context.Context, productID int64, quantity int) error
	GetReviewCount(ctx context.Context, productID int64) (int, error)
	GetAverageRating(ctx context.Context, productID int64) (decimal.Decimal, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]model.CategoryProduct, error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, customerID, productID int64, rating int, comment string) error
}

type OrderRepository interface {
	GetTotal(ctx context.Context, orderID int64) (decimal.Decimal, error)
	GetPaidAmount(ctx context.Context, orderID int64) (decimal.Decimal, error)
	ListLatest(ctx context.Context, limit int) ([]model.OrderRow, error)
	ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderRow, error)
}

type ReportRepository interface {
	TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error)
}

// StockAlerter queues low-stock notifications.
type StockAlerter interface {
	EnqueueLowStockAlert(ctx context.Context, p job.LowStockPayload) error
}
