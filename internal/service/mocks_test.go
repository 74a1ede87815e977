package service

import (
	"context"

	"github.com/deppfellow/go-retail/internal/lib/job"
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockCustomerRepository struct{ mock.Mock }

func (m *mockCustomerRepository) GetFullName(ctx context.Context, id int64) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *mockCustomerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCustomerRepository) GetOrderCount(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockCustomerRepository) GetTotalSpent(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockCustomerRepository) GetSummary(ctx context.Context, id int64) (*model.CustomerSummary, error) {
	args := m.Called(ctx, id)
	summary, _ := args.Get(0).(*model.CustomerSummary)
	return summary, args.Error(1)
}

func (m *mockCustomerRepository) ListOrders(ctx context.Context, id int64) ([]model.OrderRow, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.OrderRow)
	return rows, args.Error(1)
}

type mockProductRepository struct{ mock.Mock }

func (m *mockProductRepository) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *mockProductRepository) GetStock(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepository) UpdateStock(ctx context.Context, id int64, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

func (m *mockProductRepository) GetReviewCount(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *mockProductRepository) GetAverageRating(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockProductRepository) ListByCategory(ctx context.Context, id int64) ([]model.CategoryProduct, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]model.CategoryProduct)
	return rows, args.Error(1)
}

type mockReviewRepository struct{ mock.Mock }

func (m *mockReviewRepository) AddReview(ctx context.Context, customerID, productID int64, rating int, comment string) error {
	return m.Called(ctx, customerID, productID, rating, comment).Error(0)
}

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) GetTotal(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockOrderRepository) GetPaidAmount(ctx context.Context, id int64) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *mockOrderRepository) ListLatest(ctx context.Context, limit int) ([]model.OrderRow, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]model.OrderRow)
	return rows, args.Error(1)
}

func (m *mockOrderRepository) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderRow, error) {
	args := m.Called(ctx, status)
	rows, _ := args.Get(0).([]model.OrderRow)
	return rows, args.Error(1)
}

type mockReportRepository struct{ mock.Mock }

func (m *mockReportRepository) TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error) {
	args := m.Called(ctx, limit)
	rows, _ := args.Get(0).([]model.TopProduct)
	return rows, args.Error(1)
}

type mockStockAlerter struct{ mock.Mock }

func (m *mockStockAlerter) EnqueueLowStockAlert(ctx context.Context, p job.LowStockPayload) error {
	return m.Called(ctx, p).Error(0)
}
