package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/deppfellow/go-retail/internal/errs"
	"github.com/deppfellow/go-retail/internal/lib/job"
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func TestNormalizeLimit(t *testing.T) {
	cases := map[int]int{
		-5:  DefaultLimit,
		0:   DefaultLimit,
		1:   1,
		42:  42,
		100: 100,
		101: MaxLimit,
		500: MaxLimit,
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeLimit(in), "limit %d", in)
	}
}

func TestCustomerService_ListOrdersNeverNil(t *testing.T) {
	// Arrange
	repo := new(mockCustomerRepository)
	repo.On("ListOrders", ctx, int64(9)).Return(nil, nil)
	svc := NewCustomerService(repo)

	// Act
	orders, err := svc.ListOrders(ctx, 9)

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
	repo.AssertExpectations(t)
}

func TestCustomerService_PassesThrough(t *testing.T) {
	repo := new(mockCustomerRepository)
	repo.On("GetFullName", ctx, int64(1)).Return("Ada Lovelace", nil)
	repo.On("Exists", ctx, int64(1)).Return(true, nil)
	repo.On("GetOrderCount", ctx, int64(1)).Return(2, nil)
	repo.On("GetTotalSpent", ctx, int64(1)).Return(decimal.RequireFromString("36.75"), nil)
	svc := NewCustomerService(repo)

	name, err := svc.GetFullName(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", name)

	exists, err := svc.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := svc.GetOrderCount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	spent, err := svc.GetTotalSpent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "36.75", spent.StringFixed(2))

	repo.AssertExpectations(t)
}

func TestReviewService_RejectsOutOfRangeRating(t *testing.T) {
	for _, rating := range []int{-1, 0, 6, 10} {
		repo := new(mockReviewRepository)
		svc := NewReviewService(repo)

		err := svc.AddReview(ctx, AddReviewInput{CustomerID: 1, ProductID: 2, Rating: rating})

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr, "rating %d", rating)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Equal(t, InvalidRatingCode, httpErr.Code)
		assert.Equal(t, "Rating must be between 1 and 5", httpErr.Message)
		repo.AssertNotCalled(t, "AddReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestReviewService_AcceptsBounds(t *testing.T) {
	repo := new(mockReviewRepository)
	repo.On("AddReview", ctx, int64(1), int64(2), 1, "meh").Return(nil)
	repo.On("AddReview", ctx, int64(1), int64(2), 5, "great").Return(nil)
	svc := NewReviewService(repo)

	require.NoError(t, svc.AddReview(ctx, AddReviewInput{CustomerID: 1, ProductID: 2, Rating: 1, Comment: "meh"}))
	require.NoError(t, svc.AddReview(ctx, AddReviewInput{CustomerID: 1, ProductID: 2, Rating: 5, Comment: "great"}))

	repo.AssertExpectations(t)
}

func TestProductService_UpdateStockQueuesLowStockAlert(t *testing.T) {
	// Arrange
	repo := new(mockProductRepository)
	alerts := new(mockStockAlerter)
	inventory := &config.InventoryConfig{LowStockThreshold: 5, AlertEmail: "ops@example.com"}

	repo.On("UpdateStock", ctx, int64(3), 8).Return(nil)
	repo.On("GetProduct", ctx, int64(3)).Return(&model.Product{ID: 3, Name: "Mug", StockQuantity: 2}, nil)
	alerts.On("EnqueueLowStockAlert", ctx, job.LowStockPayload{
		To:            "ops@example.com",
		ProductID:     3,
		ProductName:   "Mug",
		StockQuantity: 2,
		Threshold:     5,
	}).Return(nil)

	svc := NewProductService(repo, alerts, inventory, nopLogger())

	// Act
	level, err := svc.UpdateStock(ctx, 3, 8)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StockLevel{ProductID: 3, StockQuantity: 2, LowStock: true}, level)
	repo.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestProductService_UpdateStockAboveThresholdNoAlert(t *testing.T) {
	repo := new(mockProductRepository)
	alerts := new(mockStockAlerter)
	inventory := &config.InventoryConfig{LowStockThreshold: 5, AlertEmail: "ops@example.com"}

	repo.On("UpdateStock", ctx, int64(1), 1).Return(nil)
	repo.On("GetProduct", ctx, int64(1)).Return(&model.Product{ID: 1, StockQuantity: 6}, nil)

	svc := NewProductService(repo, alerts, inventory, nopLogger())
	level, err := svc.UpdateStock(ctx, 1, 1)

	require.NoError(t, err)
	assert.False(t, level.LowStock)
	alerts.AssertNotCalled(t, "EnqueueLowStockAlert", mock.Anything, mock.Anything)
}

func TestProductService_UpdateStockWithoutRecipientNoAlert(t *testing.T) {
	repo := new(mockProductRepository)
	alerts := new(mockStockAlerter)

	repo.On("UpdateStock", ctx, int64(1), 10).Return(nil)
	repo.On("GetProduct", ctx, int64(1)).Return(&model.Product{ID: 1, StockQuantity: -4}, nil)

	svc := NewProductService(repo, alerts, nil, nopLogger())
	level, err := svc.UpdateStock(ctx, 1, 10)

	require.NoError(t, err)
	assert.True(t, level.LowStock)
	assert.Equal(t, -4, level.StockQuantity)
	alerts.AssertNotCalled(t, "EnqueueLowStockAlert", mock.Anything, mock.Anything)
}

func TestProductService_UpdateStockEnqueueFailureIsSwallowed(t *testing.T) {
	repo := new(mockProductRepository)
	alerts := new(mockStockAlerter)
	inventory := &config.InventoryConfig{LowStockThreshold: 5, AlertEmail: "ops@example.com"}

	repo.On("UpdateStock", ctx, int64(2), 1).Return(nil)
	repo.On("GetProduct", ctx, int64(2)).Return(&model.Product{ID: 2, StockQuantity: 0}, nil)
	alerts.On("EnqueueLowStockAlert", ctx, mock.AnythingOfType("job.LowStockPayload")).Return(errors.New("redis down"))

	svc := NewProductService(repo, alerts, inventory, nopLogger())
	level, err := svc.UpdateStock(ctx, 2, 1)

	require.NoError(t, err)
	assert.True(t, level.LowStock)
	alerts.AssertExpectations(t)
}

func TestProductService_UpdateStockDuplicateAlertLogsAtDebug(t *testing.T) {
	repo := new(mockProductRepository)
	alerts := new(mockStockAlerter)
	inventory := &config.InventoryConfig{LowStockThreshold: 5, AlertEmail: "ops@example.com"}

	repo.On("UpdateStock", ctx, int64(2), 1).Return(nil)
	repo.On("GetProduct", ctx, int64(2)).Return(&model.Product{ID: 2, StockQuantity: 3}, nil)
	alerts.On("EnqueueLowStockAlert", ctx, mock.AnythingOfType("job.LowStockPayload")).
		Return(fmt.Errorf("enqueue: %w", asynq.ErrDuplicateTask))

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	svc := NewProductService(repo, alerts, inventory, &logger)
	level, err := svc.UpdateStock(ctx, 2, 1)

	require.NoError(t, err)
	assert.True(t, level.LowStock)
	assert.Contains(t, buf.String(), `"level":"debug"`)
	assert.Contains(t, buf.String(), "low stock alert already queued")
	assert.NotContains(t, buf.String(), `"level":"error"`)
	alerts.AssertExpectations(t)
}

func TestProductService_UpdateStockUnknownProductIsNoOp(t *testing.T) {
	repo := new(mockProductRepository)
	repo.On("UpdateStock", ctx, int64(404), 3).Return(nil)
	repo.On("GetProduct", ctx, int64(404)).Return(nil, pgx.ErrNoRows)

	svc := NewProductService(repo, nil, nil, nopLogger())
	level, err := svc.UpdateStock(ctx, 404, 3)

	require.NoError(t, err)
	assert.Equal(t, &StockLevel{ProductID: 404}, level)
}

func TestProductService_UpdateStockError(t *testing.T) {
	repo := new(mockProductRepository)
	repo.On("UpdateStock", ctx, int64(1), 1).Return(errors.New("sp_update_stock: boom"))

	svc := NewProductService(repo, nil, nil, nopLogger())
	level, err := svc.UpdateStock(ctx, 1, 1)

	assert.Nil(t, level)
	assert.EqualError(t, err, "sp_update_stock: boom")
	repo.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestOrderService_ListLatestNormalizesLimit(t *testing.T) {
	repo := new(mockOrderRepository)
	repo.On("ListLatest", ctx, DefaultLimit).Return([]model.OrderRow{{OrderID: 1}}, nil)
	repo.On("ListLatest", ctx, MaxLimit).Return(nil, nil)
	svc := NewOrderService(repo)

	orders, err := svc.ListLatest(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	orders, err = svc.ListLatest(ctx, 1000)
	require.NoError(t, err)
	assert.NotNil(t, orders)

	repo.AssertExpectations(t)
}

func TestOrderService_ListByStatus(t *testing.T) {
	repo := new(mockOrderRepository)
	repo.On("ListByStatus", ctx, model.OrderStatusPaid).Return([]model.OrderRow{{OrderID: 4}, {OrderID: 2}}, nil)
	svc := NewOrderService(repo)

	orders, err := svc.ListByStatus(ctx, model.OrderStatusPaid)

	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestReportService_TopProducts(t *testing.T) {
	repo := new(mockReportRepository)
	repo.On("TopProducts", ctx, 3).Return([]model.TopProduct{{ProductID: 2, UnitsSold: 4}}, nil)
	svc := NewReportService(repo)

	top, err := svc.TopProducts(ctx, 3)

	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, int64(4), top[0].UnitsSold)
}

func TestReportService_TopProductsError(t *testing.T) {
	repo := new(mockReportRepository)
	repo.On("TopProducts", ctx, DefaultLimit).Return(nil, errors.New("down"))
	svc := NewReportService(repo)

	top, err := svc.TopProducts(ctx, -1)

	assert.Nil(t, top)
	assert.Error(t, err)
}
