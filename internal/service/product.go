package service

import (
	"context"
	"errors"

	"github.com/deppfellow/go-retail/internal/config"
	"github.com/deppfellow/go-retail/internal/lib/job"
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// StockLevel is the result of a stock update.
type StockLevel struct {
	ProductID     int64 `json:"product_id"`
	StockQuantity int   `json:"stock_quantity"`
	LowStock      bool  `json:"low_stock"`
}

type ProductService struct {
	repo      ProductRepository
	alerts    StockAlerter
	inventory *config.InventoryConfig
	logger    *zerolog.Logger
}

// NewProductService wires the product repository with the optional low-stock
// alerter. A nil alerter or an empty alert recipient disables alerts.
func NewProductService(repo ProductRepository, alerts StockAlerter, inventory *config.InventoryConfig, logger *zerolog.Logger) *ProductService {
	if inventory == nil {
		inventory = config.DefaultInventoryConfig()
	}
	return &ProductService{
		repo:      repo,
		alerts:    alerts,
		inventory: inventory,
		logger:    logger,
	}
}

func (s *ProductService) GetProduct(ctx context.Context, productID int64) (*model.Product, error) {
	return s.repo.GetProduct(ctx, productID)
}

// GetStock returns the stock on hand, 0 for an unknown product.
func (s *ProductService) GetStock(ctx context.Context, productID int64) (int, error) {
	return s.repo.GetStock(ctx, productID)
}

// UpdateStock subtracts quantity from the product's stock.
//
// Stock may go negative and an unknown product is left untouched. When the
// resulting stock is at or below the low-stock threshold an alert is queued;
// queueing failures are logged and never fail the update.
func (s *ProductService) UpdateStock(ctx context.Context, productID int64, quantity int) (*StockLevel, error) {
	if err := s.repo.UpdateStock(ctx, productID, quantity); err != nil {
		return nil, err
	}

	product, err := s.repo.GetProduct(ctx, productID)
	if errors.Is(err, pgx.ErrNoRows) {
		return &StockLevel{ProductID: productID}, nil
	}
	if err != nil {
		return nil, err
	}

	level := &StockLevel{
		ProductID:     product.ID,
		StockQuantity: product.StockQuantity,
		LowStock:      product.StockQuantity <= s.inventory.LowStockThreshold,
	}

	if level.LowStock {
		s.alertLowStock(ctx, product)
	}

	return level, nil
}

func (s *ProductService) alertLowStock(ctx context.Context, product *model.Product) {
	if s.alerts == nil || s.inventory.AlertEmail == "" {
		return
	}

	err := s.alerts.EnqueueLowStockAlert(ctx, job.LowStockPayload{
		To:            s.inventory.AlertEmail,
		ProductID:     product.ID,
		ProductName:   product.Name,
		StockQuantity: product.StockQuantity,
		Threshold:     s.inventory.LowStockThreshold,
	})
	switch {
	case err == nil:
	case errors.Is(err, asynq.ErrDuplicateTask):
		// an alert for this product is already queued within the unique window
		s.logger.Debug().
			Int64("product_id", product.ID).
			Msg("low stock alert already queued")
	default:
		s.logger.Error().
			Err(err).
			Int64("product_id", product.ID).
			Msg("failed to enqueue low stock alert")
	}
}

func (s *ProductService) GetReviewCount(ctx context.Context, productID int64) (int, error) {
	return s.repo.GetReviewCount(ctx, productID)
}

// GetAverageRating returns the mean rating rounded to two places, 0.00 when
// the product has no reviews.
func (s *ProductService) GetAverageRating(ctx context.Context, productID int64) (decimal.Decimal, error) {
	return s.repo.GetAverageRating(ctx, productID)
}

func (s *ProductService) ListByCategory(ctx context.Context, categoryID int64) ([]model.CategoryProduct, error) {
	products, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.CategoryProduct{}
	}
	return products, nil
}
