package service

import (
	"context"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/shopspring/decimal"
)

type OrderService struct {
	repo OrderRepository
}

func NewOrderService(repo OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// GetTotal sums quantity * unit price over the order's items.
func (s *OrderService) GetTotal(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	return s.repo.GetTotal(ctx, orderID)
}

// GetPaidAmount sums the order's completed payments.
func (s *OrderService) GetPaidAmount(ctx context.Context, orderID int64) (decimal.Decimal, error) {
	return s.repo.GetPaidAmount(ctx, orderID)
}

func (s *OrderService) ListLatest(ctx context.Context, limit int) ([]model.OrderRow, error) {
	orders, err := s.repo.ListLatest(ctx, NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.OrderRow{}
	}
	return orders, nil
}

func (s *OrderService) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.OrderRow, error) {
	orders, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.OrderRow{}
	}
	return orders, nil
}
