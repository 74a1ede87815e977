package service

import (
	"context"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/shopspring/decimal"
)

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// GetFullName returns "first last", or "" for an unknown customer.
func (s *CustomerService) GetFullName(ctx context.Context, customerID int64) (string, error) {
	return s.repo.GetFullName(ctx, customerID)
}

func (s *CustomerService) Exists(ctx context.Context, customerID int64) (bool, error) {
	return s.repo.Exists(ctx, customerID)
}

func (s *CustomerService) GetOrderCount(ctx context.Context, customerID int64) (int, error) {
	return s.repo.GetOrderCount(ctx, customerID)
}

func (s *CustomerService) GetTotalSpent(ctx context.Context, customerID int64) (decimal.Decimal, error) {
	return s.repo.GetTotalSpent(ctx, customerID)
}

func (s *CustomerService) GetSummary(ctx context.Context, customerID int64) (*model.CustomerSummary, error) {
	return s.repo.GetSummary(ctx, customerID)
}

// ListOrders returns the customer's orders, newest first.
func (s *CustomerService) ListOrders(ctx context.Context, customerID int64) ([]model.OrderRow, error) {
	orders, err := s.repo.ListOrders(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.OrderRow{}
	}
	return orders, nil
}
