package service

import (
	"context"

	"github.com/deppfellow/go-retail/internal/model"
)

type ReportService struct {
	repo ReportRepository
}

func NewReportService(repo ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// TopProducts ranks products by units sold, descending.
func (s *ReportService) TopProducts(ctx context.Context, limit int) ([]model.TopProduct, error) {
	products, err := s.repo.TopProducts(ctx, NormalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []model.TopProduct{}
	}
	return products, nil
}
