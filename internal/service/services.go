// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from handlers, applies the rules that live outside the database
// (rating bounds, result limits, low-stock alerts) and calls the repositories.
package service

import (
	"github.com/deppfellow/go-retail/internal/lib/job"
	"github.com/deppfellow/go-retail/internal/repository"
	"github.com/deppfellow/go-retail/internal/server"
)

type Services struct {
	Auth      *AuthService
	Job       *job.JobService
	Customers *CustomerService
	Products  *ProductService
	Reviews   *ReviewService
	Orders    *OrderService
	Reports   *ReportService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	authService := NewAuthService(s)

	var alerts StockAlerter
	if s.Job != nil {
		alerts = s.Job
	}

	return &Services{
		Auth:      authService,
		Job:       s.Job,
		Customers: NewCustomerService(repos.Customers),
		Products:  NewProductService(repos.Products, alerts, s.Config.Inventory, s.Logger),
		Reviews:   NewReviewService(repos.Reviews),
		Orders:    NewOrderService(repos.Orders),
		Reports:   NewReportService(repos.Reports),
	}, nil
}
