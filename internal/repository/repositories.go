package repository

import (
	"github.com/deppfellow/go-retail/internal/server"
)

// Repositories groups every repository so services receive one dependency.
type Repositories struct {
	Customers *CustomerRepository
	Products  *ProductRepository
	Orders    *OrderRepository
	Reviews   *ReviewRepository
	Reports   *ReportRepository
}

// NewRepositories builds all repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	return NewRepositoriesWithDB(s.DB.Pool)
}

// NewRepositoriesWithDB builds all repositories on top of any DBTX.
func NewRepositoriesWithDB(db DBTX) *Repositories {
	return &Repositories{
		Customers: NewCustomerRepository(db),
		Products:  NewProductRepository(db),
		Orders:    NewOrderRepository(db),
		Reviews:   NewReviewRepository(db),
		Reports:   NewReportRepository(db),
	}
}
