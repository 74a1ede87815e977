// Package handler is the HTTP entry point for the retail query API.
//
// Handlers bind and validate requests through the validation package, call
// the service layer and shape its results into JSON responses.
package handler

import (
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/deppfellow/go-retail/internal/service"
)

type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Customers *CustomerHandler
	Products  *ProductHandler
	Orders    *OrderHandler
	Reports   *ReportHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Customers: NewCustomerHandler(s, services.Customers),
		Products:  NewProductHandler(s, services.Products, services.Reviews),
		Orders:    NewOrderHandler(s, services.Orders),
		Reports:   NewReportHandler(s, services.Reports),
	}
}
