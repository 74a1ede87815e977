package handler

import (
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/deppfellow/go-retail/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CustomerHandler struct {
	Handler
	customers *service.CustomerService
}

func NewCustomerHandler(s *server.Server, customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		Handler:   NewHandler(s),
		customers: customers,
	}
}

type FullNameResponse struct {
	CustomerID int64  `json:"customer_id"`
	FullName   string `json:"full_name"`
}

type ExistsResponse struct {
	CustomerID int64 `json:"customer_id"`
	Exists     bool  `json:"exists"`
}

type OrderCountResponse struct {
	CustomerID int64 `json:"customer_id"`
	OrderCount int   `json:"order_count"`
}

type TotalSpentResponse struct {
	CustomerID int64           `json:"customer_id"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// GetFullName answers with an empty full_name for unknown customers.
func (h *CustomerHandler) GetFullName(c echo.Context, req *IDRequest) (*FullNameResponse, error) {
	name, err := h.customers.GetFullName(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &FullNameResponse{CustomerID: req.ID, FullName: name}, nil
}

func (h *CustomerHandler) Exists(c echo.Context, req *IDRequest) (*ExistsResponse, error) {
	exists, err := h.customers.Exists(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &ExistsResponse{CustomerID: req.ID, Exists: exists}, nil
}

func (h *CustomerHandler) GetOrderCount(c echo.Context, req *IDRequest) (*OrderCountResponse, error) {
	count, err := h.customers.GetOrderCount(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &OrderCountResponse{CustomerID: req.ID, OrderCount: count}, nil
}

func (h *CustomerHandler) GetTotalSpent(c echo.Context, req *IDRequest) (*TotalSpentResponse, error) {
	total, err := h.customers.GetTotalSpent(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &TotalSpentResponse{CustomerID: req.ID, TotalSpent: total}, nil
}

// GetSummary answers 404 for an unknown customer.
func (h *CustomerHandler) GetSummary(c echo.Context, req *IDRequest) (*model.CustomerSummary, error) {
	return h.customers.GetSummary(c.Request().Context(), req.ID)
}

func (h *CustomerHandler) ListOrders(c echo.Context, req *IDRequest) ([]model.OrderRow, error) {
	return h.customers.ListOrders(c.Request().Context(), req.ID)
}
