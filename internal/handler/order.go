package handler

import (
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/deppfellow/go-retail/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	Handler
	orders *service.OrderService
}

func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

type OrderTotalResponse struct {
	OrderID int64           `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

type PaidAmountResponse struct {
	OrderID    int64           `json:"order_id"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
}

func (h *OrderHandler) GetTotal(c echo.Context, req *IDRequest) (*OrderTotalResponse, error) {
	total, err := h.orders.GetTotal(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &OrderTotalResponse{OrderID: req.ID, Total: total}, nil
}

func (h *OrderHandler) GetPaidAmount(c echo.Context, req *IDRequest) (*PaidAmountResponse, error) {
	paid, err := h.orders.GetPaidAmount(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &PaidAmountResponse{OrderID: req.ID, PaidAmount: paid}, nil
}

func (h *OrderHandler) ListLatest(c echo.Context, req *LimitRequest) ([]model.OrderRow, error) {
	return h.orders.ListLatest(c.Request().Context(), req.Limit)
}

func (h *OrderHandler) ListByStatus(c echo.Context, req *OrdersByStatusRequest) ([]model.OrderRow, error) {
	return h.orders.ListByStatus(c.Request().Context(), req.Status)
}
