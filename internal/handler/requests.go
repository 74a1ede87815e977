package handler

import (
	"fmt"
	"strings"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/validation"
)

// IDRequest carries the :id path parameter shared by most read endpoints.
type IDRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *IDRequest) Validate() error { return validation.Struct(r) }

func NewIDRequest() *IDRequest { return &IDRequest{} }

// LimitRequest carries an optional ?limit=. Missing, zero or negative values
// fall back to the default; large ones are capped by the service.
type LimitRequest struct {
	Limit int `query:"limit"`
}

func (r *LimitRequest) Validate() error { return nil }

func NewLimitRequest() *LimitRequest { return &LimitRequest{} }

// UpdateStockRequest bounds quantity to the int4 range of sp_update_stock.
type UpdateStockRequest struct {
	ID       int64 `param:"id" validate:"required,min=1"`
	Quantity *int  `json:"quantity" validate:"required,min=-2147483648,max=2147483647"`
}

func (r *UpdateStockRequest) Validate() error { return validation.Struct(r) }

// AddReviewRequest leaves the rating range to the review service so the
// client sees the INVALID_RATING code.
type AddReviewRequest struct {
	ProductID  int64  `param:"id" validate:"required,min=1"`
	CustomerID int64  `json:"customer_id" validate:"required,min=1"`
	Rating     *int   `json:"rating" validate:"required"`
	Comment    string `json:"comment" validate:"max=2000"`
}

func (r *AddReviewRequest) Validate() error { return validation.Struct(r) }

type OrdersByStatusRequest struct {
	Status model.OrderStatus `query:"status" validate:"required"`
}

func (r *OrdersByStatusRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if !model.ValidOrderStatus(r.Status) {
		return validation.CustomValidationErrors{{
			Field:   "status",
			Message: fmt.Sprintf("must be one of: %s", orderStatusList()),
		}}
	}
	return nil
}

func orderStatusList() string {
	names := make([]string, len(model.OrderStatuses))
	for i, s := range model.OrderStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, " ")
}
