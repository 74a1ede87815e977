package handler

import (
	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/deppfellow/go-retail/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
	reviews  *service.ReviewService
}

func NewProductHandler(s *server.Server, products *service.ProductService, reviews *service.ReviewService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
		reviews:  reviews,
	}
}

type StockResponse struct {
	ProductID     int64 `json:"product_id"`
	StockQuantity int   `json:"stock_quantity"`
}

type ReviewCountResponse struct {
	ProductID   int64 `json:"product_id"`
	ReviewCount int   `json:"review_count"`
}

type AverageRatingResponse struct {
	ProductID     int64           `json:"product_id"`
	AverageRating decimal.Decimal `json:"average_rating"`
}

type ReviewCreatedResponse struct {
	ProductID  int64 `json:"product_id"`
	CustomerID int64 `json:"customer_id"`
	Rating     int   `json:"rating"`
}

func (h *ProductHandler) GetProduct(c echo.Context, req *IDRequest) (*model.Product, error) {
	return h.products.GetProduct(c.Request().Context(), req.ID)
}

func (h *ProductHandler) GetStock(c echo.Context, req *IDRequest) (*StockResponse, error) {
	stock, err := h.products.GetStock(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &StockResponse{ProductID: req.ID, StockQuantity: stock}, nil
}

func (h *ProductHandler) UpdateStock(c echo.Context, req *UpdateStockRequest) (*service.StockLevel, error) {
	return h.products.UpdateStock(c.Request().Context(), req.ID, *req.Quantity)
}

func (h *ProductHandler) GetReviewCount(c echo.Context, req *IDRequest) (*ReviewCountResponse, error) {
	count, err := h.products.GetReviewCount(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &ReviewCountResponse{ProductID: req.ID, ReviewCount: count}, nil
}

func (h *ProductHandler) GetAverageRating(c echo.Context, req *IDRequest) (*AverageRatingResponse, error) {
	rating, err := h.products.GetAverageRating(c.Request().Context(), req.ID)
	if err != nil {
		return nil, err
	}
	return &AverageRatingResponse{ProductID: req.ID, AverageRating: rating}, nil
}

func (h *ProductHandler) AddReview(c echo.Context, req *AddReviewRequest) (*ReviewCreatedResponse, error) {
	err := h.reviews.AddReview(c.Request().Context(), service.AddReviewInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Rating:     *req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		return nil, err
	}
	return &ReviewCreatedResponse{
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		Rating:     *req.Rating,
	}, nil
}

// ListByCategory serves /categories/:id/products.
func (h *ProductHandler) ListByCategory(c echo.Context, req *IDRequest) ([]model.CategoryProduct, error) {
	return h.products.ListByCategory(c.Request().Context(), req.ID)
}
