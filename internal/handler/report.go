package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/deppfellow/go-retail/internal/model"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/deppfellow/go-retail/internal/service"
	"github.com/labstack/echo/v4"
)

type ReportHandler struct {
	Handler
	reports *service.ReportService
}

func NewReportHandler(s *server.Server, reports *service.ReportService) *ReportHandler {
	return &ReportHandler{
		Handler: NewHandler(s),
		reports: reports,
	}
}

func (h *ReportHandler) TopProducts(c echo.Context, req *LimitRequest) ([]model.TopProduct, error) {
	return h.reports.TopProducts(c.Request().Context(), req.Limit)
}

// ExportTopProducts renders the top products report as CSV.
func (h *ReportHandler) ExportTopProducts(c echo.Context, req *LimitRequest) ([]byte, error) {
	products, err := h.reports.TopProducts(c.Request().Context(), req.Limit)
	if err != nil {
		return nil, err
	}
	return topProductsCSV(products)
}

func topProductsCSV(products []model.TopProduct) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"rank", "product_id", "name", "units_sold", "revenue"}); err != nil {
		return nil, err
	}
	for i, p := range products {
		record := []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(p.ProductID, 10),
			p.Name,
			strconv.FormatInt(p.UnitsSold, 10),
			p.Revenue.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
