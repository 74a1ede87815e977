// Package router builds the Echo instance: global middleware in order, system
// routes and the /api/v1 groups.
package router

import (
	"net/http"

	"github.com/deppfellow/go-retail/internal/handler"
	"github.com/deppfellow/go-retail/internal/middleware"
	"github.com/deppfellow/go-retail/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Tracing must come before the context enhancer so the request logger
	// picks up the transaction's trace ids.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	v1 := router.Group("/api/v1")
	registerCustomerRoutes(v1, h)
	registerProductRoutes(v1, h, middlewares)
	registerOrderRoutes(v1, h)
	registerReportRoutes(v1, h)

	return router
}

func registerCustomerRoutes(g *echo.Group, h *handler.Handlers) {
	ch := h.Customers
	customers := g.Group("/customers/:id")

	customers.GET("/full-name", handler.Handle(ch.Handler, ch.GetFullName, http.StatusOK, handler.NewIDRequest))
	customers.GET("/exists", handler.Handle(ch.Handler, ch.Exists, http.StatusOK, handler.NewIDRequest))
	customers.GET("/order-count", handler.Handle(ch.Handler, ch.GetOrderCount, http.StatusOK, handler.NewIDRequest))
	customers.GET("/total-spent", handler.Handle(ch.Handler, ch.GetTotalSpent, http.StatusOK, handler.NewIDRequest))
	customers.GET("/summary", handler.Handle(ch.Handler, ch.GetSummary, http.StatusOK, handler.NewIDRequest))
	customers.GET("/orders", handler.Handle(ch.Handler, ch.ListOrders, http.StatusOK, handler.NewIDRequest))
}

func registerProductRoutes(g *echo.Group, h *handler.Handlers, m *middleware.Middlewares) {
	ph := h.Products

	g.GET("/categories/:id/products", handler.Handle(ph.Handler, ph.ListByCategory, http.StatusOK, handler.NewIDRequest))

	products := g.Group("/products/:id")
	products.GET("", handler.Handle(ph.Handler, ph.GetProduct, http.StatusOK, handler.NewIDRequest))
	products.GET("/stock", handler.Handle(ph.Handler, ph.GetStock, http.StatusOK, handler.NewIDRequest))
	products.GET("/review-count", handler.Handle(ph.Handler, ph.GetReviewCount, http.StatusOK, handler.NewIDRequest))
	products.GET("/average-rating", handler.Handle(ph.Handler, ph.GetAverageRating, http.StatusOK, handler.NewIDRequest))

	products.PATCH("/stock",
		handler.Handle(ph.Handler, ph.UpdateStock, http.StatusOK, func() *handler.UpdateStockRequest {
			return &handler.UpdateStockRequest{}
		}),
		m.RateLimit.Limit(), m.Auth.RequireAuth,
	)
	products.POST("/reviews",
		handler.Handle(ph.Handler, ph.AddReview, http.StatusCreated, func() *handler.AddReviewRequest {
			return &handler.AddReviewRequest{}
		}),
		m.RateLimit.Limit(), m.Auth.RequireAuth,
	)
}

func registerOrderRoutes(g *echo.Group, h *handler.Handlers) {
	oh := h.Orders

	g.GET("/orders", handler.Handle(oh.Handler, oh.ListByStatus, http.StatusOK, func() *handler.OrdersByStatusRequest {
		return &handler.OrdersByStatusRequest{}
	}))
	g.GET("/orders/latest", handler.Handle(oh.Handler, oh.ListLatest, http.StatusOK, handler.NewLimitRequest))
	g.GET("/orders/:id/total", handler.Handle(oh.Handler, oh.GetTotal, http.StatusOK, handler.NewIDRequest))
	g.GET("/orders/:id/paid-amount", handler.Handle(oh.Handler, oh.GetPaidAmount, http.StatusOK, handler.NewIDRequest))
}

func registerReportRoutes(g *echo.Group, h *handler.Handlers) {
	rh := h.Reports

	g.GET("/reports/top-products", handler.Handle(rh.Handler, rh.TopProducts, http.StatusOK, handler.NewLimitRequest))
	g.GET("/reports/top-products.csv", handler.HandleFile(rh.Handler, rh.ExportTopProducts, http.StatusOK,
		handler.NewLimitRequest, "top-products.csv", "text/csv"))
}
