package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/stokku/go-stock-backend/docs" // Импорт сгенерированных файлов
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(orderUC usecase.OrderUC, stockUC usecase.StockUC, productUC usecase.ProductUC, variantUC usecase.VariantUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerStockRoutes(v1, NewStockHandler(stockUC, r.logger))
		registerProductRoutes(v1, NewProductHandler(productUC, r.logger))
		registerVariantRoutes(v1, NewVariantHandler(variantUC, r.logger))
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.placeOrder)
		or.Get("/", h.filterOrders)
		or.Get("/date/{date}", h.listOrdersByDate)
		or.Delete("/{id}", h.voidOrder)
	})
}

func registerStockRoutes(router chi.Router, h *StockHandler) {
	router.Route("/stocks", func(st chi.Router) {
		st.Get("/{productID}/{variantID}", h.getStock)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Get("/", h.getProducts)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
	})
}

func registerVariantRoutes(router chi.Router, h *VariantHandler) {
	router.Route("/variants", func(vr chi.Router) {
		vr.Get("/", h.listVariants)
		vr.Post("/", h.createVariant)
	})
}
