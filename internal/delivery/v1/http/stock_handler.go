package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

type StockHandler struct {
	stockUsecase usecase.StockUC
	logger       logger.Logger
}

func NewStockHandler(stockUsecase usecase.StockUC, logger logger.Logger) *StockHandler {
	return &StockHandler{stockUsecase: stockUsecase, logger: logger}
}

type stockInfoBody struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Qty       int64  `json:"qty"`
	Price     string `json:"price"`
}

// getStock
//
//	@Summary	Остаток по паре продукт/вариант
//	@Tags		stocks
//	@Produce	json
//	@Param		productID	path		string			true	"ID продукта"
//	@Param		variantID	path		string			true	"ID варианта"
//	@Success	200			{object}	stockInfoBody	"Остаток"
//	@Failure	404			{object}	ErrorResponse	"Запись не найдена"
//	@Router		/stocks/{productID}/{variantID} [get]
func (s *StockHandler) getStock(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	variantID := chi.URLParam(r, "variantID")

	stock, err := s.stockUsecase.GetStock(r.Context(), usecase.NewGetStockReq(productID, variantID))
	if err != nil {
		s.logger.Warnf("get stock %s/%s failed: %s", productID, variantID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, stockInfoBody{
		ProductID: stock.ProductID,
		VariantID: stock.VariantID,
		Qty:       stock.Qty,
		Price:     stock.Price.String(),
	})
}
