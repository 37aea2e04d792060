package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

type productDetailBody struct {
	VariantID string `json:"variant_id"`
	Qty       int64  `json:"qty"`
	Price     string `json:"price"`
}

type productBody struct {
	Name    string              `json:"name"`
	Details []productDetailBody `json:"details"`
}

type productDetailInfoBody struct {
	VariantID   string `json:"variant_id"`
	VariantName string `json:"variant_name"`
	Qty         int64  `json:"qty"`
	Price       string `json:"price"`
}

type productWithDetailsBody struct {
	ID      string                  `json:"id"`
	Name    string                  `json:"name"`
	Details []productDetailInfoBody `json:"details"`
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Создаёт продукт со складскими записями по вариантам
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		productBody				true	"Продукт"
//	@Success		201		{object}	map[string]interface{}	"Продукт создан"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router			/products [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductBody(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	productID, err := p.productUsecase.CreateProduct(r.Context(), req)
	if err != nil {
		p.logger.Warnf("create product failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"product_id": productID,
	})
}

// updateProduct
//
//	@Summary		Обновление продукта
//	@Description	Переименовывает продукт и приводит складские записи к заданному набору
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"ID продукта"
//	@Param			product	body		productBody				true	"Продукт"
//	@Success		200		{object}	map[string]interface{}	"Продукт обновлён"
//	@Failure		400		{object}	ErrorResponse			"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse			"Продукт не найден"
//	@Router			/products/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	req, err := parseProductBody(r)
	if err != nil {
		p.logger.Warnf("%d: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	updateReq := &usecase.UpdateProductReq{
		ID:      productID,
		Name:    req.Name,
		Details: req.Details,
	}

	if err := p.productUsecase.UpdateProduct(r.Context(), updateReq); err != nil {
		p.logger.Warnf("update product %s failed: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
	})
}

// deleteProduct
//
//	@Summary		Удаление продукта
//	@Description	Жёстко удаляет продукт без активных остатков
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string					true	"ID продукта"
//	@Success		200	{object}	map[string]interface{}	"Продукт удалён"
//	@Failure		404	{object}	ErrorResponse			"Продукт не найден"
//	@Failure		409	{object}	ErrorResponse			"Есть активные остатки"
//	@Router			/products/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	if err := p.productUsecase.DeleteProduct(r.Context(), productID); err != nil {
		p.logger.Warnf("delete product %s failed: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"product_id": productID,
		"deleted":    true,
	})
}

// getProducts
//
//	@Summary		Список продуктов
//	@Description	Возвращает продукты с активными складскими записями
//	@Tags			products
//	@Produce		json
//	@Success		200	{array}	productWithDetailsBody	"Продукты"
//	@Router			/products [get]
func (p *ProductHandler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.GetProducts(r.Context())
	if err != nil {
		p.logger.Warnf("get products failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]productWithDetailsBody, 0, len(products))
	for _, product := range products {
		body := productWithDetailsBody{
			ID:      product.ID,
			Name:    product.Name,
			Details: make([]productDetailInfoBody, 0, len(product.Details)),
		}
		for _, detail := range product.Details {
			body.Details = append(body.Details, productDetailInfoBody{
				VariantID:   detail.VariantID,
				VariantName: detail.VariantName,
				Qty:         detail.Qty,
				Price:       detail.Price.String(),
			})
		}
		result = append(result, body)
	}

	WriteSuccess(w, http.StatusOK, result)
}

func parseProductBody(r *http.Request) (*usecase.CreateProductReq, error) {
	var body productBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return nil, e.ErrMissingFields
	}

	details := make([]usecase.ProductDetailReq, 0, len(body.Details))
	for _, d := range body.Details {
		price, err := parsePrice(d.Price)
		if err != nil {
			return nil, err
		}

		details = append(details, usecase.ProductDetailReq{
			VariantID: d.VariantID,
			Qty:       d.Qty,
			Price:     price,
		})
	}

	return &usecase.CreateProductReq{
		Name:    body.Name,
		Details: details,
	}, nil
}
