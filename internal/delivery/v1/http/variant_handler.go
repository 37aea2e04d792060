package http

import (
	"encoding/json"
	"net/http"

	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

type VariantHandler struct {
	variantUsecase usecase.VariantUC
	logger         logger.Logger
}

func NewVariantHandler(variantUsecase usecase.VariantUC, logger logger.Logger) *VariantHandler {
	return &VariantHandler{variantUsecase: variantUsecase, logger: logger}
}

type variantBody struct {
	Name string `json:"name"`
}

type variantInfoBody struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// listVariants
//
//	@Summary	Справочник вариантов
//	@Tags		variants
//	@Produce	json
//	@Success	200	{array}	variantInfoBody	"Варианты"
//	@Router		/variants [get]
func (v *VariantHandler) listVariants(w http.ResponseWriter, r *http.Request) {
	variants, err := v.variantUsecase.ListVariants(r.Context())
	if err != nil {
		v.logger.Warnf("list variants failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	result := make([]variantInfoBody, 0, len(variants))
	for _, variant := range variants {
		result = append(result, variantInfoBody{ID: variant.ID, Name: variant.Name})
	}

	WriteSuccess(w, http.StatusOK, result)
}

// createVariant
//
//	@Summary	Создание варианта
//	@Tags		variants
//	@Accept		json
//	@Produce	json
//	@Param		variant	body		variantBody				true	"Вариант"
//	@Success	201		{object}	map[string]interface{}	"Вариант создан"
//	@Failure	400		{object}	ErrorResponse			"Ошибка валидации"
//	@Router		/variants [post]
func (v *VariantHandler) createVariant(w http.ResponseWriter, r *http.Request) {
	var body variantBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		v.logger.Warnf("%d: malformed variant body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, e.ErrMissingFields)
		return
	}

	variantID, err := v.variantUsecase.CreateVariant(r.Context(), body.Name)
	if err != nil {
		v.logger.Warnf("create variant failed: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"variant_id": variantID,
	})
}
