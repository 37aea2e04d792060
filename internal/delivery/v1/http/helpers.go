package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ShortageResponse — одна строка нехватки в ответе 409.
type ShortageResponse struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Requested int64  `json:"requested"`
	Available int64  `json:"available"`
}

// ConflictResponse — ответ 409/422 с расшифровкой затронутых строк корзины.
type ConflictResponse struct {
	Code      int                `json:"code"`
	Message   string             `json:"message"`
	Shortages []ShortageResponse `json:"shortages,omitempty"`
	Unknown   []string           `json:"unknown,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusBadRequest, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrDuplicateLine):
		return http.StatusBadRequest, e.ErrDuplicateLine.Error()
	case errors.Is(err, e.ErrQtyMustBePositive):
		return http.StatusBadRequest, e.ErrQtyMustBePositive.Error()
	case errors.Is(err, e.ErrInvalidOrderDate):
		return http.StatusBadRequest, e.ErrInvalidOrderDate.Error()
	case errors.Is(err, e.ErrInvalidDateRange):
		return http.StatusBadRequest, e.ErrInvalidDateRange.Error()
	case errors.Is(err, e.ErrInvalidSort):
		return http.StatusBadRequest, e.ErrInvalidSort.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrVariantNameRequired):
		return http.StatusBadRequest, e.ErrVariantNameRequired.Error()
	case errors.Is(err, e.ErrNoVariantDetails):
		return http.StatusBadRequest, e.ErrNoVariantDetails.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrUnknownVariant):
		return http.StatusUnprocessableEntity, e.ErrUnknownVariant.Error()
	case errors.Is(err, e.ErrStockNotFound):
		return http.StatusNotFound, e.ErrStockNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrInsufficientStock):
		return http.StatusConflict, e.ErrInsufficientStock.Error()
	case errors.Is(err, e.ErrProductHasActiveStock):
		return http.StatusConflict, e.ErrProductHasActiveStock.Error()
	case errors.Is(err, e.ErrProductReferencedByOrders):
		return http.StatusConflict, e.ErrProductReferencedByOrders.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	// Нехватка остатка и неизвестный вариант отдают построчную расшифровку
	var insufficient *usecase.InsufficientStockError
	if errors.As(err, &insufficient) {
		writeConflict(w, http.StatusConflict, e.ErrInsufficientStock.Error(), insufficient)
		return
	}

	var unknown *usecase.UnknownVariantError
	if errors.As(err, &unknown) {
		resp := &ConflictResponse{
			Code:    http.StatusUnprocessableEntity,
			Message: e.ErrUnknownVariant.Error(),
		}
		for _, k := range unknown.Keys {
			resp.Unknown = append(resp.Unknown, k.ProductID+"/"+k.VariantID)
		}
		writeJSON(w, resp.Code, resp)
		return
	}

	code, msg := ToHTTPResponse(err)
	writeJSON(w, code, NewErrorResponse(code, msg))
}

func writeConflict(w http.ResponseWriter, code int, msg string, err *usecase.InsufficientStockError) {
	resp := &ConflictResponse{
		Code:    code,
		Message: msg,
	}
	for _, s := range err.Shortages {
		resp.Shortages = append(resp.Shortages, ShortageResponse{
			ProductID: s.ProductID,
			VariantID: s.VariantID,
			Requested: s.Requested,
			Available: s.Available,
		})
	}

	writeJSON(w, code, resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseDate разбирает календарную дату вида 2006-01-02.
func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, e.ErrInvalidOrderDate
	}

	return date, nil
}

// parsePrice разбирает цену вида "599.99": неотрицательную, с точностью
// не больше двух знаков после запятой.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return decimal.Decimal{}, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return decimal.Decimal{}, e.ErrPricePrecision
	}

	return d, nil
}
