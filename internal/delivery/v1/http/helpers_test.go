package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"empty cart", e.ErrEmptyCart, http.StatusBadRequest},
		{"duplicate line", e.ErrDuplicateLine, http.StatusBadRequest},
		{"non-positive qty", e.ErrQtyMustBePositive, http.StatusBadRequest},
		{"invalid sort", e.ErrInvalidSort, http.StatusBadRequest},
		{"order not found", e.ErrOrderNotFound, http.StatusNotFound},
		{"stock not found", e.ErrStockNotFound, http.StatusNotFound},
		{"insufficient stock", e.ErrInsufficientStock, http.StatusConflict},
		{"product has active stock", e.ErrProductHasActiveStock, http.StatusConflict},
		{"product referenced by orders", e.ErrProductReferencedByOrders, http.StatusConflict},
		{"unknown variant", e.ErrUnknownVariant, http.StatusUnprocessableEntity},
		{"wrapped sentinel", e.Wrap("OrderUseCase.VoidOrder", e.ErrOrderNotFound), http.StatusNotFound},
		{"unexpected", e.ErrPersistenceFailure, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _ := ToHTTPResponse(tt.err)
			if code != tt.code {
				t.Errorf("code = %d, want %d", code, tt.code)
			}
		})
	}
}

func TestWriteError_InsufficientStockListsEveryLine(t *testing.T) {
	err := usecase.NewInsufficientStockError([]domain.Shortage{
		{ProductID: "PR-1", VariantID: "VR-1", Requested: 10, Available: 5},
		{ProductID: "PR-2", VariantID: "VR-2", Requested: 3, Available: 0},
	})

	rec := httptest.NewRecorder()
	WriteError(rec, e.Wrap("OrderUseCase.PlaceOrder", err))

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}

	var resp ConflictResponse
	if decodeErr := json.NewDecoder(rec.Body).Decode(&resp); decodeErr != nil {
		t.Fatalf("decode body: %v", decodeErr)
	}

	if len(resp.Shortages) != 2 {
		t.Fatalf("shortages = %d, want 2", len(resp.Shortages))
	}
	if resp.Shortages[0].Requested != 10 || resp.Shortages[0].Available != 5 {
		t.Errorf("first shortage = %+v, want requested 10 available 5", resp.Shortages[0])
	}
}

func TestWriteError_UnknownVariantListsKeys(t *testing.T) {
	err := usecase.NewUnknownVariantError([]domain.StockKey{
		{ProductID: "PR-1", VariantID: "VR-9"},
	})

	rec := httptest.NewRecorder()
	WriteError(rec, err)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	var resp ConflictResponse
	if decodeErr := json.NewDecoder(rec.Body).Decode(&resp); decodeErr != nil {
		t.Fatalf("decode body: %v", decodeErr)
	}

	if len(resp.Unknown) != 1 || resp.Unknown[0] != "PR-1/VR-9" {
		t.Errorf("unknown = %v, want [PR-1/VR-9]", resp.Unknown)
	}
}

func TestParseDate(t *testing.T) {
	if _, err := parseDate("2026-03-11"); err != nil {
		t.Errorf("valid date rejected: %v", err)
	}
	if _, err := parseDate("11.03.2026"); err == nil {
		t.Error("invalid date accepted")
	}
	if _, err := parseDate(""); err == nil {
		t.Error("empty date accepted")
	}
}

func TestParsePrice(t *testing.T) {
	if _, err := parsePrice("599.99"); err != nil {
		t.Errorf("valid price rejected: %v", err)
	}
	if _, err := parsePrice("599.999"); err == nil {
		t.Error("price with three decimal places accepted")
	}
	if _, err := parsePrice("-1"); err == nil {
		t.Error("negative price accepted")
	}
	if _, err := parsePrice("abc"); err == nil {
		t.Error("non-numeric price accepted")
	}
}
