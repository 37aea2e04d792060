package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockStatus — состояние складской записи.
// Статус вместо булевого флага, чтобы добавлять состояния без смены схемы.
type StockStatus string

const (
	StockStatusActive  StockStatus = "active"
	StockStatusDeleted StockStatus = "deleted"
)

// VariantStock — остаток по паре (продукт, вариант): составная идентичность,
// количество на складе и цена за единицу. Количество меняется только через
// леджер остатков, инвариант qty >= 0 держит и приложение, и схема БД.
type VariantStock struct {
	ProductID string
	VariantID string
	Qty       int64
	Price     decimal.Decimal
	Status    StockStatus
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewVariantStock(productID, variantID string, qty int64, price decimal.Decimal) *VariantStock {
	return &VariantStock{
		ProductID: productID,
		VariantID: variantID,
		Qty:       qty,
		Price:     price,
		Status:    StockStatusActive,
	}
}

// StockKey — составной ключ складской записи.
type StockKey struct {
	ProductID string
	VariantID string
}

// Shortage описывает нехватку остатка по одной строке заказа.
type Shortage struct {
	ProductID string
	VariantID string
	Requested int64
	Available int64
}
