package converter

import "github.com/shopspring/decimal"

type StockInfoRedisModel struct {
	ProductID string          `json:"product_id"`
	VariantID string          `json:"variant_id"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
}
