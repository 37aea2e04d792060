//go:generate goverter gen github.com/stokku/go-stock-backend/internal/repository/redis/converter

package converter

import (
	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertDecimal
type StockInfoConverter interface {
	ToRedisModel(entity *usecase.StockInfo) *StockInfoRedisModel
	ToUseCase(model *StockInfoRedisModel) *usecase.StockInfo
	ToArrRedisModel(entities []usecase.StockInfo) []StockInfoRedisModel
	ToArrUseCase(models []StockInfoRedisModel) []usecase.StockInfo
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}
