//go:generate goverter gen github.com/stokku/go-stock-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/usecase"
)

// StockConverter преобразует сущности VariantStock между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertStockStatus
type StockConverter interface {
	ToModel(entity *domain.VariantStock) *VariantStockModel
	ToEntity(model *VariantStockModel) *domain.VariantStock
}

// VariantConverter преобразует сущности Variant между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
type VariantConverter interface {
	ToModel(entity *domain.Variant) *VariantModel
	ToEntity(model *VariantModel) *domain.Variant
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertDecimal(d decimal.Decimal) decimal.Decimal {
	return d
}

func ConvertStockStatus(s domain.StockStatus) domain.StockStatus {
	return s
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
