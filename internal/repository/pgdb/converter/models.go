package converter

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/usecase"
)

// VariantStockModel представляет запись таблицы variant_stocks в PostgreSQL.
type VariantStockModel struct {
	ProductID string             `db:"product_id"`
	VariantID string             `db:"variant_id"`
	Qty       int64              `db:"qty"`
	Price     decimal.Decimal    `db:"price"`
	Status    domain.StockStatus `db:"status"`
	CreatedAt time.Time          `db:"created_at"`
	UpdatedAt *time.Time         `db:"updated_at"`
}

// VariantModel представляет запись таблицы variants в PostgreSQL.
type VariantModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     string                  `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
