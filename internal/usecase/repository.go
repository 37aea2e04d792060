package usecase

import (
	"context"
	"time"

	"github.com/stokku/go-stock-backend/internal/domain"
)

// StockRepository — леджер остатков: единственный легальный путь мутации qty.
// ReserveAll и CommitReserved обязаны вызываться внутри одной транзакции
// (pkg/tr), взятые блокировки строк изолируют check-then-decrement
// от конкурентных размещений.
type StockRepository interface {
	// GetStock возвращает активную складскую запись или e.ErrStockNotFound.
	GetStock(ctx context.Context, productID, variantID string) (*domain.VariantStock, error)
	// ReserveAll блокирует все строки батча и сверяет запрошенные количества
	// с остатками на одном снимке. Возвращает ВСЕ нехватки и все неизвестные
	// (или мягко удалённые) ключи; ничего не мутирует.
	ReserveAll(ctx context.Context, lines []domain.OrderLine) (shortages []domain.Shortage, unknown []domain.StockKey, err error)
	// CommitReserved списывает зарезервированные количества. Вызывается только
	// после успешного ReserveAll в той же транзакции.
	CommitReserved(ctx context.Context, lines []domain.OrderLine) error
	// Restock возвращает количества на склад (политика restock-on-void).
	Restock(ctx context.Context, lines []domain.OrderLine) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// SoftDelete переводит заказ в статус voided и возвращает его строки.
	// Возвращает e.ErrOrderNotFound, если заказ не существует или уже аннулирован.
	SoftDelete(ctx context.Context, orderID string) ([]domain.OrderLine, error)
	// GetOrderRows возвращает плоские строки отчёта (дата, продукт, вариант,
	// суммарное количество) по неаннулированным заказам в диапазоне дат.
	// Диапазон интерпретируется в календарных датах со сдвигом tzOffset.
	GetOrderRows(ctx context.Context, dateFrom, dateTo time.Time, tzOffset time.Duration) ([]OrderRow, error)
	// ListByDate возвращает заказы одной календарной даты с расшифровкой строк.
	ListByDate(ctx context.Context, date time.Time, tzOffset time.Duration) ([]OrderWithLines, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product, details []domain.VariantStock) error
	// Update переименовывает продукт и приводит набор складских записей к
	// заданному: новые создаются, существующие обновляются, отсутствующие
	// мягко удаляются (история для прошлых заказов сохраняется).
	Update(ctx context.Context, product *domain.Product, details []domain.VariantStock) error
	// Delete жёстко удаляет продукт вместе со складскими записями.
	// Возвращает e.ErrProductHasActiveStock, если активные записи ещё есть.
	Delete(ctx context.Context, productID string) error
	GetAll(ctx context.Context) ([]ProductWithDetails, error)
}

type VariantRepository interface {
	GetAll(ctx context.Context) ([]domain.Variant, error)
	Create(ctx context.Context, variant *domain.Variant) (*domain.Variant, error)
}

type CacheRepository interface {
	// GetStocks возвращает закэшированные остатки, промахи отсутствуют в мапе.
	GetStocks(ctx context.Context, keys []domain.StockKey) (map[domain.StockKey]StockInfo, error)
	SetStocks(ctx context.Context, stocks []StockInfo) error
	DeleteStocks(ctx context.Context, keys []domain.StockKey) error
}
