package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
)

// ORDER USECASE

// OrderLineReq — одна строка корзины в запросе размещения.
type OrderLineReq struct {
	ProductID string
	VariantID string
	Qty       int64
}

// PlaceOrderReq — запрос на размещение заказа.
type PlaceOrderReq struct {
	Date  time.Time
	Lines []OrderLineReq
}

// SortDirection — направление сортировки групп в отчёте.
type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"
)

// FilterOrdersReq — запрос отчёта по заказам за диапазон календарных дат.
type FilterOrdersReq struct {
	DateFrom time.Time
	DateTo   time.Time
	Sort     SortDirection
}

type OrdersByDateReq struct {
	Date time.Time
}

// OrderRow — плоская строка отчёта из хранилища (до группировки).
type OrderRow struct {
	CreatedAt   time.Time
	ProductName string
	VariantName string
	Qty         int64
}

// OrderGroupRow — строка внутри дневной группы отчёта.
type OrderGroupRow struct {
	ProductName string
	VariantName string
	Qty         int64
}

// OrderGroup — заказы одной календарной даты.
type OrderGroup struct {
	OrderDate string
	Rows      []OrderGroupRow
}

// OrderLineInfo — расшифровка строки заказа для выдачи по дате.
type OrderLineInfo struct {
	ProductName string
	VariantName string
	Qty         int64
}

type OrderWithLines struct {
	ID    string
	Lines []OrderLineInfo
}

// STOCK USECASE

type GetStockReq struct {
	ProductID string
	VariantID string
}

// StockInfo — DTO складской записи для внешнего использования.
type StockInfo struct {
	ProductID string
	VariantID string
	Qty       int64
	Price     decimal.Decimal
}

// PRODUCT USECASE

// ProductDetailReq — вариант продукта с количеством и ценой.
type ProductDetailReq struct {
	VariantID string
	Qty       int64
	Price     decimal.Decimal
}

type CreateProductReq struct {
	Name    string
	Details []ProductDetailReq
}

type UpdateProductReq struct {
	ID      string
	Name    string
	Details []ProductDetailReq
}

// ProductDetailInfo — складская запись продукта с названием варианта.
type ProductDetailInfo struct {
	VariantID   string
	VariantName string
	Qty         int64
	Price       decimal.Decimal
}

type ProductWithDetails struct {
	ID      string
	Name    string
	Details []ProductDetailInfo
}

type VariantInfo struct {
	ID   string
	Name string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderPlaced OutboxEventType = "order.placed"
	OrderVoided OutboxEventType = "order.voided"
)

// OutboxEvent — событие транзакционного outbox, публикуется воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderPlacedEvent — полезная нагрузка события order.placed.
type OrderPlacedEvent struct {
	OrderID string           `json:"order_id"`
	Date    time.Time        `json:"date"`
	Lines   []OrderEventLine `json:"lines"`
}

// OrderVoidedEvent — полезная нагрузка события order.voided.
type OrderVoidedEvent struct {
	OrderID   string           `json:"order_id"`
	Restocked bool             `json:"restocked"`
	Lines     []OrderEventLine `json:"lines"`
}

type OrderEventLine struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Qty       int64  `json:"qty"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// ERRORS

// InsufficientStockError перечисляет все строки корзины с нехваткой остатка,
// чтобы вызывающая сторона могла показать каждую строку отдельно.
type InsufficientStockError struct {
	Shortages []domain.Shortage
}

func (err *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(err.Shortages))
	for _, s := range err.Shortages {
		parts = append(parts, fmt.Sprintf("%s/%s: requested %d, available %d",
			s.ProductID, s.VariantID, s.Requested, s.Available))
	}

	return fmt.Sprintf("%s: %s", e.ErrInsufficientStock, strings.Join(parts, "; "))
}

func (err *InsufficientStockError) Unwrap() error {
	return e.ErrInsufficientStock
}

// UnknownVariantError перечисляет ключи корзины без активной складской записи.
type UnknownVariantError struct {
	Keys []domain.StockKey
}

func (err *UnknownVariantError) Error() string {
	parts := make([]string, 0, len(err.Keys))
	for _, k := range err.Keys {
		parts = append(parts, fmt.Sprintf("%s/%s", k.ProductID, k.VariantID))
	}

	return fmt.Sprintf("%s: %s", e.ErrUnknownVariant, strings.Join(parts, "; "))
}

func (err *UnknownVariantError) Unwrap() error {
	return e.ErrUnknownVariant
}

// MAPPERS

func NewPlaceOrderReq(date time.Time, lines []OrderLineReq) *PlaceOrderReq {
	return &PlaceOrderReq{
		Date:  date,
		Lines: lines,
	}
}

func NewFilterOrdersReq(dateFrom, dateTo time.Time, sort SortDirection) *FilterOrdersReq {
	return &FilterOrdersReq{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Sort:     sort,
	}
}

func NewGetStockReq(productID, variantID string) *GetStockReq {
	return &GetStockReq{
		ProductID: productID,
		VariantID: variantID,
	}
}

func NewStockInfo(productID, variantID string, qty int64, price decimal.Decimal) StockInfo {
	return StockInfo{
		ProductID: productID,
		VariantID: variantID,
		Qty:       qty,
		Price:     price,
	}
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	}
}

func NewInsufficientStockError(shortages []domain.Shortage) *InsufficientStockError {
	return &InsufficientStockError{Shortages: shortages}
}

func NewUnknownVariantError(keys []domain.StockKey) *UnknownVariantError {
	return &UnknownVariantError{Keys: keys}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}

func toEventLines(lines []domain.OrderLine) []OrderEventLine {
	result := make([]OrderEventLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, OrderEventLine{
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Qty:       l.Qty,
		})
	}

	return result
}
