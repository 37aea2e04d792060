package domain

import "time"

// OrderStatus — состояние заказа.
type OrderStatus string

const (
	OrderStatusPlaced OrderStatus = "placed"
	OrderStatusVoided OrderStatus = "voided"
)

// Order — размещённый заказ. После создания неизменяем,
// кроме перевода в статус voided (аннулирование).
type Order struct {
	ID        string
	CreatedAt time.Time
	Status    OrderStatus
	Lines     []OrderLine
}

// OrderLine — строка заказа, ссылается на складскую запись по составному ключу.
type OrderLine struct {
	OrderID   string
	ProductID string
	VariantID string
	Qty       int64
}

func NewOrder(id string, createdAt time.Time, lines []OrderLine) *Order {
	return &Order{
		ID:        id,
		CreatedAt: createdAt,
		Status:    OrderStatusPlaced,
		Lines:     lines,
	}
}
