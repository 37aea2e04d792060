package domain

import "time"

// Variant описывает вариант исполнения продукта (размер, цвет и т.п.).
// Неизменяем после создания.
type Variant struct {
	ID        string
	Name      string
	CreatedAt time.Time
}

func NewVariant(id, name string) *Variant {
	return &Variant{
		ID:   id,
		Name: name,
	}
}
