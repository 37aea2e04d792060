package domain

import "time"

// Product описывает продукт
type Product struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewProduct(id, name string) *Product {
	return &Product{
		ID:   id,
		Name: name,
	}
}
