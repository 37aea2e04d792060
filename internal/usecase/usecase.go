package usecase

import (
	"context"
)

// OrderUC — движок размещения и чтения заказов.
type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (string, error)
	VoidOrder(ctx context.Context, orderID string) error
	FilterOrders(ctx context.Context, req *FilterOrdersReq) ([]OrderGroup, error)
	ListOrdersByDate(ctx context.Context, req *OrdersByDateReq) ([]OrderWithLines, error)
}

// StockUC — чтение остатков.
type StockUC interface {
	GetStock(ctx context.Context, req *GetStockReq) (*StockInfo, error)
}

// ProductUC — управление продуктами и их вариантами.
type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (string, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) error
	DeleteProduct(ctx context.Context, productID string) error
	GetProducts(ctx context.Context) ([]ProductWithDetails, error)
}

// VariantUC — справочник вариантов.
type VariantUC interface {
	ListVariants(ctx context.Context) ([]VariantInfo, error)
	CreateVariant(ctx context.Context, name string) (string, error)
}
