package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки с конфигурацией
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// 400 Bad Request — валидация корзины
	ErrEmptyCart         = fmt.Errorf("cart must contain at least one line")
	ErrDuplicateLine     = fmt.Errorf("duplicate product/variant line in cart")
	ErrQtyMustBePositive = fmt.Errorf("quantity must be positive")
	ErrUnknownVariant    = fmt.Errorf("unknown product/variant stock entry")
	ErrInvalidOrderDate  = fmt.Errorf("invalid order date")
	ErrInvalidDateRange  = fmt.Errorf("invalid date range")
	ErrInvalidSort       = fmt.Errorf("sort must be ASC or DESC")

	// 400 Bad Request — валидация продуктов и вариантов
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrVariantNameRequired = fmt.Errorf("variant name is required")
	ErrNoVariantDetails    = fmt.Errorf("product must have at least one variant detail")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrMissingFields       = fmt.Errorf("missing required fields")

	// 404 Not Found
	ErrStockNotFound   = fmt.Errorf("stock entry not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrInsufficientStock         = fmt.Errorf("insufficient stock")
	ErrProductHasActiveStock     = fmt.Errorf("product still has active stock entries")
	ErrProductReferencedByOrders = fmt.Errorf("product is referenced by existing orders")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
	ErrPersistenceFailure  = fmt.Errorf("persistence failure")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
