package pgdb

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/tr"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

func NewProductRepo(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create пишет продукт и его складские записи в рамках внешней транзакции.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product, details []domain.VariantStock) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (id, name)
		VALUES ($1, $2)
	`

	if _, err := tx.Exec(ctx, query, product.ID, product.Name); err != nil {
		if postgresDuplicate(err) {
			return fmt.Errorf("%s: product %s already exists", whereami.WhereAmI(), product.ID)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.upsertDetails(ctx, product.ID, details)
}

// Update переименовывает продукт и приводит набор складских записей к
// заданному: новые создаются, существующие обновляются (с реактивацией
// мягко удалённых), отсутствующие в наборе мягко удаляются. История
// ссылок из прошлых заказов при этом сохраняется.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product, details []domain.VariantStock) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	renameQuery := `
		UPDATE products
		SET name = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := tx.Exec(ctx, renameQuery, product.ID, product.Name)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	keep := make([]string, 0, len(details))
	for _, detail := range details {
		keep = append(keep, detail.VariantID)
	}

	retireQuery := `
		UPDATE variant_stocks
		SET status = 'deleted', updated_at = NOW()
		WHERE product_id = $1 AND status = 'active' AND variant_id <> ALL($2)
	`

	if _, err := tx.Exec(ctx, retireQuery, product.ID, keep); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return p.upsertDetails(ctx, product.ID, details)
}

// Delete жёстко удаляет продукт вместе со складскими записями. Удаление
// блокируется любой активной записью, даже с нулевым остатком, и записями,
// на которые ссылаются строки прошлых заказов.
func (p *ProductRepo) Delete(ctx context.Context, productID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	guardQuery := `
		SELECT COUNT(*)
		FROM variant_stocks
		WHERE product_id = $1 AND status = 'active'
	`

	var activeCount int64
	if err := tx.QueryRow(ctx, guardQuery, productID).Scan(&activeCount); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if activeCount > 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductHasActiveStock)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM variant_stocks WHERE product_id = $1`, productID); err != nil {
		if foreignKeyViolation(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductReferencedByOrders)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// GetAll возвращает продукты с активными складскими записями. Продукты без
// активных записей тоже попадают в выдачу, с пустой расшифровкой.
func (p *ProductRepo) GetAll(ctx context.Context) ([]usecase.ProductWithDetails, error) {
	query := `
		SELECT p.id, p.name, s.variant_id, v.name, s.qty, s.price
		FROM products p
		LEFT JOIN variant_stocks s ON s.product_id = p.id AND s.status = 'active'
		LEFT JOIN variants v ON v.id = s.variant_id
		ORDER BY p.created_at, p.id, s.created_at
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	byID := make(map[string]int)
	result := make([]usecase.ProductWithDetails, 0)
	for rows.Next() {
		var productID, productName string
		var detail usecase.ProductDetailInfo
		var variantID, variantName *string
		var qty *int64
		var price decimal.NullDecimal

		if err := rows.Scan(&productID, &productName, &variantID, &variantName, &qty, &price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		idx, ok := byID[productID]
		if !ok {
			idx = len(result)
			byID[productID] = idx
			result = append(result, usecase.ProductWithDetails{ID: productID, Name: productName})
		}

		// LEFT JOIN отдаёт NULL-строку для продукта без активных записей
		if variantID == nil {
			continue
		}

		detail.VariantID = *variantID
		if variantName != nil {
			detail.VariantName = *variantName
		}
		if qty != nil {
			detail.Qty = *qty
		}
		if price.Valid {
			detail.Price = price.Decimal
		}

		result[idx].Details = append(result[idx].Details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) upsertDetails(ctx context.Context, productID string, details []domain.VariantStock) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO variant_stocks (product_id, variant_id, qty, price, status)
		VALUES ($1, $2, $3, $4, 'active')
		ON CONFLICT (product_id, variant_id)
		DO UPDATE SET
			qty = EXCLUDED.qty,
			price = EXCLUDED.price,
			status = 'active',
			updated_at = NOW()
	`

	for _, detail := range details {
		if _, err := tx.Exec(ctx, query, productID, detail.VariantID, detail.Qty, detail.Price); err != nil {
			if foreignKeyViolation(err) {
				return e.Wrap(whereami.WhereAmI(), e.ErrUnknownVariant)
			}

			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
