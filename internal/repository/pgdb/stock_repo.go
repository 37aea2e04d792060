package pgdb

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/repository/pgdb/converter"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/tr"
)

// StockRepo реализует леджер остатков поверх PostgreSQL.
type StockRepo struct {
	pool *pgxpool.Pool
	conv converter.StockConverter
}

func NewStockRepo(pool *pgxpool.Pool, conv converter.StockConverter) *StockRepo {
	return &StockRepo{
		pool: pool,
		conv: conv,
	}
}

// GetStock возвращает активную складскую запись пары продукт/вариант.
func (s *StockRepo) GetStock(ctx context.Context, productID, variantID string) (*domain.VariantStock, error) {
	query := `
		SELECT product_id, variant_id, qty, price, status, created_at, updated_at
		FROM variant_stocks
		WHERE product_id = $1 AND variant_id = $2 AND status = 'active'
	`

	var model converter.VariantStockModel
	err := s.pool.QueryRow(ctx, query, productID, variantID).
		Scan(
			&model.ProductID, &model.VariantID, &model.Qty, &model.Price,
			&model.Status, &model.CreatedAt, &model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStockNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(&model), nil
}

// ReserveAll берёт блокировку FOR UPDATE на каждую строку батча и сверяет
// запрошенные количества с остатками. Строки обходятся в детерминированном
// порядке ключей, чтобы конкурентные заказы с пересекающимися корзинами
// не взаимоблокировались. Сами остатки не мутируются.
func (s *StockRepo) ReserveAll(ctx context.Context, lines []domain.OrderLine) ([]domain.Shortage, []domain.StockKey, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, nil, e.Wrap(whereami.WhereAmI(), err)
	}

	ordered := make([]domain.OrderLine, len(lines))
	copy(ordered, lines)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ProductID != ordered[j].ProductID {
			return ordered[i].ProductID < ordered[j].ProductID
		}
		return ordered[i].VariantID < ordered[j].VariantID
	})

	query := `
		SELECT qty
		FROM variant_stocks
		WHERE product_id = $1 AND variant_id = $2 AND status = 'active'
		FOR UPDATE
	`

	var shortages []domain.Shortage
	var unknown []domain.StockKey
	for _, line := range ordered {
		var available int64
		err := tx.QueryRow(ctx, query, line.ProductID, line.VariantID).Scan(&available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				unknown = append(unknown, domain.StockKey{
					ProductID: line.ProductID,
					VariantID: line.VariantID,
				})
				continue
			}

			return nil, nil, e.Wrap(whereami.WhereAmI(), err)
		}

		if available < line.Qty {
			shortages = append(shortages, domain.Shortage{
				ProductID: line.ProductID,
				VariantID: line.VariantID,
				Requested: line.Qty,
				Available: available,
			})
		}
	}

	return shortages, unknown, nil
}

// CommitReserved списывает количества. Страховочный предикат qty >= $3
// дублирует проверку ReserveAll на случай вызова вне её блокировок.
func (s *StockRepo) CommitReserved(ctx context.Context, lines []domain.OrderLine) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE variant_stocks
		SET qty = qty - $3, updated_at = NOW()
		WHERE product_id = $1 AND variant_id = $2 AND status = 'active' AND qty >= $3
	`

	for _, line := range lines {
		result, err := tx.Exec(ctx, query, line.ProductID, line.VariantID, line.Qty)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if result.RowsAffected() == 0 {
			return e.Wrap(whereami.WhereAmI(), e.ErrInsufficientStock)
		}
	}

	return nil
}

// Restock возвращает количества на склад при аннулировании заказа.
// Мягко удалённые записи пропускаются: возвращать некуда.
func (s *StockRepo) Restock(ctx context.Context, lines []domain.OrderLine) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE variant_stocks
		SET qty = qty + $3, updated_at = NOW()
		WHERE product_id = $1 AND variant_id = $2 AND status = 'active'
	`

	for _, line := range lines {
		if _, err := tx.Exec(ctx, query, line.ProductID, line.VariantID, line.Qty); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}
