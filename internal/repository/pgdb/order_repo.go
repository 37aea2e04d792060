package pgdb

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/tr"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

const reportDateLayout = "2006-01-02"

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create пишет заказ и его строки в рамках внешней транзакции.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	orderQuery := `
		INSERT INTO orders (id, status, created_at)
		VALUES ($1, $2, $3)
	`

	if _, err := tx.Exec(ctx, orderQuery, order.ID, order.Status, order.CreatedAt); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	lineQuery := `
		INSERT INTO order_lines (order_id, product_id, variant_id, qty)
		VALUES ($1, $2, $3, $4)
	`

	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, lineQuery, order.ID, line.ProductID, line.VariantID, line.Qty); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

// SoftDelete переводит размещённый заказ в статус voided и возвращает его
// строки. Повторное аннулирование и неизвестный id неразличимы: оба дают
// e.ErrOrderNotFound.
func (o *OrderRepo) SoftDelete(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	voidQuery := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := tx.Exec(ctx, voidQuery, domain.OrderStatusVoided, orderID, domain.OrderStatusPlaced)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	linesQuery := `
		SELECT order_id, product_id, variant_id, qty
		FROM order_lines
		WHERE order_id = $1
	`

	rows, err := tx.Query(ctx, linesQuery, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.OrderID, &line.ProductID, &line.VariantID, &line.Qty); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return lines, nil
}

// GetOrderRows возвращает плоские строки отчёта по неаннулированным заказам.
// Суммирование идёт по календарной дате со сдвигом tzOffset; дата скана
// нормализуется обратно в UTC, чтобы группировщик восстановил её тем же
// сдвигом. AT TIME ZONE 'UTC' переводит метку в наивное UTC-время до взятия
// даты: иначе каст ::date добавил бы второй сдвиг по session TimeZone.
func (o *OrderRepo) GetOrderRows(ctx context.Context, dateFrom, dateTo time.Time, tzOffset time.Duration) ([]usecase.OrderRow, error) {
	query := `
		SELECT
			(o.created_at AT TIME ZONE 'UTC' + make_interval(secs => $3))::date AS order_date,
			p.name,
			v.name,
			SUM(l.qty)::bigint
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		JOIN products p ON p.id = l.product_id
		JOIN variants v ON v.id = l.variant_id
		WHERE o.status = 'placed'
		  AND (o.created_at AT TIME ZONE 'UTC' + make_interval(secs => $3))::date BETWEEN $1::date AND $2::date
		GROUP BY order_date, p.name, v.name
		ORDER BY order_date, MIN(o.created_at), p.name, v.name
	`

	rows, err := o.pool.Query(ctx, query,
		dateFrom.UTC().Format(reportDateLayout), dateTo.UTC().Format(reportDateLayout), tzOffset.Seconds())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.OrderRow, 0)
	for rows.Next() {
		var row usecase.OrderRow
		var orderDate time.Time
		if err := rows.Scan(&orderDate, &row.ProductName, &row.VariantName, &row.Qty); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		row.CreatedAt = orderDate.UTC().Add(-tzOffset)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// ListByDate возвращает заказы одной календарной даты с расшифровкой строк.
func (o *OrderRepo) ListByDate(ctx context.Context, date time.Time, tzOffset time.Duration) ([]usecase.OrderWithLines, error) {
	query := `
		SELECT o.id, p.name, v.name, l.qty
		FROM orders o
		JOIN order_lines l ON l.order_id = o.id
		JOIN products p ON p.id = l.product_id
		JOIN variants v ON v.id = l.variant_id
		WHERE o.status = 'placed'
		  AND (o.created_at AT TIME ZONE 'UTC' + make_interval(secs => $2))::date = $1::date
		ORDER BY o.created_at, o.id
	`

	rows, err := o.pool.Query(ctx, query, date.UTC().Format(reportDateLayout), tzOffset.Seconds())
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	byID := make(map[string]int)
	result := make([]usecase.OrderWithLines, 0)
	for rows.Next() {
		var orderID string
		var line usecase.OrderLineInfo
		if err := rows.Scan(&orderID, &line.ProductName, &line.VariantName, &line.Qty); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		idx, ok := byID[orderID]
		if !ok {
			idx = len(result)
			byID[orderID] = idx
			result = append(result, usecase.OrderWithLines{ID: orderID})
		}

		result[idx].Lines = append(result[idx].Lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
