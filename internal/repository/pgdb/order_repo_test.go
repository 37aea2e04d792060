package pgdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
)

func (env *testEnv) seedOrder(t *testing.T, createdAt time.Time, lines []domain.OrderLine) string {
	t.Helper()

	orderID := uuid.NewString()
	err := env.txm.WithinTransaction(context.Background(), pgx.TxOptions{}, func(ctx context.Context) error {
		return env.orderRepo.Create(ctx, domain.NewOrder(orderID, createdAt, lines))
	})
	if err != nil {
		t.Fatalf("seed order: %v", err)
	}

	t.Cleanup(func() {
		env.pool.Exec(context.Background(), `DELETE FROM order_lines WHERE order_id = $1`, orderID)
		env.pool.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, orderID)
	})

	return orderID
}

func TestOrderRepo_SoftDelete(t *testing.T) {
	env := setupTestEnv(t)
	productID, variantID := env.seedStock(t, 10)

	orderID := env.seedOrder(t, time.Now().UTC(), []domain.OrderLine{
		{ProductID: productID, VariantID: variantID, Qty: 3},
	})

	var lines []domain.OrderLine
	err := env.txm.WithinTransaction(context.Background(), pgx.TxOptions{}, func(ctx context.Context) error {
		var err error
		lines, err = env.orderRepo.SoftDelete(ctx, orderID)
		return err
	})
	if err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if len(lines) != 1 || lines[0].Qty != 3 {
		t.Errorf("lines = %v, want one line with qty 3", lines)
	}

	// Повторное аннулирование неотличимо от неизвестного заказа
	err = env.txm.WithinTransaction(context.Background(), pgx.TxOptions{}, func(ctx context.Context) error {
		_, err := env.orderRepo.SoftDelete(ctx, orderID)
		return err
	})
	if !errors.Is(err, e.ErrOrderNotFound) {
		t.Errorf("second void err = %v, want ErrOrderNotFound", err)
	}
}

func TestOrderRepo_GetOrderRows_GroupsByShiftedDate(t *testing.T) {
	env := setupTestEnv(t)
	productID, variantID := env.seedStock(t, 100)

	// 23:30 UTC со сдвигом +7 часов попадает на следующую календарную дату
	lateEvening := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	morning := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	env.seedOrder(t, lateEvening, []domain.OrderLine{{ProductID: productID, VariantID: variantID, Qty: 2}})
	env.seedOrder(t, morning, []domain.OrderLine{{ProductID: productID, VariantID: variantID, Qty: 5}})

	tzOffset := 7 * time.Hour
	dateFrom := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	dateTo := dateFrom

	rows, err := env.orderRepo.GetOrderRows(context.Background(), dateFrom, dateTo, tzOffset)
	if err != nil {
		t.Fatalf("GetOrderRows: %v", err)
	}

	var total int64
	for _, row := range rows {
		got := row.CreatedAt.Add(tzOffset).UTC().Format("2006-01-02")
		if got != "2026-03-11" {
			t.Errorf("row date = %s, want 2026-03-11", got)
		}
		total += row.Qty
	}

	// Суммируются оба заказа: поздний вечерний перетекает через сдвиг
	if total != 7 {
		t.Errorf("total qty = %d, want 7", total)
	}
}

// Отчёт строится поверх соединения с не-UTC session TimeZone: взятие даты
// не должно зависеть от часового пояса сервера, только от настроенного
// сдвига.
func TestOrderRepo_GetOrderRows_IgnoresSessionTimeZone(t *testing.T) {
	env := setupTestEnv(t)
	productID, variantID := env.seedStock(t, 100)

	lateEvening := time.Date(2026, 5, 20, 23, 30, 0, 0, time.UTC)
	env.seedOrder(t, lateEvening, []domain.OrderLine{{ProductID: productID, VariantID: variantID, Qty: 4}})

	poolCfg, err := pgxpool.ParseConfig(testDSN())
	if err != nil {
		t.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["TimeZone"] = "America/Anchorage"

	shiftedPool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		t.Fatalf("connect with shifted timezone: %v", err)
	}
	t.Cleanup(shiftedPool.Close)

	repo := NewOrderRepo(shiftedPool)
	tzOffset := 7 * time.Hour
	reportDate := time.Date(2026, 5, 21, 0, 0, 0, 0, time.UTC)

	rows, err := repo.GetOrderRows(context.Background(), reportDate, reportDate, tzOffset)
	if err != nil {
		t.Fatalf("GetOrderRows: %v", err)
	}

	var total int64
	for _, row := range rows {
		got := row.CreatedAt.Add(tzOffset).UTC().Format("2006-01-02")
		if got != "2026-05-21" {
			t.Errorf("row date = %s, want 2026-05-21", got)
		}
		total += row.Qty
	}
	if total != 4 {
		t.Errorf("total qty = %d, want 4", total)
	}
}

func TestOrderRepo_ListByDate_ExcludesVoided(t *testing.T) {
	env := setupTestEnv(t)
	productID, variantID := env.seedStock(t, 100)

	date := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)
	keptID := env.seedOrder(t, date, []domain.OrderLine{{ProductID: productID, VariantID: variantID, Qty: 1}})
	voidedID := env.seedOrder(t, date, []domain.OrderLine{{ProductID: productID, VariantID: variantID, Qty: 2}})

	err := env.txm.WithinTransaction(context.Background(), pgx.TxOptions{}, func(ctx context.Context) error {
		_, err := env.orderRepo.SoftDelete(ctx, voidedID)
		return err
	})
	if err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	orders, err := env.orderRepo.ListByDate(context.Background(), time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), 0)
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}

	var foundKept, foundVoided bool
	for _, order := range orders {
		if order.ID == keptID {
			foundKept = true
		}
		if order.ID == voidedID {
			foundVoided = true
		}
	}

	if !foundKept {
		t.Errorf("placed order %s missing from listing", keptID)
	}
	if foundVoided {
		t.Errorf("voided order %s must not be listed", voidedID)
	}
}
