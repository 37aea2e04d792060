package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stokku/go-stock-backend/internal/cfg"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
)

// Mock StockRepository

type stockRow struct {
	qty     int64
	price   decimal.Decimal
	deleted bool
}

type mockStockRepo struct {
	mu   sync.Mutex
	rows map[domain.StockKey]stockRow
}

func newMockStockRepo() *mockStockRepo {
	return &mockStockRepo{rows: make(map[domain.StockKey]stockRow)}
}

func (m *mockStockRepo) put(productID, variantID string, qty int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[domain.StockKey{ProductID: productID, VariantID: variantID}] = stockRow{
		qty:   qty,
		price: decimal.NewFromInt(100),
	}
}

func (m *mockStockRepo) putDeleted(productID, variantID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[domain.StockKey{ProductID: productID, VariantID: variantID}] = stockRow{deleted: true}
}

func (m *mockStockRepo) qty(t *testing.T, productID, variantID string) int64 {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[domain.StockKey{ProductID: productID, VariantID: variantID}]
	if !ok {
		t.Fatalf("stock row %s/%s not found", productID, variantID)
	}
	return row.qty
}

func (m *mockStockRepo) GetStock(ctx context.Context, productID, variantID string) (*domain.VariantStock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.rows[domain.StockKey{ProductID: productID, VariantID: variantID}]
	if !ok || row.deleted {
		return nil, e.ErrStockNotFound
	}
	return &domain.VariantStock{
		ProductID: productID,
		VariantID: variantID,
		Qty:       row.qty,
		Price:     row.price,
		Status:    domain.StockStatusActive,
	}, nil
}

func (m *mockStockRepo) ReserveAll(ctx context.Context, lines []domain.OrderLine) ([]domain.Shortage, []domain.StockKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var shortages []domain.Shortage
	var unknown []domain.StockKey
	for _, l := range lines {
		key := domain.StockKey{ProductID: l.ProductID, VariantID: l.VariantID}
		row, ok := m.rows[key]
		if !ok || row.deleted {
			unknown = append(unknown, key)
			continue
		}
		if row.qty < l.Qty {
			shortages = append(shortages, domain.Shortage{
				ProductID: l.ProductID,
				VariantID: l.VariantID,
				Requested: l.Qty,
				Available: row.qty,
			})
		}
	}

	return shortages, unknown, nil
}

func (m *mockStockRepo) CommitReserved(ctx context.Context, lines []domain.OrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range lines {
		key := domain.StockKey{ProductID: l.ProductID, VariantID: l.VariantID}
		row := m.rows[key]
		if row.qty < l.Qty {
			return fmt.Errorf("commit without reserve: %s/%s", l.ProductID, l.VariantID)
		}
		row.qty -= l.Qty
		m.rows[key] = row
	}

	return nil
}

func (m *mockStockRepo) Restock(ctx context.Context, lines []domain.OrderLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range lines {
		key := domain.StockKey{ProductID: l.ProductID, VariantID: l.VariantID}
		row := m.rows[key]
		row.qty += l.Qty
		m.rows[key] = row
	}

	return nil
}

func (m *mockStockRepo) snapshot() map[domain.StockKey]stockRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := make(map[domain.StockKey]stockRow, len(m.rows))
	for k, v := range m.rows {
		snap[k] = v
	}
	return snap
}

func (m *mockStockRepo) restore(snap map[domain.StockKey]stockRow) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = snap
}

// Mock OrderRepository

type mockOrderRepo struct {
	mu         sync.Mutex
	orders     map[string]*domain.Order
	createErrs []error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepo) failNextCreate(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createErrs = append(m.createErrs, err)
}

func (m *mockOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.createErrs) > 0 {
		err := m.createErrs[0]
		m.createErrs = m.createErrs[1:]
		return err
	}

	cp := *order
	m.orders[order.ID] = &cp
	return nil
}

func (m *mockOrderRepo) SoftDelete(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := m.orders[orderID]
	if !ok || order.Status == domain.OrderStatusVoided {
		return nil, e.ErrOrderNotFound
	}
	order.Status = domain.OrderStatusVoided
	return order.Lines, nil
}

func (m *mockOrderRepo) GetOrderRows(ctx context.Context, dateFrom, dateTo time.Time, tzOffset time.Duration) ([]OrderRow, error) {
	return nil, nil
}

func (m *mockOrderRepo) ListByDate(ctx context.Context, date time.Time, tzOffset time.Duration) ([]OrderWithLines, error) {
	return nil, nil
}

func (m *mockOrderRepo) get(orderID string) *domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.orders[orderID]
}

func (m *mockOrderRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func (m *mockOrderRepo) snapshot() map[string]*domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := make(map[string]*domain.Order, len(m.orders))
	for k, v := range m.orders {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

func (m *mockOrderRepo) restore(snap map[string]*domain.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = snap
}

// Mock OutboxRepository

type mockOutboxRepo struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (m *mockOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (m *mockOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	return nil
}

func (m *mockOutboxRepo) types() []OutboxEventType {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]OutboxEventType, 0, len(m.events))
	for _, ev := range m.events {
		result = append(result, ev.EventType)
	}
	return result
}

func (m *mockOutboxRepo) snapshot() []*OutboxEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*OutboxEvent(nil), m.events...)
}

func (m *mockOutboxRepo) restore(snap []*OutboxEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = snap
}

// Mock CacheRepository

type mockCacheRepo struct {
	mu      sync.Mutex
	deleted []domain.StockKey
}

func (m *mockCacheRepo) GetStocks(ctx context.Context, keys []domain.StockKey) (map[domain.StockKey]StockInfo, error) {
	return map[domain.StockKey]StockInfo{}, nil
}

func (m *mockCacheRepo) SetStocks(ctx context.Context, stocks []StockInfo) error {
	return nil
}

func (m *mockCacheRepo) DeleteStocks(ctx context.Context, keys []domain.StockKey) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, keys...)
	return nil
}

// Mock Transactor: сериализует транзакции и откатывает моки при ошибке fn.

type mockTxm struct {
	mu     sync.Mutex
	stock  *mockStockRepo
	orders *mockOrderRepo
	outbox *mockOutboxRepo
}

func (m *mockTxm) WithinTransaction(ctx context.Context, _ pgx.TxOptions, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stockSnap := m.stock.snapshot()
	orderSnap := m.orders.snapshot()
	outboxSnap := m.outbox.snapshot()

	if err := fn(ctx); err != nil {
		m.stock.restore(stockSnap)
		m.orders.restore(orderSnap)
		m.outbox.restore(outboxSnap)
		return err
	}

	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type orderFixture struct {
	uc     *OrderUseCase
	stock  *mockStockRepo
	orders *mockOrderRepo
	outbox *mockOutboxRepo
	cache  *mockCacheRepo
}

func newOrderFixture(orderCfg *cfg.OrderCfg) *orderFixture {
	stock := newMockStockRepo()
	orders := newMockOrderRepo()
	outbox := &mockOutboxRepo{}
	cache := &mockCacheRepo{}
	txm := &mockTxm{stock: stock, orders: orders, outbox: outbox}

	return &orderFixture{
		uc:     NewOrderUC(stock, orders, outbox, cache, txm, nopLogger{}, orderCfg),
		stock:  stock,
		orders: orders,
		outbox: outbox,
		cache:  cache,
	}
}

func testOrderCfg() *cfg.OrderCfg {
	return &cfg.OrderCfg{
		TzOffset:      7 * time.Hour,
		RestockOnVoid: false,
		PlaceTimeout:  time.Second,
		MaxRetries:    0,
	}
}

func orderDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return date
}

func TestPlaceOrder_Success(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	orderID, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 2}},
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if orderID == "" {
		t.Fatal("expected non-empty order id")
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 3 {
		t.Errorf("expected stock 3, got %d", got)
	}

	order := f.orders.get(orderID)
	if order == nil {
		t.Fatal("order not persisted")
	}
	if order.Status != domain.OrderStatusPlaced {
		t.Errorf("expected placed status, got %s", order.Status)
	}
	if len(order.Lines) != 1 || order.Lines[0].Qty != 2 || order.Lines[0].OrderID != orderID {
		t.Errorf("unexpected order lines: %+v", order.Lines)
	}

	types := f.outbox.types()
	if len(types) != 1 || types[0] != OrderPlaced {
		t.Errorf("expected one order.placed outbox event, got %v", types)
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	f := newOrderFixture(testOrderCfg())

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{Date: orderDate(t, "2024-01-01")})
	if !errors.Is(err, e.ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got: %v", err)
	}
}

func TestPlaceOrder_DuplicateLine(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date: orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{
			{ProductID: "P1", VariantID: "V1", Qty: 2},
			{ProductID: "P1", VariantID: "V1", Qty: 1},
		},
	})
	if !errors.Is(err, e.ErrDuplicateLine) {
		t.Errorf("expected ErrDuplicateLine, got: %v", err)
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 5 {
		t.Errorf("stock must be unchanged, got %d", got)
	}
	if f.orders.count() != 0 {
		t.Error("no order must be created")
	}
}

func TestPlaceOrder_NonPositiveQty(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 0}},
	})
	if !errors.Is(err, e.ErrQtyMustBePositive) {
		t.Errorf("expected ErrQtyMustBePositive, got: %v", err)
	}
}

func TestPlaceOrder_UnknownVariant(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)
	f.stock.putDeleted("P1", "V2")

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date: orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{
			{ProductID: "P1", VariantID: "V1", Qty: 1},
			{ProductID: "P1", VariantID: "V2", Qty: 1},
			{ProductID: "P9", VariantID: "V9", Qty: 1},
		},
	})
	if !errors.Is(err, e.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got: %v", err)
	}

	var unknownErr *UnknownVariantError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownVariantError, got: %T", err)
	}
	if len(unknownErr.Keys) != 2 {
		t.Errorf("expected both bad keys reported, got %+v", unknownErr.Keys)
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 5 {
		t.Errorf("stock must be unchanged, got %d", got)
	}
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 10}},
	})
	if !errors.Is(err, e.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got: %v", err)
	}

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got: %T", err)
	}
	if len(stockErr.Shortages) != 1 {
		t.Fatalf("expected one shortage, got %+v", stockErr.Shortages)
	}
	short := stockErr.Shortages[0]
	if short.ProductID != "P1" || short.VariantID != "V1" || short.Requested != 10 || short.Available != 5 {
		t.Errorf("unexpected shortage detail: %+v", short)
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 5 {
		t.Errorf("stock must be unchanged, got %d", got)
	}
	if f.orders.count() != 0 {
		t.Error("no order must be created")
	}
}

// Перечисляются все нехватки батча, а не только первая.
func TestPlaceOrder_InsufficientStock_AllLinesReported(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 1)
	f.stock.put("P1", "V2", 2)
	f.stock.put("P2", "V1", 100)

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date: orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{
			{ProductID: "P1", VariantID: "V1", Qty: 5},
			{ProductID: "P1", VariantID: "V2", Qty: 5},
			{ProductID: "P2", VariantID: "V1", Qty: 5},
		},
	})

	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got: %v", err)
	}
	if len(stockErr.Shortages) != 2 {
		t.Errorf("expected 2 shortages, got %+v", stockErr.Shortages)
	}

	if got := f.stock.qty(t, "P2", "V1"); got != 100 {
		t.Errorf("untouched line must not be decremented, got %d", got)
	}
}

func TestPlaceOrder_Concurrent(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	var successCount atomic.Int32
	var shortCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
				Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
				Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 3}},
			})
			switch {
			case err == nil:
				successCount.Add(1)
			case errors.Is(err, e.ErrInsufficientStock):
				shortCount.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("expected exactly one success, got %d", successCount.Load())
	}
	if shortCount.Load() != 1 {
		t.Errorf("expected exactly one insufficient stock, got %d", shortCount.Load())
	}
	if got := f.stock.qty(t, "P1", "V1"); got != 2 {
		t.Errorf("expected final stock 2, got %d", got)
	}
}

func TestPlaceOrder_PersistenceFailureLeavesNoTrace(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)
	f.orders.failNextCreate(fmt.Errorf("connection refused"))

	_, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 2}},
	})
	if !errors.Is(err, e.ErrPersistenceFailure) {
		t.Fatalf("expected ErrPersistenceFailure, got: %v", err)
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 5 {
		t.Errorf("decrement must be rolled back, got %d", got)
	}
	if f.orders.count() != 0 {
		t.Error("no order must survive a failed transaction")
	}
	if len(f.outbox.types()) != 0 {
		t.Error("no outbox event must survive a failed transaction")
	}
}

func TestPlaceOrder_RetriesTransientFailure(t *testing.T) {
	orderCfg := testOrderCfg()
	orderCfg.MaxRetries = 2

	f := newOrderFixture(orderCfg)
	f.stock.put("P1", "V1", 5)
	f.orders.failNextCreate(fmt.Errorf("i/o timeout"))

	orderID, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 2}},
	})
	if err != nil {
		t.Fatalf("expected success after retry, got: %v", err)
	}

	if f.orders.get(orderID) == nil {
		t.Error("order not persisted after retry")
	}
	if got := f.stock.qty(t, "P1", "V1"); got != 3 {
		t.Errorf("expected stock decremented exactly once, got %d", got)
	}
}

func TestVoidOrder_NoRestockByDefault(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	orderID, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 2}},
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := f.uc.VoidOrder(context.Background(), orderID); err != nil {
		t.Fatalf("void failed: %v", err)
	}

	if got := f.orders.get(orderID).Status; got != domain.OrderStatusVoided {
		t.Errorf("expected voided status, got %s", got)
	}
	// Аннулирование намеренно не возвращает остатки
	if got := f.stock.qty(t, "P1", "V1"); got != 3 {
		t.Errorf("expected stock to stay at 3, got %d", got)
	}

	types := f.outbox.types()
	if len(types) != 2 || types[1] != OrderVoided {
		t.Errorf("expected order.voided outbox event, got %v", types)
	}
}

func TestVoidOrder_RestockPolicy(t *testing.T) {
	orderCfg := testOrderCfg()
	orderCfg.RestockOnVoid = true

	f := newOrderFixture(orderCfg)
	f.stock.put("P1", "V1", 5)

	orderID, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 2}},
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := f.uc.VoidOrder(context.Background(), orderID); err != nil {
		t.Fatalf("void failed: %v", err)
	}

	if got := f.stock.qty(t, "P1", "V1"); got != 5 {
		t.Errorf("expected stock restored to 5, got %d", got)
	}
}

func TestVoidOrder_NotFound(t *testing.T) {
	f := newOrderFixture(testOrderCfg())

	err := f.uc.VoidOrder(context.Background(), "no-such-order")
	if !errors.Is(err, e.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got: %v", err)
	}
}

func TestVoidOrder_Twice(t *testing.T) {
	f := newOrderFixture(testOrderCfg())
	f.stock.put("P1", "V1", 5)

	orderID, err := f.uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		Date:  orderDate(t, "2024-01-01"),
		Lines: []OrderLineReq{{ProductID: "P1", VariantID: "V1", Qty: 1}},
	})
	if err != nil {
		t.Fatalf("place failed: %v", err)
	}

	if err := f.uc.VoidOrder(context.Background(), orderID); err != nil {
		t.Fatalf("first void failed: %v", err)
	}
	if err := f.uc.VoidOrder(context.Background(), orderID); !errors.Is(err, e.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound on second void, got: %v", err)
	}
}

func TestFilterOrders_InvalidSort(t *testing.T) {
	f := newOrderFixture(testOrderCfg())

	_, err := f.uc.FilterOrders(context.Background(), &FilterOrdersReq{
		DateFrom: orderDate(t, "2024-01-01"),
		DateTo:   orderDate(t, "2024-01-02"),
		Sort:     "SIDEWAYS",
	})
	if !errors.Is(err, e.ErrInvalidSort) {
		t.Errorf("expected ErrInvalidSort, got: %v", err)
	}
}

func TestFilterOrders_InvalidRange(t *testing.T) {
	f := newOrderFixture(testOrderCfg())

	_, err := f.uc.FilterOrders(context.Background(), &FilterOrdersReq{
		DateFrom: orderDate(t, "2024-02-01"),
		DateTo:   orderDate(t, "2024-01-01"),
		Sort:     SortAsc,
	})
	if !errors.Is(err, e.ErrInvalidDateRange) {
		t.Errorf("expected ErrInvalidDateRange, got: %v", err)
	}
}
