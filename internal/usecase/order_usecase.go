package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stokku/go-stock-backend/internal/cfg"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/jitter"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

// OrderUseCase реализует движок размещения заказов: валидация корзины,
// резервирование остатков и фиксация заказа в одной транзакции.
type OrderUseCase struct {
	stockRepo  StockRepository
	orderRepo  OrderRepository
	outboxRepo OutboxRepository
	cacheRepo  CacheRepository
	txm        Transactor
	logger     logger.Logger
	cfg        *cfg.OrderCfg
}

func NewOrderUC(
	stockRepo StockRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	txm Transactor,
	logger logger.Logger,
	cfg *cfg.OrderCfg,
) *OrderUseCase {
	return &OrderUseCase{
		stockRepo:  stockRepo,
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
		cacheRepo:  cacheRepo,
		txm:        txm,
		logger:     logger,
		cfg:        cfg,
	}
}

// PlaceOrder размещает заказ: проверяет корзину, резервирует остатки и в одной
// транзакции списывает их, создаёт заказ со строками и outbox-событие.
// Либо заказ размещён целиком и остатки списаны ровно на заказанные количества,
// либо не изменилось ничего.
func (u *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (string, error) {
	const op = "OrderUseCase.PlaceOrder"

	if err := validateCart(req); err != nil {
		return "", e.Wrap(op, err)
	}

	lines := make([]domain.OrderLine, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, domain.OrderLine{
			ProductID: l.ProductID,
			VariantID: l.VariantID,
			Qty:       l.Qty,
		})
	}

	// Временные сбои хранилища повторяем с отступлением: заказ на неудачной
	// попытке не создаётся, поэтому повтор безопасен.
	var orderID string
	var err error
	for attempt := 0; ; attempt++ {
		orderID, err = u.placeOnce(ctx, req.Date, lines)
		if err == nil {
			break
		}
		if isFinalPlacementError(err) {
			return "", e.Wrap(op, err)
		}
		if attempt >= u.cfg.MaxRetries {
			u.logger.Warnf("order placement gave up after %d attempts: %v", attempt+1, err)
			return "", e.Wrap(op, fmt.Errorf("%w: %v", e.ErrPersistenceFailure, err))
		}

		backoff := jitter.ExponentialBackoff(100*time.Millisecond, time.Second, attempt, jitter.DefaultJitter)
		u.logger.Warnf("order placement attempt %d failed, retrying in %v: %v", attempt+1, backoff, err)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return "", e.Wrap(op, fmt.Errorf("%w: %v", e.ErrPersistenceFailure, ctx.Err()))
		}
	}

	// Удаление затронутых остатков из кэша после коммита
	u.invalidateStocks(lines)

	return orderID, nil
}

// placeOnce выполняет одну попытку размещения внутри транзакции с ограниченной
// длительностью. Блокировки строк в ReserveAll изолируют проверку и списание
// от конкурентных заказов на те же складские записи.
func (u *OrderUseCase) placeOnce(ctx context.Context, date time.Time, lines []domain.OrderLine) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.PlaceTimeout)
	defer cancel()

	orderID := uuid.NewString()
	for i := range lines {
		lines[i].OrderID = orderID
	}

	err := u.txm.WithinTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		shortages, unknown, err := u.stockRepo.ReserveAll(ctx, lines)
		if err != nil {
			return err
		}
		if len(unknown) > 0 {
			return NewUnknownVariantError(unknown)
		}
		if len(shortages) > 0 {
			return NewInsufficientStockError(shortages)
		}

		if err := u.stockRepo.CommitReserved(ctx, lines); err != nil {
			return err
		}

		if err := u.orderRepo.Create(ctx, domain.NewOrder(orderID, date, lines)); err != nil {
			return err
		}

		payload, err := json.Marshal(OrderPlacedEvent{
			OrderID: orderID,
			Date:    date,
			Lines:   toEventLines(lines),
		})
		if err != nil {
			return err
		}

		_, err = u.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderPlaced, orderID, payload))
		return err
	})
	if err != nil {
		return "", err
	}

	return orderID, nil
}

// VoidOrder аннулирует заказ (мягкое удаление). Возврат остатков на склад —
// явная политика (cfg.RestockOnVoid); по умолчанию аннулированный заказ
// остаётся финансовой записью и склад не пополняется.
func (u *OrderUseCase) VoidOrder(ctx context.Context, orderID string) error {
	const op = "OrderUseCase.VoidOrder"

	if orderID == "" {
		return e.Wrap(op, e.ErrOrderNotFound)
	}

	var restocked []domain.OrderLine
	err := u.txm.WithinTransaction(ctx, pgx.TxOptions{}, func(ctx context.Context) error {
		lines, err := u.orderRepo.SoftDelete(ctx, orderID)
		if err != nil {
			return err
		}

		if u.cfg.RestockOnVoid {
			if err := u.stockRepo.Restock(ctx, lines); err != nil {
				return err
			}
			restocked = lines
		}

		payload, err := json.Marshal(OrderVoidedEvent{
			OrderID:   orderID,
			Restocked: u.cfg.RestockOnVoid,
			Lines:     toEventLines(lines),
		})
		if err != nil {
			return err
		}

		_, err = u.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), OrderVoided, orderID, payload))
		return err
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if len(restocked) > 0 {
		u.invalidateStocks(restocked)
	}

	return nil
}

// FilterOrders возвращает заказы диапазона дат, сгруппированные по календарной
// дате с настроенным сдвигом часового пояса.
func (u *OrderUseCase) FilterOrders(ctx context.Context, req *FilterOrdersReq) ([]OrderGroup, error) {
	const op = "OrderUseCase.FilterOrders"

	if req.Sort != SortAsc && req.Sort != SortDesc {
		return nil, e.Wrap(op, e.ErrInvalidSort)
	}
	if req.DateTo.Before(req.DateFrom) {
		return nil, e.Wrap(op, e.ErrInvalidDateRange)
	}

	rows, err := u.orderRepo.GetOrderRows(ctx, req.DateFrom, req.DateTo, u.cfg.TzOffset)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return GroupOrderRows(rows, req.Sort, u.cfg.TzOffset), nil
}

// ListOrdersByDate возвращает заказы одной календарной даты с расшифровкой строк.
func (u *OrderUseCase) ListOrdersByDate(ctx context.Context, req *OrdersByDateReq) ([]OrderWithLines, error) {
	const op = "OrderUseCase.ListOrdersByDate"

	orders, err := u.orderRepo.ListByDate(ctx, req.Date, u.cfg.TzOffset)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// invalidateStocks выбрасывает затронутые складские записи из кэша.
// Ошибки кэша не фатальны и только логируются.
func (u *OrderUseCase) invalidateStocks(lines []domain.OrderLine) {
	keys := make([]domain.StockKey, 0, len(lines))
	for _, l := range lines {
		keys = append(keys, domain.StockKey{ProductID: l.ProductID, VariantID: l.VariantID})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := u.cacheRepo.DeleteStocks(ctx, keys); err != nil {
		u.logger.Warnf("failed to invalidate stock cache: %v", err)
	}
}

// validateCart проверяет корзину до обращения к хранилищу:
// непустая, количества положительные, без дублей по составному ключу.
func validateCart(req *PlaceOrderReq) error {
	if len(req.Lines) == 0 {
		return e.ErrEmptyCart
	}

	seen := make(map[domain.StockKey]struct{}, len(req.Lines))
	for _, l := range req.Lines {
		if l.Qty <= 0 {
			return fmt.Errorf("%w: %s/%s", e.ErrQtyMustBePositive, l.ProductID, l.VariantID)
		}

		key := domain.StockKey{ProductID: l.ProductID, VariantID: l.VariantID}
		if _, ok := seen[key]; ok {
			// Дубли отклоняются, а не сливаются — осознанное продуктовое решение
			return fmt.Errorf("%w: %s/%s", e.ErrDuplicateLine, l.ProductID, l.VariantID)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// isFinalPlacementError отличает бизнес-отказы от временных сбоев хранилища:
// первые повторять бессмысленно, вторые — можно.
func isFinalPlacementError(err error) bool {
	return errors.Is(err, e.ErrInsufficientStock) ||
		errors.Is(err, e.ErrUnknownVariant) ||
		errors.Is(err, context.Canceled)
}
