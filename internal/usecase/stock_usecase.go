package usecase

import (
	"context"
	"time"

	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

// StockUseCase — путь чтения остатков с кэшем перед базой.
type StockUseCase struct {
	stockRepo StockRepository
	cacheRepo CacheRepository
	logger    logger.Logger
}

func NewStockUC(stockRepo StockRepository, cacheRepo CacheRepository, logger logger.Logger) *StockUseCase {
	return &StockUseCase{
		stockRepo: stockRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStock возвращает остаток и цену по паре (продукт, вариант).
// Промах или сбой кэша прозрачно уходит в базу; найденная запись
// докладывается в кэш в фоне.
func (s *StockUseCase) GetStock(ctx context.Context, req *GetStockReq) (*StockInfo, error) {
	const op = "StockUseCase.GetStock"

	key := domain.StockKey{ProductID: req.ProductID, VariantID: req.VariantID}

	cached, err := s.cacheRepo.GetStocks(ctx, []domain.StockKey{key})
	if err == nil {
		if info, ok := cached[key]; ok {
			return &info, nil
		}
	}

	stock, err := s.stockRepo.GetStock(ctx, req.ProductID, req.VariantID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewStockInfo(stock.ProductID, stock.VariantID, stock.Qty, stock.Price)

	// Фоновое добавление в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := s.cacheRepo.SetStocks(bgCtx, []StockInfo{info}); err != nil {
			s.logger.Warnf("failed to cache stock in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}
