package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/stokku/go-stock-backend/internal/cfg"
	"github.com/stokku/go-stock-backend/internal/domain"
	"github.com/stokku/go-stock-backend/internal/repository/redis/converter"
	"github.com/stokku/go-stock-backend/internal/usecase"
	"github.com/stokku/go-stock-backend/pkg/clients"
	"github.com/stokku/go-stock-backend/pkg/e"
	"github.com/stokku/go-stock-backend/pkg/logger"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.StockInfoConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.StockInfoConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetStocks возвращает закэшированные остатки по ключам, игнорируя промахи и логируя их
func (r *CacheRepo) GetStocks(ctx context.Context, keys []domain.StockKey) (map[domain.StockKey]usecase.StockInfo, error) {
	cacheKeys := r.buildStockCacheKeys(keys)

	values, err := r.client.Client.MGet(ctx, cacheKeys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[domain.StockKey]usecase.StockInfo, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, cacheKeys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		model, err := r.unmarshalStockFromCache(data)
		if err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.ProductID != keys[i].ProductID || model.VariantID != keys[i].VariantID {
			r.logger.Warnf("Cache key mismatch: key: %s, model: %s/%s", cacheKeys[i], model.ProductID, model.VariantID)
			if err := r.client.Client.Del(context.Background(), cacheKeys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[keys[i]] = *r.conv.ToUseCase(model)
	}

	return result, nil
}

// SetStocks атомарно кэширует несколько складских записей с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetStocks(ctx context.Context, stocks []usecase.StockInfo) error {
	models := r.conv.ToArrRedisModel(stocks)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := r.marshalStockForCache(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal stock for caching (%s/%s): %v", model.ProductID, model.VariantID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		key := r.stockKey(model.ProductID, model.VariantID)
		pipeline.Set(ctx, key, data, r.cfg.StockTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteStocks удаляет складские записи из кэша по ключам
func (r *CacheRepo) DeleteStocks(ctx context.Context, keys []domain.StockKey) error {
	cacheKeys := r.buildStockCacheKeys(keys)

	if err := r.client.Client.Del(ctx, cacheKeys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalStockForCache сериализует складскую запись в JSON для кэша
func (r *CacheRepo) marshalStockForCache(model converter.StockInfoRedisModel) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalStockFromCache десериализует JSON из кэша в модель складской записи
func (r *CacheRepo) unmarshalStockFromCache(data []byte) (*converter.StockInfoRedisModel, error) {
	var model converter.StockInfoRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// buildStockCacheKeys формирует Redis-ключи из составных ключей остатков
func (r *CacheRepo) buildStockCacheKeys(keys []domain.StockKey) []string {
	cacheKeys := make([]string, len(keys))
	for i, key := range keys {
		cacheKeys[i] = r.stockKey(key.ProductID, key.VariantID)
	}

	return cacheKeys
}

// stockKey возвращает Redis-ключ для одной складской записи
func (r *CacheRepo) stockKey(productID, variantID string) string {
	return fmt.Sprintf("stock:%s:%s", productID, variantID)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
