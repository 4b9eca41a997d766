package redis_decorator

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riteshp0/DinoKicks/internal/domain/model"
	"github.com/riteshp0/DinoKicks/internal/infra/repository/db"
	"github.com/rs/zerolog"
)

const productCacheTTL = 10 * time.Minute

/*
cache aside: 讀取先查redis, miss才回源db並回填
快取故障只記log不影響主流程, db永遠是真相來源
*/
type CacheAsideProductRepo struct {
	db.IProductRepository
	cache  *redis.Client
	logger zerolog.Logger
}

func NewCacheAsideProductRepo(dbRepo db.IProductRepository, cache *redis.Client, logger zerolog.Logger) db.IProductRepository {
	return &CacheAsideProductRepo{IProductRepository: dbRepo, cache: cache, logger: logger}
}

func productKey(id int) string {
	return fmt.Sprintf("product:%d", id)
}

func (p *CacheAsideProductRepo) GetProductByID(ctx context.Context, id int) (*model.Product, error) {
	key := productKey(id)
	raw, err := p.cache.Get(ctx, key).Result()
	if err == nil {
		var product model.Product
		if err := json.Unmarshal([]byte(raw), &product); err == nil {
			return &product, nil
		}
		// 快取內容損壞, 刪掉回源
		p.cache.Del(ctx, key)
	} else if err != redis.Nil {
		p.logger.Warn().Err(err).Int("product_id", id).Msg("product cache read failed")
	}

	product, err := p.IProductRepository.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(product); err == nil {
		if err := p.cache.Set(ctx, key, raw, productCacheTTL).Err(); err != nil {
			p.logger.Warn().Err(err).Int("product_id", id).Msg("product cache write failed")
		}
	}
	return product, nil
}

func (p *CacheAsideProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	if err := p.IProductRepository.UpdateProduct(ctx, product); err != nil {
		return err
	}
	if err := p.cache.Del(ctx, productKey(product.ID)).Err(); err != nil {
		p.logger.Warn().Err(err).Int("product_id", product.ID).Msg("product cache invalidation failed")
	}
	return nil
}

func (p *CacheAsideProductRepo) HardDeleteProduct(ctx context.Context, id int) error {
	if err := p.IProductRepository.HardDeleteProduct(ctx, id); err != nil {
		return err
	}
	if err := p.cache.Del(ctx, productKey(id)).Err(); err != nil {
		p.logger.Warn().Err(err).Int("product_id", id).Msg("product cache invalidation failed")
	}
	return nil
}
