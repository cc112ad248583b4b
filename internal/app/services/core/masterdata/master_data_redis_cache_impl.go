package masterdata

import (
	"context"
	"fmt"
	"time"

	"optizen-service/internal/app/contracts"
	"optizen-service/internal/app/models"
	"optizen-service/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// masterDataRedisCache decorates the Mongo gateway with a read-through
// cache. Only found (category, id) -> name pairs are ever cached; a cache
// miss always goes to the underlying store, so the cache can never turn a
// backend failure into a silent "no match" or vice versa. Redis being down
// degrades to uncached lookups.
type masterDataRedisCache struct {
	next            contracts.MasterDataRepository
	redisRepository contracts.RedisRepository
	log             *zap.Logger
	ttl             time.Duration
}

func NewMasterDataRedisCache(
	next contracts.MasterDataRepository,
	redisRepository contracts.RedisRepository,
	log *zap.Logger,
	ttl time.Duration,
) contracts.MasterDataRepository {
	return &masterDataRedisCache{
		next:            next,
		redisRepository: redisRepository,
		log:             log,
		ttl:             ttl,
	}
}

func (c *masterDataRedisCache) FindNamesByCategoryAndIDs(ctx context.Context, category string, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = fmt.Sprintf(constvars.MasterDataCacheKeyFormat, category, id)
	}

	missing := ids
	values, err := c.redisRepository.MGet(ctx, keys...)
	if err != nil {
		c.log.Warn("master data cache read failed, falling back to store",
			zap.String(constvars.LoggingCategoryKey, category),
			zap.Error(err),
		)
	} else {
		missing = make([]string, 0, len(ids))
		for i, value := range values {
			cached, ok := value.(string)
			if !ok {
				missing = append(missing, ids[i])
				continue
			}
			var name string
			if err := json.Unmarshal([]byte(cached), &name); err != nil {
				missing = append(missing, ids[i])
				continue
			}
			names[ids[i]] = name
		}
	}

	if len(missing) == 0 {
		return names, nil
	}

	fetched, err := c.next.FindNamesByCategoryAndIDs(ctx, category, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range fetched {
		names[id] = name
		key := fmt.Sprintf(constvars.MasterDataCacheKeyFormat, category, id)
		if err := c.redisRepository.Set(ctx, key, name, c.ttl); err != nil {
			c.log.Warn("master data cache write failed",
				zap.String(constvars.LoggingCategoryKey, category),
				zap.Error(err),
			)
		}
	}
	return names, nil
}

// Listings are not cached, they go straight to the store.
func (c *masterDataRedisCache) FindByCategory(ctx context.Context, category string, page, limit int) ([]models.MasterDataEntry, int64, error) {
	return c.next.FindByCategory(ctx, category, page, limit)
}
