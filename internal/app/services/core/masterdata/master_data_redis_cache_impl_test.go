package masterdata

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"optizen-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values   map[string]string
	sets     map[string]string
	mgetErr  error
	setErr   error
	mgetHits int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		values: make(map[string]string),
		sets:   make(map[string]string),
	}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets[key] = fmt.Sprintf("%v", value)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	value, found := f.values[key]
	if !found {
		return "", nil
	}
	return value, nil
}

func (f *fakeRedisRepository) MGet(ctx context.Context, keys ...string) ([]interface{}, error) {
	f.mgetHits++
	if f.mgetErr != nil {
		return nil, f.mgetErr
	}
	values := make([]interface{}, len(keys))
	for i, key := range keys {
		if value, found := f.values[key]; found {
			values[i] = value
		}
	}
	return values, nil
}

func cacheKey(category, id string) string {
	return fmt.Sprintf(constvars.MasterDataCacheKeyFormat, category, id)
}

func TestMasterDataRedisCache(t *testing.T) {
	log := zap.NewNop()

	t.Run("Cache hits skip the store", func(t *testing.T) {
		store := &fakeMasterDataRepository{entries: map[string]map[string]string{}}
		redis := newFakeRedisRepository()
		redis.values[cacheKey(constvars.CategoryMedicines, drugA)] = `"Timolol 0.5%"`

		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{drugA: "Timolol 0.5%"}, names)
		assert.Empty(t, store.lookups)
	})

	t.Run("Misses go to the store and only found pairs are cached", func(t *testing.T) {
		store := &fakeMasterDataRepository{entries: map[string]map[string]string{
			constvars.CategoryMedicines: {drugA: "Timolol 0.5%"},
		}}
		redis := newFakeRedisRepository()
		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA, drugB})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{drugA: "Timolol 0.5%"}, names)
		require.Len(t, store.lookups, 1)
		assert.ElementsMatch(t, []string{drugA, drugB}, store.lookups[0].ids)
		assert.Contains(t, redis.sets, cacheKey(constvars.CategoryMedicines, drugA))
		assert.NotContains(t, redis.sets, cacheKey(constvars.CategoryMedicines, drugB), "unresolved ids are never cached")
	})

	t.Run("Partial hits only fetch the missing ids", func(t *testing.T) {
		store := &fakeMasterDataRepository{entries: map[string]map[string]string{
			constvars.CategoryMedicines: {drugB: "Latanoprost"},
		}}
		redis := newFakeRedisRepository()
		redis.values[cacheKey(constvars.CategoryMedicines, drugA)] = `"Timolol 0.5%"`

		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA, drugB})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{drugA: "Timolol 0.5%", drugB: "Latanoprost"}, names)
		require.Len(t, store.lookups, 1)
		assert.Equal(t, []string{drugB}, store.lookups[0].ids)
	})

	t.Run("Redis read failure degrades to the store", func(t *testing.T) {
		store := &fakeMasterDataRepository{entries: map[string]map[string]string{
			constvars.CategoryMedicines: {drugA: "Timolol 0.5%"},
		}}
		redis := newFakeRedisRepository()
		redis.mgetErr = errors.New("connection refused")

		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{drugA: "Timolol 0.5%"}, names)
	})

	t.Run("Redis write failure does not fail the lookup", func(t *testing.T) {
		store := &fakeMasterDataRepository{entries: map[string]map[string]string{
			constvars.CategoryMedicines: {drugA: "Timolol 0.5%"},
		}}
		redis := newFakeRedisRepository()
		redis.setErr = errors.New("connection refused")

		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA})
		require.NoError(t, err)
		assert.Equal(t, map[string]string{drugA: "Timolol 0.5%"}, names)
	})

	t.Run("Store failure still surfaces as an error", func(t *testing.T) {
		store := &fakeMasterDataRepository{err: errors.New("server selection timeout")}
		redis := newFakeRedisRepository()
		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		_, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, []string{drugA})
		assert.Error(t, err)
	})

	t.Run("Empty id set never touches redis", func(t *testing.T) {
		store := &fakeMasterDataRepository{}
		redis := newFakeRedisRepository()
		cache := NewMasterDataRedisCache(store, redis, log, time.Minute)

		names, err := cache.FindNamesByCategoryAndIDs(context.Background(), constvars.CategoryMedicines, nil)
		require.NoError(t, err)
		assert.Empty(t, names)
		assert.Zero(t, redis.mgetHits)
	})
}
