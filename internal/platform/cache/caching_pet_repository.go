// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"pawfinders_backend/internal/feature/pets/domain/entity"
	"pawfinders_backend/internal/feature/pets/usecase"
)

// CachingPetRepository decorates a PetRepository with Redis caching of the
// full listing. It transparently adds caching without modifying the
// underlying repository; a nil Redis client bypasses the cache entirely.
type CachingPetRepository struct {
	inner     usecase.PetRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.PetRepository = (*CachingPetRepository)(nil)

// NewCachingPetRepository decorates a PetRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "pets".
func NewCachingPetRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PetRepository, namespace string) *CachingPetRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "pets"
	}
	return &CachingPetRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a pet report and invalidates the cached listing.
func (c *CachingPetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if err := c.inner.Create(ctx, pet); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	// Best effort: a stale listing expires on its own via the TTL
	_ = c.rdb.Del(ctx, c.listKey()).Err()
	return nil
}

// List returns the pet reports, checking the cache first and falling back to
// the database.
func (c *CachingPetRepository) List(ctx context.Context) ([]entity.Pet, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}

	key := c.listKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Pet
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete the corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// listKey is the cache key for the full listing.
func (c *CachingPetRepository) listKey() string {
	return c.namespace + ":all"
}
