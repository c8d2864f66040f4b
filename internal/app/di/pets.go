package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	petadapters "pawfinders_backend/internal/feature/pets/adapters"
	petusecase "pawfinders_backend/internal/feature/pets/usecase"
	"pawfinders_backend/internal/platform/cache"
)

// NewPetRepository creates a PetRepository implementation. If Redis is
// available the listing is served through the cache decorator; otherwise
// reads go straight to MySQL.
func NewPetRepository(rdb *redis.Client, db *gorm.DB) petusecase.PetRepository {
	inner := petadapters.NewPetMySQL(db)
	if rdb == nil {
		return inner
	}
	return cache.NewCachingPetRepository(rdb, 0, inner, "pets")
}
