package repositories

import (
	"context"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/database"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"
)

const (
	FURNITURE_CACHE_EXPIRY = 5 * time.Minute
	furnitureItemsCacheKey = "furniture_items:all"
)

type FurnitureItemRepository interface {
	GetAll(ctx context.Context) ([]FurnitureItem, error)
}

type furnitureItemRepository struct {
	db  database.DB
	log logger.Logger
}

func NewFurnitureItem(db database.DB) FurnitureItemRepository {
	return &furnitureItemRepository{
		db:  db,
		log: logger.New("furnitureItemRepository"),
	}
}

// GetAll returns the full furniture catalog in display order. The catalog is
// small and changes rarely, so a short-lived cache absorbs the once-per-export
// and once-per-form-load reads.
func (r *furnitureItemRepository) GetAll(ctx context.Context) ([]FurnitureItem, error) {
	log := r.log.Function("GetAll")

	var items []FurnitureItem
	found, err := database.NewCacheBuilder(r.db.Cache.Catalog, furnitureItemsCacheKey).
		WithContext(ctx).
		Get(&items)
	if err != nil {
		log.Warn("failed to read furniture items from cache", "error", err)
	}
	if found {
		return items, nil
	}

	if err := r.db.SQLWithContext(ctx).
		Order("category ASC, category_index ASC").
		Find(&items).Error; err != nil {
		return nil, log.Err("failed to get furniture items", err)
	}

	if err := database.NewCacheBuilder(r.db.Cache.Catalog, furnitureItemsCacheKey).
		WithStruct(items).
		WithTTL(FURNITURE_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to add furniture items to cache", "error", err)
	}

	return items, nil
}
