package initialize

import (
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"gorm.io/gorm"
)

// InitializeTables seeds essential production data: the furniture catalog the
// intake form renders. Existing catalogs are left alone.
func InitializeTables(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("InitializeTables")
	log.Info("Initializing essential production data")

	var count int64
	if err := db.Model(&FurnitureItem{}).Count(&count).Error; err != nil {
		return log.Err("failed to count furniture items", err)
	}
	if count > 0 {
		log.Info("Furniture catalog already initialized", "count", count)
		return nil
	}

	items := []FurnitureItem{
		{Name: "Bed Frame", Category: "bedroom", AllowMultiple: true, CategoryIndex: 0},
		{Name: "Mattress", Category: "bedroom", AllowMultiple: true, CategoryIndex: 1},
		{Name: "Dresser", Category: "bedroom", AllowMultiple: true, CategoryIndex: 2},
		{Name: "Nightstand", Category: "bedroom", AllowMultiple: true, CategoryIndex: 3},
		{Name: "Couch", Category: "living room", AllowMultiple: false, CategoryIndex: 0},
		{Name: "Recliner", Category: "living room", AllowMultiple: false, CategoryIndex: 1},
		{Name: "Coffee Table", Category: "living room", AllowMultiple: false, CategoryIndex: 2},
		{Name: "End Table", Category: "living room", AllowMultiple: true, CategoryIndex: 3},
		{Name: "TV Stand", Category: "living room", AllowMultiple: false, CategoryIndex: 4},
		{Name: "Lamp", Category: "living room", AllowMultiple: true, CategoryIndex: 5},
		{Name: "Dining Table", Category: "dining room", AllowMultiple: false, CategoryIndex: 0},
		{Name: "Dining Chair", Category: "dining room", AllowMultiple: true, CategoryIndex: 1},
		{Name: "Desk", Category: "other", AllowMultiple: false, CategoryIndex: 0},
		{Name: "Desk Chair", Category: "other", AllowMultiple: false, CategoryIndex: 1},
		{Name: "Bookshelf", Category: "other", AllowMultiple: true, CategoryIndex: 2},
	}

	if err := db.Create(&items).Error; err != nil {
		return log.Err("failed to seed furniture catalog", err)
	}

	log.Info("Furniture catalog initialized", "count", len(items))
	return nil
}
