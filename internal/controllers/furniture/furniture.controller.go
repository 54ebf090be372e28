package furnitureController

import (
	"context"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/repositories"
)

type FurnitureController struct {
	furnitureRepo repositories.FurnitureItemRepository
	log           logger.Logger
}

func New(furnitureRepo repositories.FurnitureItemRepository) *FurnitureController {
	return &FurnitureController{
		furnitureRepo: furnitureRepo,
		log:           logger.New("FurnitureController"),
	}
}

// GetFurnitureItems returns the catalog in display order for the intake form.
func (c *FurnitureController) GetFurnitureItems(ctx context.Context) ([]FurnitureItem, error) {
	return c.furnitureRepo.GetAll(ctx)
}
