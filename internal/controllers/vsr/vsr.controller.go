package vsrController

import (
	"context"
	"fmt"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/repositories"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/utils"

	"github.com/xuri/excelize/v2"
)

type VSRController struct {
	vsrRepo       repositories.VSRRepository
	furnitureRepo repositories.FurnitureItemRepository
	log           logger.Logger
	now           func() time.Time
}

func New(
	vsrRepo repositories.VSRRepository,
	furnitureRepo repositories.FurnitureItemRepository,
) *VSRController {
	return &VSRController{
		vsrRepo:       vsrRepo,
		furnitureRepo: furnitureRepo,
		log:           logger.New("VSRController"),
		now:           time.Now,
	}
}

// CreateVSR persists a new submission. Status is always forced to "Received"
// and both timestamps are stamped with the same creation instant, regardless
// of what the caller sent.
func (c *VSRController) CreateVSR(ctx context.Context, request *VSRRequest) (*VSR, error) {
	log := c.log.Function("CreateVSR")

	if err := request.Validate(); err != nil {
		return nil, err
	}

	now := c.now().UTC()
	vsr := VSR{
		DateReceived: now,
		LastUpdated:  now,
		Status:       StatusReceived,
	}
	request.apply(&vsr)

	if err := c.vsrRepo.Create(ctx, &vsr); err != nil {
		return nil, log.Err("failed to create VSR", err)
	}

	log.Info("Created VSR", "id", vsr.ID, "zipCode", vsr.ZipCode)
	return &vsr, nil
}

func (c *VSRController) GetVSR(ctx context.Context, id string) (*VSR, error) {
	return c.vsrRepo.GetByID(ctx, id)
}

func (c *VSRController) ListVSRs(ctx context.Context, filter repositories.VSRFilter) ([]VSR, error) {
	return c.vsrRepo.GetAll(ctx, filter)
}

// UpdateVSR replaces the submitted field set of an existing record. The id,
// dateReceived, and status are preserved; lastUpdated is refreshed.
func (c *VSRController) UpdateVSR(ctx context.Context, id string, request *VSRRequest) (*VSR, error) {
	log := c.log.Function("UpdateVSR")

	if err := request.Validate(); err != nil {
		return nil, err
	}

	vsr, err := c.vsrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	request.apply(vsr)
	vsr.LastUpdated = c.now().UTC()

	if err := c.vsrRepo.Update(ctx, vsr); err != nil {
		return nil, log.Err("failed to update VSR", err, "id", id)
	}

	return vsr, nil
}

// UpdateVSRStatus validates the new status against the fixed enumeration and
// applies it together with the lastUpdated refresh in a single update. Any
// status may move to any other status; there is no transition graph.
func (c *VSRController) UpdateVSRStatus(ctx context.Context, id, status string) (*VSR, error) {
	log := c.log.Function("UpdateVSRStatus")

	if !IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrValidation, status)
	}

	vsr, err := c.vsrRepo.UpdateStatus(ctx, id, status, c.now().UTC())
	if err != nil {
		return nil, err
	}

	log.Info("Updated VSR status", "id", id, "status", status)
	return vsr, nil
}

func (c *VSRController) DeleteVSR(ctx context.Context, id string) error {
	log := c.log.Function("DeleteVSR")

	if err := c.vsrRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("Deleted VSR", "id", id)
	return nil
}

// ExportVSRs renders every record matching the filter into a spreadsheet. The
// furniture catalog is read once per call, never once per record.
func (c *VSRController) ExportVSRs(ctx context.Context, filter repositories.VSRFilter) (*excelize.File, error) {
	log := c.log.Function("ExportVSRs")

	vsrs, err := c.vsrRepo.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := c.furnitureRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	furniture := make(map[string]FurnitureItem, len(items))
	for _, item := range items {
		furniture[item.ID] = item
	}

	file, err := utils.WriteVSRsToXlsx(vsrs, furniture)
	if err != nil {
		return nil, log.Err("failed to render VSR spreadsheet", err)
	}

	log.Info("Exported VSRs", "count", len(vsrs))
	return file, nil
}
