package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/database"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"gorm.io/gorm"
)

// VSRFilter is the one filter contract shared by the dashboard list view and
// the bulk export, so "what you see" and "what you export" always agree. All
// fields are optional; an empty filter matches every record.
type VSRFilter struct {
	// Search matches records whose name contains the term, case-insensitively.
	Search string
	// Status restricts to exactly this status value.
	Status string
	// IncomeLevel restricts to exactly this stored bracket key.
	IncomeLevel string
	// ZipCodes matches records whose zip is any member of the set.
	ZipCodes []string
	// IDs, when non-empty, restricts the result to exactly these ids and all
	// other filters are ignored (export-selection overrides export-by-filter).
	IDs []string
}

type VSRRepository interface {
	Create(ctx context.Context, vsr *VSR) error
	GetByID(ctx context.Context, id string) (*VSR, error)
	GetAll(ctx context.Context, filter VSRFilter) ([]VSR, error)
	Update(ctx context.Context, vsr *VSR) error
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*VSR, error)
	Delete(ctx context.Context, id string) error
}

type vsrRepository struct {
	db  database.DB
	log logger.Logger
}

func NewVSR(db database.DB) VSRRepository {
	return &vsrRepository{
		db:  db,
		log: logger.New("vsrRepository"),
	}
}

func (r *vsrRepository) Create(ctx context.Context, vsr *VSR) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(vsr).Error; err != nil {
		return log.Err("failed to create VSR", err)
	}

	return nil
}

func (r *vsrRepository) GetByID(ctx context.Context, id string) (*VSR, error) {
	log := r.log.Function("GetByID")

	var vsr VSR
	if err := r.db.SQLWithContext(ctx).First(&vsr, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get VSR by id", err, "id", id)
	}

	return &vsr, nil
}

func (r *vsrRepository) GetAll(ctx context.Context, filter VSRFilter) ([]VSR, error) {
	log := r.log.Function("GetAll")

	query := r.db.SQLWithContext(ctx).Order("id ASC")

	if len(filter.IDs) > 0 {
		query = query.Where("id IN ?", filter.IDs)
	} else {
		if filter.Search != "" {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		if filter.IncomeLevel != "" {
			query = query.Where("income_level = ?", filter.IncomeLevel)
		}
		if len(filter.ZipCodes) > 0 {
			query = query.Where("zip_code IN ?", filter.ZipCodes)
		}
	}

	var vsrs []VSR
	if err := query.Find(&vsrs).Error; err != nil {
		return nil, log.Err("failed to get VSRs", err, "filter", filter)
	}

	return vsrs, nil
}

func (r *vsrRepository) Update(ctx context.Context, vsr *VSR) error {
	log := r.log.Function("Update")

	if err := r.db.SQLWithContext(ctx).Save(vsr).Error; err != nil {
		return log.Err("failed to update VSR", err, "id", vsr.ID)
	}

	return nil
}

// UpdateStatus sets status and last_updated in a single UPDATE and returns the
// post-update record. Concurrent updates to the same id are last-write-wins.
func (r *vsrRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*VSR, error) {
	log := r.log.Function("UpdateStatus")

	result := r.db.SQLWithContext(ctx).
		Model(&VSR{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "last_updated": updatedAt})
	if result.Error != nil {
		return nil, log.Err("failed to update VSR status", result.Error, "id", id, "status", status)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *vsrRepository) Delete(ctx context.Context, id string) error {
	log := r.log.Function("Delete")

	result := r.db.SQLWithContext(ctx).Delete(&VSR{}, "id = ?", id)
	if result.Error != nil {
		return log.Err("failed to delete VSR", result.Error, "id", id)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
