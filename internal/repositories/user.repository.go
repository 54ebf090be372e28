package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/database"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"gorm.io/gorm"
)

const USER_CACHE_EXPIRY = 15 * time.Minute

type UserRepository interface {
	GetByUID(ctx context.Context, uid string) (*User, error)
}

type userRepository struct {
	db  database.DB
	log logger.Logger
}

func NewUser(db database.DB) UserRepository {
	return &userRepository{
		db:  db,
		log: logger.New("userRepository"),
	}
}

// GetByUID resolves an identity-provider UID to the stored user record. Every
// authenticated request goes through this lookup, so hits are cached.
func (r *userRepository) GetByUID(ctx context.Context, uid string) (*User, error) {
	log := r.log.Function("GetByUID")

	cacheKey := "user:uid:" + uid

	var user User
	found, err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithContext(ctx).
		Get(&user)
	if err != nil {
		log.Warn("failed to read user from cache", "uid", uid, "error", err)
	}
	if found {
		return &user, nil
	}

	if err := r.db.SQLWithContext(ctx).First(&user, "uid = ?", uid).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, log.Err("failed to get user by uid", err, "uid", uid)
	}

	if err := database.NewCacheBuilder(r.db.Cache.User, cacheKey).
		WithStruct(&user).
		WithTTL(USER_CACHE_EXPIRY).
		WithContext(ctx).
		Set(); err != nil {
		log.Warn("failed to add user to cache", "uid", uid, "error", err)
	}

	return &user, nil
}
