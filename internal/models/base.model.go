package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseUUIDModel assigns a UUIDv7 primary key on first save. UUIDv7 keys are
// time-ordered, so ascending id order matches insertion order.
type BaseUUIDModel struct {
	ID string `gorm:"type:varchar(64);primaryKey" json:"_id"`
}

func (b *BaseUUIDModel) BeforeSave(tx *gorm.DB) error {
	if b.ID == "" {
		uuidString, _ := uuid.NewV7()
		b.ID = uuidString.String()
	}
	return nil
}
