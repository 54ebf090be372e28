package models

// FurnitureItem is one entry in the furniture catalog. The catalog is owned by
// a separate admin workflow; this service only reads it, for the intake form
// and for resolving selections at export time.
type FurnitureItem struct {
	BaseUUIDModel
	Name          string `gorm:"type:varchar(128);not null"       json:"name"`
	Category      string `gorm:"type:varchar(64);not null;index"  json:"category"`
	AllowMultiple bool   `gorm:"not null"                         json:"allowMultiple"`
	CategoryIndex int    `gorm:"not null"                         json:"categoryIndex"`
}
