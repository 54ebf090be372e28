package models

import "time"

// FurnitureInput is a single furniture selection on a VSR: a reference to a
// catalog item plus the quantity the veteran is requesting.
type FurnitureInput struct {
	FurnitureItemID string `json:"furnitureItemId"`
	Quantity        int    `json:"quantity"`
}

// VSR is a veteran service request: one submission of the public furniture
// assistance form, tracked through its status lifecycle by staff.
type VSR struct {
	BaseUUIDModel

	// Page 1: applicant demographics
	Name             string   `gorm:"type:varchar(255);not null;index" json:"name"`
	Gender           string   `gorm:"type:varchar(64);not null"        json:"gender"`
	Age              int      `gorm:"not null"                         json:"age"`
	MaritalStatus    string   `gorm:"type:varchar(64);not null"        json:"maritalStatus"`
	SpouseName       *string  `gorm:"type:varchar(255)"                json:"spouseName,omitempty"`
	AgesOfBoys       []int    `gorm:"serializer:json"                  json:"agesOfBoys"`
	AgesOfGirls      []int    `gorm:"serializer:json"                  json:"agesOfGirls"`
	Ethnicity        []string `gorm:"serializer:json;not null"         json:"ethnicity"`
	EmploymentStatus string   `gorm:"type:varchar(64);not null"        json:"employmentStatus"`
	IncomeLevel      string   `gorm:"type:varchar(16);not null;index"  json:"incomeLevel"`
	SizeOfHome       string   `gorm:"type:varchar(64);not null"        json:"sizeOfHome"`

	// Page 2: contact and military background
	StreetAddress    string        `gorm:"type:varchar(255);not null" json:"streetAddress"`
	City             string        `gorm:"type:varchar(128);not null" json:"city"`
	State            string        `gorm:"type:varchar(64);not null"  json:"state"`
	ZipCode          NumericString `gorm:"type:varchar(10);not null;index" json:"zipCode"`
	PhoneNumber      string        `gorm:"type:varchar(32);not null"  json:"phoneNumber"`
	Email            string        `gorm:"type:varchar(255);not null" json:"email"`
	Branch           []string      `gorm:"serializer:json;not null"   json:"branch"`
	Conflicts        []string      `gorm:"serializer:json;not null"   json:"conflicts"`
	DischargeStatus  string        `gorm:"type:varchar(64);not null"  json:"dischargeStatus"`
	ServiceConnected bool          `gorm:"not null"                   json:"serviceConnected"`
	LastRank         string        `gorm:"type:varchar(64);not null"  json:"lastRank"`
	MilitaryID       NumericString `gorm:"type:varchar(16);not null"  json:"militaryID"`
	PetCompanion     bool          `gorm:"not null"                   json:"petCompanion"`
	HearFrom         string        `gorm:"type:varchar(128);not null" json:"hearFrom"`

	// Page 3: furniture selections
	SelectedFurnitureItems []FurnitureInput `gorm:"serializer:json;not null" json:"selectedFurnitureItems"`
	AdditionalItems        string           `gorm:"type:text"                json:"additionalItems"`

	// Lifecycle metadata. DateReceived is set once at creation and never
	// touched again; LastUpdated is refreshed on every mutation.
	DateReceived time.Time `gorm:"not null"                        json:"dateReceived"`
	LastUpdated  time.Time `gorm:"not null"                        json:"lastUpdated"`
	Status       string    `gorm:"type:varchar(32);not null;index" json:"status"`
}
