package seed

import (
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/config"
	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/logger"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

// Seed loads development data: dashboard accounts and a few sample
// submissions. Not for production use.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	users := []User{
		{UID: "dev-admin", Role: RoleAdmin},
		{UID: "dev-staff", Role: RoleStaff},
	}

	for _, user := range users {
		var existingUser User
		if err := db.First(&existingUser, "uid = ?", user.UID).Error; err == nil {
			log.Info("User already exists", "uid", user.UID)
			continue
		}
		log.Info("Seeding user", "uid", user.UID, "role", user.Role)
		if err := db.Create(&user).Error; err != nil {
			log.Er("failed to create user", err, "uid", user.UID)
		}
	}

	var furniture []FurnitureItem
	if err := db.Limit(2).Find(&furniture).Error; err != nil || len(furniture) < 2 {
		return log.Error("furniture catalog must be initialized before seeding")
	}

	now := time.Now().UTC()
	vsrs := []VSR{
		{
			Name:             "James Miller",
			Gender:           "Male",
			Age:              46,
			MaritalStatus:    "Married",
			SpouseName:       stringPtr("Dana Miller"),
			AgesOfBoys:       []int{9, 12},
			AgesOfGirls:      []int{7},
			Ethnicity:        []string{"Caucasian"},
			EmploymentStatus: "Employed",
			IncomeLevel:      IncomeBracketKey25kTo50k,
			SizeOfHome:       "House",
			StreetAddress:    "1400 Harbor Dr",
			City:             "San Diego",
			State:            "CA",
			ZipCode:          "92101",
			PhoneNumber:      "619-555-0132",
			Email:            "james.miller@example.com",
			Branch:           []string{"Navy"},
			Conflicts:        []string{"Iraq"},
			DischargeStatus:  "Honorable",
			ServiceConnected: true,
			LastRank:         "Petty Officer First Class",
			MilitaryID:       "0371",
			PetCompanion:     true,
			HearFrom:         "VA",
			SelectedFurnitureItems: []FurnitureInput{
				{FurnitureItemID: furniture[0].ID, Quantity: 2},
				{FurnitureItemID: furniture[1].ID, Quantity: 1},
			},
			AdditionalItems: "Kitchen table if available",
			DateReceived:    now,
			LastUpdated:     now,
			Status:          StatusReceived,
		},
		{
			Name:             "Maria Gonzalez",
			Gender:           "Female",
			Age:              38,
			MaritalStatus:    "Single",
			Ethnicity:        []string{"Hispanic"},
			EmploymentStatus: "Unemployed",
			IncomeLevel:      IncomeBracketKeyUnder12k,
			SizeOfHome:       "Apartment",
			StreetAddress:    "88 Mission St",
			City:             "Oceanside",
			State:            "CA",
			ZipCode:          "92054",
			PhoneNumber:      "760-555-0147",
			Email:            "maria.gonzalez@example.com",
			Branch:           []string{"Army"},
			Conflicts:        []string{"Afghanistan (OEF)"},
			DischargeStatus:  "Honorable",
			ServiceConnected: false,
			LastRank:         "Sergeant",
			MilitaryID:       "8842",
			PetCompanion:     false,
			HearFrom:         "Friend",
			SelectedFurnitureItems: []FurnitureInput{
				{FurnitureItemID: furniture[1].ID, Quantity: 1},
			},
			DateReceived: now,
			LastUpdated:  now,
			Status:       StatusApproved,
		},
	}

	for _, vsr := range vsrs {
		var existing VSR
		if err := db.First(&existing, "email = ?", vsr.Email).Error; err == nil {
			log.Info("Sample VSR already exists", "email", vsr.Email)
			continue
		}
		log.Info("Seeding VSR", "name", vsr.Name)
		if err := db.Create(&vsr).Error; err != nil {
			log.Er("failed to create VSR", err, "name", vsr.Name)
		}
	}

	return nil
}
