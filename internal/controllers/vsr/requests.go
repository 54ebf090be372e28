package vsrController

import (
	"fmt"
	"strings"

	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"
)

// VSRRequest is the allow-listed field set a caller may submit when creating
// or fully updating a VSR. Lifecycle metadata (status, timestamps) is never
// accepted from the caller; the controller owns those fields.
type VSRRequest struct {
	Name             string   `json:"name"`
	Gender           string   `json:"gender"`
	Age              int      `json:"age"`
	MaritalStatus    string   `json:"maritalStatus"`
	SpouseName       *string  `json:"spouseName"`
	AgesOfBoys       []int    `json:"agesOfBoys"`
	AgesOfGirls      []int    `json:"agesOfGirls"`
	Ethnicity        []string `json:"ethnicity"`
	EmploymentStatus string   `json:"employmentStatus"`
	IncomeLevel      string   `json:"incomeLevel"`
	SizeOfHome       string   `json:"sizeOfHome"`

	StreetAddress    string        `json:"streetAddress"`
	City             string        `json:"city"`
	State            string        `json:"state"`
	ZipCode          NumericString `json:"zipCode"`
	PhoneNumber      string        `json:"phoneNumber"`
	Email            string        `json:"email"`
	Branch           []string      `json:"branch"`
	Conflicts        []string      `json:"conflicts"`
	DischargeStatus  string        `json:"dischargeStatus"`
	ServiceConnected bool          `json:"serviceConnected"`
	LastRank         string        `json:"lastRank"`
	MilitaryID       NumericString `json:"militaryID"`
	PetCompanion     bool          `json:"petCompanion"`
	HearFrom         string        `json:"hearFrom"`

	SelectedFurnitureItems []FurnitureInput `json:"selectedFurnitureItems"`
	AdditionalItems        string           `json:"additionalItems"`
}

func (r *VSRRequest) Validate() error {
	var problems []string

	requireString := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			problems = append(problems, field+" is required")
		}
	}

	requireString("name", r.Name)
	requireString("gender", r.Gender)
	if r.Age <= 0 {
		problems = append(problems, "age must be positive")
	}
	requireString("maritalStatus", r.MaritalStatus)
	if len(r.Ethnicity) == 0 {
		problems = append(problems, "ethnicity is required")
	}
	requireString("employmentStatus", r.EmploymentStatus)
	requireString("incomeLevel", r.IncomeLevel)
	requireString("sizeOfHome", r.SizeOfHome)

	requireString("streetAddress", r.StreetAddress)
	requireString("city", r.City)
	requireString("state", r.State)
	if !isDigits(string(r.ZipCode)) {
		problems = append(problems, "zipCode must be numeric")
	}
	requireString("phoneNumber", r.PhoneNumber)
	requireString("email", r.Email)
	if len(r.Branch) == 0 {
		problems = append(problems, "branch is required")
	}
	if len(r.Conflicts) == 0 {
		problems = append(problems, "conflicts is required")
	}
	requireString("dischargeStatus", r.DischargeStatus)
	requireString("lastRank", r.LastRank)
	if !isDigits(string(r.MilitaryID)) {
		problems = append(problems, "militaryID must be numeric")
	}
	requireString("hearFrom", r.HearFrom)

	if r.SelectedFurnitureItems == nil {
		problems = append(problems, "selectedFurnitureItems is required")
	}
	for i, selection := range r.SelectedFurnitureItems {
		if selection.FurnitureItemID == "" {
			problems = append(problems, fmt.Sprintf("selectedFurnitureItems[%d].furnitureItemId is required", i))
		}
		if selection.Quantity < 1 {
			problems = append(problems, fmt.Sprintf("selectedFurnitureItems[%d].quantity must be at least 1", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

// apply copies the allow-listed fields onto the record, leaving id and
// lifecycle metadata untouched.
func (r *VSRRequest) apply(vsr *VSR) {
	vsr.Name = r.Name
	vsr.Gender = r.Gender
	vsr.Age = r.Age
	vsr.MaritalStatus = r.MaritalStatus
	vsr.SpouseName = r.SpouseName
	vsr.AgesOfBoys = r.AgesOfBoys
	vsr.AgesOfGirls = r.AgesOfGirls
	vsr.Ethnicity = r.Ethnicity
	vsr.EmploymentStatus = r.EmploymentStatus
	vsr.IncomeLevel = r.IncomeLevel
	vsr.SizeOfHome = r.SizeOfHome
	vsr.StreetAddress = r.StreetAddress
	vsr.City = r.City
	vsr.State = r.State
	vsr.ZipCode = r.ZipCode
	vsr.PhoneNumber = r.PhoneNumber
	vsr.Email = r.Email
	vsr.Branch = r.Branch
	vsr.Conflicts = r.Conflicts
	vsr.DischargeStatus = r.DischargeStatus
	vsr.ServiceConnected = r.ServiceConnected
	vsr.LastRank = r.LastRank
	vsr.MilitaryID = r.MilitaryID
	vsr.PetCompanion = r.PetCompanion
	vsr.HearFrom = r.HearFrom
	vsr.SelectedFurnitureItems = r.SelectedFurnitureItems
	vsr.AdditionalItems = r.AdditionalItems
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
