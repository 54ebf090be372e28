package utils

import (
	"testing"
	"time"

	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedHeaders = []string{
	"Name", "Gender", "Age", "Marital Status", "Spouse Name",
	"Ages of Boys", "Ages of Girls", "Ethnicity", "Employment Status",
	"Income Level", "Size of Home",
	"Street Address", "City", "State", "Zip Code", "Phone Number", "Email",
	"Branch", "Conflicts", "Discharge Status", "Service Connected",
	"Last Rank", "Military ID", "Pet Companion", "How Did You Hear About Us",
	"Selected Furniture Items", "Additional Items",
	"Date Received", "Last Updated", "Status",
}

func exportRows(t *testing.T, vsrs []VSR, furniture map[string]FurnitureItem) [][]string {
	t.Helper()

	file, err := WriteVSRsToXlsx(vsrs, furniture)
	require.NoError(t, err)

	rows, err := file.GetRows(vsrSheetName)
	require.NoError(t, err)
	return rows
}

func TestWriteVSRsToXlsx_HeaderOrderIsStable(t *testing.T) {
	rows := exportRows(t, nil, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, expectedHeaders, rows[0])

	// The header set does not depend on record content.
	rows = exportRows(t, []VSR{{Name: "Someone"}}, nil)
	assert.Equal(t, expectedHeaders, rows[0])
}

func TestWriteVSRsToXlsx_CellFormatting(t *testing.T) {
	spouse := "Dana Miller"
	received := time.Date(2024, 2, 10, 8, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC)

	sofa := FurnitureItem{Name: "Sofa"}
	sofa.ID = "sofa-id"

	vsr := VSR{
		Name:             "James Miller",
		Gender:           "Male",
		Age:              46,
		MaritalStatus:    "Married",
		SpouseName:       &spouse,
		AgesOfBoys:       []int{9, 12},
		AgesOfGirls:      nil,
		Ethnicity:        []string{"Caucasian", "Hispanic"},
		EmploymentStatus: "Employed",
		IncomeLevel:      IncomeBracketKey25kTo50k,
		SizeOfHome:       "House",
		StreetAddress:    "1400 Harbor Dr",
		City:             "San Diego",
		State:            "CA",
		ZipCode:          "02134",
		PhoneNumber:      "619-555-0132",
		Email:            "james.miller@example.com",
		Branch:           []string{"Navy", "Marine Corps"},
		Conflicts:        []string{"Iraq"},
		DischargeStatus:  "Honorable",
		ServiceConnected: true,
		LastRank:         "Petty Officer First Class",
		MilitaryID:       "0371",
		PetCompanion:     false,
		HearFrom:         "VA",
		SelectedFurnitureItems: []FurnitureInput{
			{FurnitureItemID: "sofa-id", Quantity: 2},
			{FurnitureItemID: "ghost", Quantity: 1},
		},
		AdditionalItems: "Kitchen table",
		DateReceived:    received,
		LastUpdated:     updated,
		Status:          StatusApproved,
	}

	rows := exportRows(t, []VSR{vsr}, map[string]FurnitureItem{"sofa-id": sofa})
	require.Len(t, rows, 2)
	record := rows[1]
	require.Len(t, record, len(expectedHeaders))

	cell := func(header string) string {
		for i, name := range expectedHeaders {
			if name == header {
				return record[i]
			}
		}
		t.Fatalf("unknown header %q", header)
		return ""
	}

	assert.Equal(t, "James Miller", cell("Name"))
	assert.Equal(t, "46", cell("Age"))
	assert.Equal(t, "Dana Miller", cell("Spouse Name"))
	assert.Equal(t, "9, 12", cell("Ages of Boys"))
	assert.Equal(t, "", cell("Ages of Girls"), "absent list renders empty")
	assert.Equal(t, "Caucasian, Hispanic", cell("Ethnicity"))
	assert.Equal(t, "02134", cell("Zip Code"), "leading zero survives export")
	assert.Equal(t, "Navy, Marine Corps", cell("Branch"))
	assert.Equal(t, "yes", cell("Service Connected"))
	assert.Equal(t, "no", cell("Pet Companion"))
	assert.Equal(t, "0371", cell("Military ID"))
	assert.Equal(t, "Sofa: 2, [unknown]", cell("Selected Furniture Items"))
	assert.Equal(t, "2024-02-10T08:30:00Z", cell("Date Received"))
	assert.Equal(t, "2024-02-12T09:00:00Z", cell("Last Updated"))
	assert.Equal(t, StatusApproved, cell("Status"))
}

func TestWriteVSRsToXlsx_EmptyRecord(t *testing.T) {
	// A zero-value record must render, not panic: absent values become empty
	// strings.
	rows := exportRows(t, []VSR{{}}, nil)
	require.Len(t, rows, 2)

	for i, header := range expectedHeaders {
		switch header {
		case "Age":
			if i < len(rows[1]) {
				assert.Equal(t, "0", rows[1][i])
			}
		case "Service Connected", "Pet Companion":
			if i < len(rows[1]) {
				assert.Equal(t, "no", rows[1][i])
			}
		}
	}
}

func TestWriteVSRsToXlsx_DoesNotMutateInput(t *testing.T) {
	vsr := VSR{
		Name: "Immutable Veteran",
		SelectedFurnitureItems: []FurnitureInput{
			{FurnitureItemID: "a", Quantity: 1},
		},
	}
	furniture := map[string]FurnitureItem{}

	_, err := WriteVSRsToXlsx([]VSR{vsr}, furniture)
	require.NoError(t, err)

	assert.Equal(t, "Immutable Veteran", vsr.Name)
	assert.Len(t, furniture, 0)
}

func TestXlsxExportFilename(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, "vsrs_2024-05-06T07:08:09Z.xlsx", XlsxExportFilename(now))
}
