package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"github.com/xuri/excelize/v2"
)

const (
	vsrSheetName = "VSRs"

	// Rendered in place of a furniture selection whose catalog entry no
	// longer exists. A dangling reference degrades the one cell, never the
	// whole export.
	unknownFurnitureToken = "[unknown]"
)

type vsrColumn struct {
	header string
	value  func(vsr *VSR, furniture map[string]FurnitureItem) string
}

// vsrColumns is the fixed export projection. Staff rely on stable column
// positions, so the order here is a contract: demographics, then address and
// contact, then military background, then furniture and additional items,
// then lifecycle metadata.
var vsrColumns = []vsrColumn{
	{"Name", func(v *VSR, _ map[string]FurnitureItem) string { return v.Name }},
	{"Gender", func(v *VSR, _ map[string]FurnitureItem) string { return v.Gender }},
	{"Age", func(v *VSR, _ map[string]FurnitureItem) string { return strconv.Itoa(v.Age) }},
	{"Marital Status", func(v *VSR, _ map[string]FurnitureItem) string { return v.MaritalStatus }},
	{"Spouse Name", func(v *VSR, _ map[string]FurnitureItem) string { return optionalString(v.SpouseName) }},
	{"Ages of Boys", func(v *VSR, _ map[string]FurnitureItem) string { return joinInts(v.AgesOfBoys) }},
	{"Ages of Girls", func(v *VSR, _ map[string]FurnitureItem) string { return joinInts(v.AgesOfGirls) }},
	{"Ethnicity", func(v *VSR, _ map[string]FurnitureItem) string { return strings.Join(v.Ethnicity, ", ") }},
	{"Employment Status", func(v *VSR, _ map[string]FurnitureItem) string { return v.EmploymentStatus }},
	{"Income Level", func(v *VSR, _ map[string]FurnitureItem) string { return v.IncomeLevel }},
	{"Size of Home", func(v *VSR, _ map[string]FurnitureItem) string { return v.SizeOfHome }},
	{"Street Address", func(v *VSR, _ map[string]FurnitureItem) string { return v.StreetAddress }},
	{"City", func(v *VSR, _ map[string]FurnitureItem) string { return v.City }},
	{"State", func(v *VSR, _ map[string]FurnitureItem) string { return v.State }},
	{"Zip Code", func(v *VSR, _ map[string]FurnitureItem) string { return v.ZipCode.String() }},
	{"Phone Number", func(v *VSR, _ map[string]FurnitureItem) string { return v.PhoneNumber }},
	{"Email", func(v *VSR, _ map[string]FurnitureItem) string { return v.Email }},
	{"Branch", func(v *VSR, _ map[string]FurnitureItem) string { return strings.Join(v.Branch, ", ") }},
	{"Conflicts", func(v *VSR, _ map[string]FurnitureItem) string { return strings.Join(v.Conflicts, ", ") }},
	{"Discharge Status", func(v *VSR, _ map[string]FurnitureItem) string { return v.DischargeStatus }},
	{"Service Connected", func(v *VSR, _ map[string]FurnitureItem) string { return yesNo(v.ServiceConnected) }},
	{"Last Rank", func(v *VSR, _ map[string]FurnitureItem) string { return v.LastRank }},
	{"Military ID", func(v *VSR, _ map[string]FurnitureItem) string { return v.MilitaryID.String() }},
	{"Pet Companion", func(v *VSR, _ map[string]FurnitureItem) string { return yesNo(v.PetCompanion) }},
	{"How Did You Hear About Us", func(v *VSR, _ map[string]FurnitureItem) string { return v.HearFrom }},
	{"Selected Furniture Items", formatFurnitureSelections},
	{"Additional Items", func(v *VSR, _ map[string]FurnitureItem) string { return v.AdditionalItems }},
	{"Date Received", func(v *VSR, _ map[string]FurnitureItem) string { return formatTime(v.DateReceived) }},
	{"Last Updated", func(v *VSR, _ map[string]FurnitureItem) string { return formatTime(v.LastUpdated) }},
	{"Status", func(v *VSR, _ map[string]FurnitureItem) string { return v.Status }},
}

// WriteVSRsToXlsx renders the records into a spreadsheet using the fixed
// column projection. Neither the records nor the catalog are mutated.
func WriteVSRsToXlsx(vsrs []VSR, furniture map[string]FurnitureItem) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := file.SetSheetName(file.GetSheetName(0), vsrSheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := make([]any, len(vsrColumns))
	for i, column := range vsrColumns {
		headers[i] = column.header
	}
	if err := file.SetSheetRow(vsrSheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	headerStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = file.SetRowStyle(vsrSheetName, 1, 1, headerStyle)
	}

	for i := range vsrs {
		cells := make([]any, len(vsrColumns))
		for j, column := range vsrColumns {
			cells[j] = column.value(&vsrs[i], furniture)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute row cell: %w", err)
		}
		if err := file.SetSheetRow(vsrSheetName, cell, &cells); err != nil {
			return nil, fmt.Errorf("failed to write record row: %w", err)
		}
	}

	return file, nil
}

// XlsxExportFilename builds the attachment filename with the export instant
// embedded, matching the dashboard's download naming.
func XlsxExportFilename(now time.Time) string {
	return fmt.Sprintf("vsrs_%s.xlsx", now.UTC().Format(time.RFC3339))
}

func formatFurnitureSelections(vsr *VSR, furniture map[string]FurnitureItem) string {
	entries := make([]string, len(vsr.SelectedFurnitureItems))
	for i, selection := range vsr.SelectedFurnitureItems {
		item, ok := furniture[selection.FurnitureItemID]
		if !ok {
			entries[i] = unknownFurnitureToken
			continue
		}
		entries[i] = fmt.Sprintf("%s: %d", item.Name, selection.Quantity)
	}
	return strings.Join(entries, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, ", ")
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func optionalString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.UTC().Format(time.RFC3339)
}
