package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/database"
	. "github.com/benjaminJohnson2204/PAP-Inventory-Processing/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) database.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(&VSR{}, &FurnitureItem{}, &User{}))

	return database.DB{SQL: gormDB}
}

func makeVSR(name, zip, incomeLevel, status string) VSR {
	now := time.Now().UTC()
	return VSR{
		Name:             name,
		Gender:           "Male",
		Age:              40,
		MaritalStatus:    "Single",
		Ethnicity:        []string{"Caucasian"},
		EmploymentStatus: "Employed",
		IncomeLevel:      incomeLevel,
		SizeOfHome:       "Apartment",
		StreetAddress:    "1 Main St",
		City:             "San Diego",
		State:            "CA",
		ZipCode:          NumericString(zip),
		PhoneNumber:      "619-555-0100",
		Email:            name + "@example.com",
		Branch:           []string{"Navy"},
		Conflicts:        []string{"Iraq"},
		DischargeStatus:  "Honorable",
		LastRank:         "Seaman",
		MilitaryID:       "1234",
		HearFrom:         "VA",
		SelectedFurnitureItems: []FurnitureInput{
			{FurnitureItemID: "item-1", Quantity: 1},
		},
		DateReceived: now,
		LastUpdated:  now,
		Status:       status,
	}
}

func TestVSRRepository_GetAll_Filters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	alice := makeVSR("Alice Anderson", "94101", IncomeBracketKeyUnder12k, StatusReceived)
	bob := makeVSR("Bob Brown", "92054", IncomeBracketKey25kTo50k, StatusApproved)
	carol := makeVSR("Carol Anders", "94101", IncomeBracketKey25kTo50k, StatusReceived)

	for _, vsr := range []*VSR{&alice, &bob, &carol} {
		require.NoError(t, repo.Create(ctx, vsr))
	}

	tests := []struct {
		name          string
		filter        VSRFilter
		expectedNames []string
	}{
		{
			name:          "no filters returns all records",
			filter:        VSRFilter{},
			expectedNames: []string{"Alice Anderson", "Bob Brown", "Carol Anders"},
		},
		{
			name:          "search is a case-insensitive substring match",
			filter:        VSRFilter{Search: "anders"},
			expectedNames: []string{"Alice Anderson", "Carol Anders"},
		},
		{
			name:          "status filter is exact",
			filter:        VSRFilter{Status: StatusApproved},
			expectedNames: []string{"Bob Brown"},
		},
		{
			name:          "income level filter is exact",
			filter:        VSRFilter{IncomeLevel: IncomeBracketKey25kTo50k},
			expectedNames: []string{"Bob Brown", "Carol Anders"},
		},
		{
			name:          "zip codes match as a set",
			filter:        VSRFilter{ZipCodes: []string{"94101", "10001"}},
			expectedNames: []string{"Alice Anderson", "Carol Anders"},
		},
		{
			name:          "non-matching zip yields empty result",
			filter:        VSRFilter{ZipCodes: []string{"10001"}},
			expectedNames: []string{},
		},
		{
			name: "filters combine with AND",
			filter: VSRFilter{
				Search:      "anders",
				Status:      StatusReceived,
				IncomeLevel: IncomeBracketKey25kTo50k,
				ZipCodes:    []string{"94101"},
			},
			expectedNames: []string{"Carol Anders"},
		},
		{
			name: "explicit ids override every other filter",
			filter: VSRFilter{
				IDs:    []string{alice.ID, bob.ID},
				Status: StatusApproved,
				Search: "no such name",
			},
			expectedNames: []string{"Alice Anderson", "Bob Brown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vsrs, err := repo.GetAll(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(vsrs))
			for _, vsr := range vsrs {
				names = append(names, vsr.Name)
			}
			assert.ElementsMatch(t, tt.expectedNames, names)
		})
	}
}

func TestVSRRepository_GetAll_InsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	for _, name := range []string{"First Veteran", "Second Veteran", "Third Veteran"} {
		vsr := makeVSR(name, "92101", IncomeBracketKeyUnder12k, StatusReceived)
		require.NoError(t, repo.Create(ctx, &vsr))
	}

	vsrs, err := repo.GetAll(ctx, VSRFilter{})
	require.NoError(t, err)
	require.Len(t, vsrs, 3)
	assert.Equal(t, "First Veteran", vsrs[0].Name)
	assert.Equal(t, "Second Veteran", vsrs[1].Name)
	assert.Equal(t, "Third Veteran", vsrs[2].Name)
}

func TestVSRRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	vsr := makeVSR("Dora Diaz", "92101", IncomeBracketKeyUnder12k, StatusReceived)
	require.NoError(t, repo.Create(ctx, &vsr))

	fetched, err := repo.GetByID(ctx, vsr.ID)
	require.NoError(t, err)
	assert.Equal(t, vsr.Name, fetched.Name)
	assert.Equal(t, vsr.SelectedFurnitureItems, fetched.SelectedFurnitureItems)

	_, err = repo.GetByID(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVSRRepository_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	vsr := makeVSR("Evan Edwards", "92101", IncomeBracketKeyUnder12k, StatusReceived)
	require.NoError(t, repo.Create(ctx, &vsr))

	updatedAt := vsr.LastUpdated.Add(1 * time.Hour)
	updated, err := repo.UpdateStatus(ctx, vsr.ID, StatusApproved, updatedAt)
	require.NoError(t, err)

	assert.Equal(t, StatusApproved, updated.Status)
	assert.True(t, updated.LastUpdated.After(vsr.DateReceived))
	assert.Equal(t, vsr.DateReceived.Unix(), updated.DateReceived.Unix(), "dateReceived is immutable")
}

func TestVSRRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	_, err := repo.UpdateStatus(ctx, "missing-id", StatusApproved, time.Now().UTC())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVSRRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewVSR(db)
	ctx := context.Background()

	vsr := makeVSR("Fred Fisher", "92101", IncomeBracketKeyUnder12k, StatusReceived)
	require.NoError(t, repo.Create(ctx, &vsr))

	require.NoError(t, repo.Delete(ctx, vsr.ID))

	_, err := repo.GetByID(ctx, vsr.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, vsr.ID), ErrNotFound, "second delete reports not found")
}

func TestFurnitureItemRepository_GetAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFurnitureItem(db)
	ctx := context.Background()

	items := []FurnitureItem{
		{Name: "Couch", Category: "living room", AllowMultiple: false, CategoryIndex: 1},
		{Name: "Bed Frame", Category: "bedroom", AllowMultiple: true, CategoryIndex: 0},
		{Name: "Lamp", Category: "living room", AllowMultiple: true, CategoryIndex: 0},
	}
	for i := range items {
		require.NoError(t, db.SQL.Create(&items[i]).Error)
	}

	fetched, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, fetched, 3)

	// Display order: category, then index within category.
	assert.Equal(t, "Bed Frame", fetched[0].Name)
	assert.Equal(t, "Lamp", fetched[1].Name)
	assert.Equal(t, "Couch", fetched[2].Name)
}

func TestUserRepository_GetByUID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUser(db)
	ctx := context.Background()

	user := User{UID: "firebase-uid-1", Role: RoleAdmin}
	require.NoError(t, db.SQL.Create(&user).Error)

	fetched, err := repo.GetByUID(ctx, "firebase-uid-1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, fetched.Role)

	_, err = repo.GetByUID(ctx, "unknown-uid")
	assert.ErrorIs(t, err, ErrNotFound)
}
