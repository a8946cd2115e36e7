package validation

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/apperrors"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Route{},
		&models.MatatuOwner{},
		&models.Matatu{},
		&models.Driver{},
	))
	return db
}

func TestRegistrationNumber(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"KAA123A", true},
		{"kbz456x", true},
		{"123456", true},
		{"KA@123", false},
		{"KAA 123A", false},
		{"KAA-123", false},
		{"", false},
	}
	for _, tc := range cases {
		err := RegistrationNumber(tc.value)
		if tc.ok {
			assert.NoError(t, err, tc.value)
		} else {
			require.Error(t, err, tc.value)
			assert.Equal(t, "Registration number must be alphanumeric", err.Error())
			assert.True(t, apperrors.IsValidation(err))
		}
	}
}

func TestLicenceExpiryDate(t *testing.T) {
	assert.NoError(t, LicenceExpiryDate(Today().AddDate(1, 0, 0)))
	assert.NoError(t, LicenceExpiryDate(Today().AddDate(0, 0, 1)))

	for _, value := range []time.Time{
		Today(),
		Today().AddDate(0, 0, -1),
		Today().AddDate(-1, 0, 0),
	} {
		err := LicenceExpiryDate(value)
		require.Error(t, err, value)
		assert.Equal(t, "Licence expiry date must be in the future", err.Error())
	}
}

func TestAmount(t *testing.T) {
	assert.NoError(t, Amount(0.01))
	assert.NoError(t, Amount(4500))

	for _, value := range []float64{0, -1, -3500.50} {
		err := Amount(value)
		require.Error(t, err)
		assert.Equal(t, "Amount must be greater than zero", err.Error())
	}
}

func TestPhoneNumber(t *testing.T) {
	assert.NoError(t, PhoneNumber("0712345678"))
	assert.NoError(t, PhoneNumber("254712345678"))

	for _, value := range []string{
		"071234567",     // 9 digits
		"07123456789",   // 11 digits
		"2547123456789", // 13 digits
		"07123456ab",
		"+254712345678",
		"",
	} {
		err := PhoneNumber(value)
		require.Error(t, err, value)
		assert.Equal(t, "Phone number must be numeric and either 10 or 12 digits long", err.Error())
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2027-01-15")
	require.NoError(t, err)
	assert.Equal(t, 2027, d.Year())

	_, err = ParseDate("15/01/2027")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestOwnerPhoneUnique(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Username: "owner1", Email: "owner1@sacco.io", Role: models.RoleOwner, Active: true}
	require.NoError(t, db.Create(&user).Error)
	owner := models.MatatuOwner{UserID: user.ID, PhoneNumber: "0712345678"}
	require.NoError(t, db.Create(&owner).Error)

	err := OwnerPhoneUnique(db, "0712345678", 0)
	require.Error(t, err)
	assert.Equal(t, "This phone number is already registered", err.Error())

	// The record being updated does not collide with itself.
	assert.NoError(t, OwnerPhoneUnique(db, "0712345678", owner.ID))
	assert.NoError(t, OwnerPhoneUnique(db, "0798765432", 0))
}

func TestActiveReferenceChecks(t *testing.T) {
	db := openTestDB(t)

	user := models.User{Username: "owner2", Email: "owner2@sacco.io", Role: models.RoleOwner, Active: true}
	require.NoError(t, db.Create(&user).Error)
	owner := models.MatatuOwner{UserID: user.ID, PhoneNumber: "0700000001"}
	require.NoError(t, db.Create(&owner).Error)

	active := models.Matatu{RegistrationNumber: "KAA111A", Capacity: 14, OwnerID: owner.ID,
		LicenceExpiryDate: Today().AddDate(1, 0, 0), Active: true}
	require.NoError(t, db.Create(&active).Error)
	parked := models.Matatu{RegistrationNumber: "KBB222B", Capacity: 33, OwnerID: owner.ID,
		LicenceExpiryDate: Today().AddDate(1, 0, 0), Active: false}
	require.NoError(t, db.Create(&parked).Error)

	// The store must honor an explicit inactive flag at insert.
	var persisted models.Matatu
	require.NoError(t, db.First(&persisted, parked.ID).Error)
	require.False(t, persisted.Active)

	assert.NoError(t, AssignedMatatu(db, &active.ID))
	assert.NoError(t, AssignedMatatu(db, nil))

	err := AssignedMatatu(db, &parked.ID)
	require.Error(t, err)
	assert.Equal(t, "Assigned matatu is not active", err.Error())

	missing := parked.ID + 100
	err = AssignedMatatu(db, &missing)
	require.Error(t, err)
	assert.Equal(t, "Assigned matatu is not active", err.Error())

	err = MatatuRef(db, parked.ID)
	require.Error(t, err)
	assert.Equal(t, "The matatu is not active", err.Error())
	assert.NoError(t, MatatuRef(db, active.ID))

	route := models.Route{Name: "CBD-Rongai", Active: false}
	require.NoError(t, db.Create(&route).Error)
	err = RouteRef(db, &route.ID)
	require.Error(t, err)
	assert.Equal(t, "The route is not active", err.Error())

	err = ManagedMatatus(db, []uint{active.ID, parked.ID})
	require.Error(t, err)
	assert.Equal(t, "All managed matatus must be active", err.Error())
	assert.NoError(t, ManagedMatatus(db, []uint{active.ID}))
}
