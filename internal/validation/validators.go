// Package validation holds the field and record validators run on every
// create/update before anything reaches the store. Field validators are pure;
// record validators look up referenced rows. The first failure aborts the
// write and its message is surfaced verbatim.
package validation

import (
	"errors"
	"regexp"
	"time"

	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/apperrors"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

var (
	alphanumericPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
	phonePattern        = regexp.MustCompile(`^\d{10}$|^\d{12}$`)
)

// DateLayout is the wire format for all date fields.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date from a request body.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Validation("Date must be in YYYY-MM-DD format")
	}
	return t, nil
}

// Today returns the current date truncated to midnight UTC, the reference
// point for licence-expiry checks.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// RegistrationNumber requires a plate with letters and digits only.
func RegistrationNumber(value string) error {
	if !alphanumericPattern.MatchString(value) {
		return apperrors.Validation("Registration number must be alphanumeric")
	}
	return nil
}

// LicenceExpiryDate requires a date strictly after today.
func LicenceExpiryDate(value time.Time) error {
	if !value.After(Today()) {
		return apperrors.Validation("Licence expiry date must be in the future")
	}
	return nil
}

// Amount requires a strictly positive money value.
func Amount(value float64) error {
	if value <= 0 {
		return apperrors.Validation("Amount must be greater than zero")
	}
	return nil
}

// PhoneNumber accepts digits only, 10 or 12 of them (07XXXXXXXX or
// 2547XXXXXXXXX forms).
func PhoneNumber(value string) error {
	if !phonePattern.MatchString(value) {
		return apperrors.Validation("Phone number must be numeric and either 10 or 12 digits long")
	}
	return nil
}

// OwnerPhoneUnique rejects a phone number already registered to another
// owner. excludeID skips the record being updated.
func OwnerPhoneUnique(db *gorm.DB, phone string, excludeID uint) error {
	var count int64
	q := db.Model(&models.MatatuOwner{}).Where("phone_number = ?", phone)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Validation("This phone number is already registered")
	}
	return nil
}

// matatuActive fetches a matatu and checks its active flag.
func matatuActive(db *gorm.DB, id uint, message string) error {
	var m models.Matatu
	if err := db.First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation(message)
		}
		return err
	}
	if !m.Active {
		return apperrors.Validation(message)
	}
	return nil
}

// AssignedMatatu checks the matatu a driver (or manager) is being attached
// to. A nil reference is fine; the assignment is optional.
func AssignedMatatu(db *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}
	return matatuActive(db, *id, "Assigned matatu is not active")
}

// MatatuRef checks the matatu a revenue or expense record points at.
func MatatuRef(db *gorm.DB, id uint) error {
	return matatuActive(db, id, "The matatu is not active")
}

// RouteRef checks the route a matatu or revenue rollup points at.
func RouteRef(db *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}
	var r models.Route
	if err := db.First(&r, *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("The route is not active")
		}
		return err
	}
	if !r.Active {
		return apperrors.Validation("The route is not active")
	}
	return nil
}

// AssignedDriver checks the driver a conductor is being paired with. Active
// here means the row exists and is not soft-deleted.
func AssignedDriver(db *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}
	var d models.Driver
	if err := db.First(&d, *id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.Validation("Assigned driver is not active")
		}
		return err
	}
	return nil
}

// ManagedMatatus checks every matatu in a manager's assignment list.
func ManagedMatatus(db *gorm.DB, ids []uint) error {
	for _, id := range ids {
		if err := matatuActive(db, id, "All managed matatus must be active"); err != nil {
			return err
		}
	}
	return nil
}
