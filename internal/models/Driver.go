// internal/models/driver.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Driver struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User              User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhoneNumber       string    `json:"phone_number"`
	AssignedMatatuID  *uint     `json:"assigned_matatu_id" gorm:"uniqueIndex"`
	AssignedMatatu    *Matatu   `gorm:"foreignKey:AssignedMatatuID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assigned_matatu,omitempty"`
	LicenceExpiryDate time.Time `json:"licence_expiry_date" gorm:"type:date"`
}

func (d *Driver) LicenceExpired() bool {
	return d.LicenceExpiryDate.Before(time.Now().Truncate(24 * time.Hour))
}
