package models

import (
	"time"

	"gorm.io/gorm"
)

type Conductor struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User              User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhoneNumber       string    `json:"phone_number"`
	AssignedDriverID  *uint     `json:"assigned_driver_id" gorm:"uniqueIndex"`
	AssignedDriver    *Driver   `gorm:"foreignKey:AssignedDriverID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"assigned_driver,omitempty"`
	LicenceExpiryDate time.Time `json:"licence_expiry_date" gorm:"type:date"`
}

func (co *Conductor) LicenceExpired() bool {
	return co.LicenceExpiryDate.Before(time.Now().Truncate(24 * time.Hour))
}
