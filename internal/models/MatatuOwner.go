package models

import "gorm.io/gorm"

// MatatuOwner is the owner profile attached 1:1 to a user with the owner role.
type MatatuOwner struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhoneNumber string `json:"phone_number" gorm:"uniqueIndex"`

	Matatus []Matatu `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"matatus,omitempty"`
}
