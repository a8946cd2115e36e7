package models

import "gorm.io/gorm"

// Manager profile; a manager oversees a set of matatus (many-to-many).
type Manager struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	PhoneNumber string `json:"phone_number"`

	AssignedMatatus []Matatu `gorm:"many2many:manager_matatus;" json:"assigned_matatus,omitempty"`
}
