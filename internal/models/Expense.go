package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	MatatuID    uint      `json:"matatu_id" gorm:"not null;index"`
	Matatu      Matatu    `gorm:"foreignKey:MatatuID" json:"matatu,omitempty"`
	ExpenseType string    `json:"expense_type" gorm:"not null"`
	Amount      float64   `json:"amount" gorm:"not null"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" gorm:"type:date;index"`
	LoggedByID  *uint     `json:"logged_by_id"`
	LoggedBy    *User     `gorm:"foreignKey:LoggedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"logged_by,omitempty"`
}
