package models

import (
	"time"

	"gorm.io/gorm"
)

// Revenue is a daily takings record for one matatu. One row per matatu per
// day, enforced by the composite unique index.
type Revenue struct {
	gorm.Model
	MatatuID        uint      `json:"matatu_id" gorm:"not null;uniqueIndex:idx_revenues_matatu_date"`
	Matatu          Matatu    `gorm:"foreignKey:MatatuID" json:"matatu,omitempty"`
	AmountCollected float64   `json:"amount_collected" gorm:"not null"`
	Date            time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_revenues_matatu_date;index"`
	LoggedByID      *uint     `json:"logged_by_id"`
	LoggedBy        *User     `gorm:"foreignKey:LoggedByID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"logged_by,omitempty"`
}
