// internal/models/matatu.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type Matatu struct {
	gorm.Model
	RegistrationNumber string     `json:"registration_number" gorm:"uniqueIndex;not null"`
	RouteID            *uint      `json:"route_id" gorm:"index"`
	Capacity           uint       `json:"capacity"`
	OwnerID            uint       `json:"owner_id" gorm:"index;not null"`
	LicenceExpiryDate  time.Time  `json:"licence_expiry_date" gorm:"type:date"`
	Active             bool       `json:"is_active" gorm:"not null"`

	Route *Route      `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"route,omitempty"`
	Owner MatatuOwner `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	// Financial records ride with the vehicle: deleting a matatu cascades.
	Revenues           []Revenue            `gorm:"foreignKey:MatatuID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Expenses           []Expense            `gorm:"foreignKey:MatatuID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	RouteRevenueShares []MatatuRouteRevenue `gorm:"foreignKey:MatatuID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// LicenceExpired reports whether the matatu's licence lapsed before today.
func (m *Matatu) LicenceExpired() bool {
	return m.LicenceExpiryDate.Before(time.Now().Truncate(24 * time.Hour))
}
