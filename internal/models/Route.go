package models

import (
	"gorm.io/gorm"
)

// Route represents a service path operated by the sacco.
// Matatus are assigned to a route; deleting a route detaches them (SET NULL)
// instead of cascading.
type Route struct {
	gorm.Model

	Name        string `json:"name" binding:"required" gorm:"uniqueIndex;not null"`
	Description string `json:"description"`
	Active      bool   `json:"is_active" gorm:"not null"`

	// Associations
	Matatus       []Matatu       `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"matatus,omitempty"`
	RouteRevenues []RouteRevenue `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"route_revenues,omitempty"`
}
