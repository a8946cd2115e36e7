package models

import (
	"time"

	"gorm.io/gorm"
)

// MatatuRouteRevenue breaks a route's daily revenue down per vehicle.
type MatatuRouteRevenue struct {
	gorm.Model
	MatatuID         uint      `json:"matatu_id" gorm:"not null;uniqueIndex:idx_matatu_route_revenues_key"`
	Matatu           Matatu    `gorm:"foreignKey:MatatuID" json:"matatu,omitempty"`
	RouteID          uint      `json:"route_id" gorm:"not null;uniqueIndex:idx_matatu_route_revenues_key"`
	Route            Route     `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	RevenueCollected float64   `json:"revenue_collected" gorm:"not null"`
	Date             time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_matatu_route_revenues_key"`
}
