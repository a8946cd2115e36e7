package models

import (
	"time"

	"gorm.io/gorm"
)

// RouteRevenue is the daily rollup of all takings on a route.
type RouteRevenue struct {
	gorm.Model
	RouteID      uint      `json:"route_id" gorm:"not null;uniqueIndex:idx_route_revenues_route_date"`
	Route        Route     `gorm:"foreignKey:RouteID" json:"route,omitempty"`
	TotalRevenue float64   `json:"total_revenue" gorm:"not null"`
	Date         time.Time `json:"date" gorm:"type:date;uniqueIndex:idx_route_revenues_route_date"`
}
