package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

// Handlers for the two revenue-rollup entities: RouteRevenue (per route per
// day) and MatatuRouteRevenue (per matatu per route per day).

type createRouteRevenueInput struct {
	RouteID      uint    `json:"route_id" binding:"required"`
	TotalRevenue float64 `json:"total_revenue"`
	Date         string  `json:"date" binding:"required"`
}

func CreateRouteRevenue(c *gin.Context) {
	var input createRouteRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route revenue input: " + err.Error()})
		return
	}

	if err := validation.Amount(input.TotalRevenue); err != nil {
		respondError(c, err)
		return
	}
	routeID := input.RouteID
	if err := validation.RouteRef(config.DB, &routeID); err != nil {
		respondError(c, err)
		return
	}
	date, err := validation.ParseDate(input.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	rollup := models.RouteRevenue{
		RouteID:      input.RouteID,
		TotalRevenue: input.TotalRevenue,
		Date:         date,
	}
	if err := config.DB.Create(&rollup).Error; err != nil {
		respondStoreError(c, err, "A revenue rollup already exists for this route and date")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"route_revenue": rollup})
}

func ListRouteRevenues(c *gin.Context) {
	var rollups []models.RouteRevenue
	if err := config.DB.Preload("Route").Find(&rollups).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing route revenues: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rollups})
}

func GetRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rollup models.RouteRevenue
	if err := config.DB.Preload("Route").First(&rollup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route_revenue": rollup})
}

type updateRouteRevenueInput struct {
	TotalRevenue *float64 `json:"total_revenue"`
	Date         *string  `json:"date"`
}

func UpdateRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rollup models.RouteRevenue
	if err := config.DB.First(&rollup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateRouteRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.TotalRevenue != nil {
		if err := validation.Amount(*input.TotalRevenue); err != nil {
			respondError(c, err)
			return
		}
		rollup.TotalRevenue = *input.TotalRevenue
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		rollup.Date = date
	}

	if err := config.DB.Save(&rollup).Error; err != nil {
		respondStoreError(c, err, "A revenue rollup already exists for this route and date")
		return
	}
	c.JSON(http.StatusOK, gin.H{"route_revenue": rollup})
}

func DeleteRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var rollup models.RouteRevenue
	if err := config.DB.First(&rollup, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}
	// Hard delete so the (route, date) key is free for a corrected rollup.
	if err := config.DB.Unscoped().Delete(&rollup).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Route revenue deleted"})
}

type createMatatuRouteRevenueInput struct {
	MatatuID         uint    `json:"matatu_id" binding:"required"`
	RouteID          uint    `json:"route_id" binding:"required"`
	RevenueCollected float64 `json:"revenue_collected"`
	Date             string  `json:"date" binding:"required"`
}

func CreateMatatuRouteRevenue(c *gin.Context) {
	var input createMatatuRouteRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid matatu route revenue input: " + err.Error()})
		return
	}

	if err := validation.Amount(input.RevenueCollected); err != nil {
		respondError(c, err)
		return
	}
	if err := validation.MatatuRef(config.DB, input.MatatuID); err != nil {
		respondError(c, err)
		return
	}
	routeID := input.RouteID
	if err := validation.RouteRef(config.DB, &routeID); err != nil {
		respondError(c, err)
		return
	}
	date, err := validation.ParseDate(input.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	share := models.MatatuRouteRevenue{
		MatatuID:         input.MatatuID,
		RouteID:          input.RouteID,
		RevenueCollected: input.RevenueCollected,
		Date:             date,
	}
	if err := config.DB.Create(&share).Error; err != nil {
		respondStoreError(c, err, "A revenue share already exists for this matatu, route and date")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"matatu_route_revenue": share})
}

func ListMatatuRouteRevenues(c *gin.Context) {
	var shares []models.MatatuRouteRevenue
	if err := config.DB.Preload("Matatu").Preload("Route").Find(&shares).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing matatu route revenues: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": shares})
}

func GetMatatuRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var share models.MatatuRouteRevenue
	if err := config.DB.Preload("Matatu").Preload("Route").First(&share, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matatu_route_revenue": share})
}

type updateMatatuRouteRevenueInput struct {
	RevenueCollected *float64 `json:"revenue_collected"`
	Date             *string  `json:"date"`
}

func UpdateMatatuRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var share models.MatatuRouteRevenue
	if err := config.DB.First(&share, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateMatatuRouteRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.RevenueCollected != nil {
		if err := validation.Amount(*input.RevenueCollected); err != nil {
			respondError(c, err)
			return
		}
		share.RevenueCollected = *input.RevenueCollected
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		share.Date = date
	}

	if err := config.DB.Save(&share).Error; err != nil {
		respondStoreError(c, err, "A revenue share already exists for this matatu, route and date")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matatu_route_revenue": share})
}

func DeleteMatatuRouteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var share models.MatatuRouteRevenue
	if err := config.DB.First(&share, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu route revenue not found"})
			return
		}
		respondError(c, err)
		return
	}
	if err := config.DB.Unscoped().Delete(&share).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Matatu route revenue deleted"})
}
