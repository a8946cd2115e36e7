package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

type createRouteInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateRouteInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"is_active"`
}

func CreateRoute(c *gin.Context) {
	var input createRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid route input: " + err.Error()})
		return
	}

	route := models.Route{Name: input.Name, Description: input.Description, Active: true}
	if err := config.DB.Create(&route).Error; err != nil {
		respondStoreError(c, err, "A route with this name already exists")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"route": route})
}

func ListRoutes(c *gin.Context) {
	var routes []models.Route
	if err := config.DB.Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing routes: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": routes})
}

func GetRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route models.Route
	if err := config.DB.Preload("Matatus").First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

func UpdateRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route models.Route
	if err := config.DB.First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateRouteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}
	if input.Name != nil {
		route.Name = *input.Name
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
	if input.Active != nil {
		route.Active = *input.Active
	}

	if err := config.DB.Save(&route).Error; err != nil {
		respondStoreError(c, err, "A route with this name already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}

// DeleteRoute detaches assigned matatus (route_id set NULL) and removes the
// route's revenue rollups, then the route itself.
func DeleteRoute(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var route models.Route
	if err := config.DB.First(&route, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
			return
		}
		respondError(c, err)
		return
	}

	// Hard deletes so the route name and rollup date keys are reusable.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Matatu{}).Where("route_id = ?", route.ID).
			Update("route_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("route_id = ?", route.ID).Delete(&models.RouteRevenue{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("route_id = ?", route.ID).Delete(&models.MatatuRouteRevenue{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&route).Error
	})
	if err != nil {
		logrus.WithError(err).Error("route delete transaction failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Route deleted"})
}
