package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

type createRevenueInput struct {
	MatatuID uint `json:"matatu_id" binding:"required"`
	// No binding tag: zero must reach the amount validator, not the binder.
	AmountCollected float64 `json:"amount_collected"`
	// Date defaults to today when omitted.
	Date string `json:"date"`
}

type updateRevenueInput struct {
	AmountCollected *float64 `json:"amount_collected"`
	Date            *string  `json:"date"`
}

// CreateRevenue logs a day's takings for one matatu. The caller becomes the
// logged_by reference; one record per matatu per day.
func CreateRevenue(c *gin.Context) {
	var input createRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid revenue input: " + err.Error()})
		return
	}

	if err := validation.Amount(input.AmountCollected); err != nil {
		respondError(c, err)
		return
	}
	if err := validation.MatatuRef(config.DB, input.MatatuID); err != nil {
		respondError(c, err)
		return
	}

	var date time.Time
	if input.Date == "" {
		date = validation.Today()
	} else {
		var err error
		date, err = validation.ParseDate(input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	identity := middleware.CurrentIdentity(c)
	loggedBy := identity.UserID

	revenue := models.Revenue{
		MatatuID:        input.MatatuID,
		AmountCollected: input.AmountCollected,
		Date:            date,
		LoggedByID:      &loggedBy,
	}
	if err := config.DB.Create(&revenue).Error; err != nil {
		respondStoreError(c, err, "A revenue record already exists for this matatu and date")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"revenue": revenue})
}

func ListRevenues(c *gin.Context) {
	var revenues []models.Revenue
	if err := config.DB.Preload("Matatu").Find(&revenues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing revenues: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": revenues})
}

func GetRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var revenue models.Revenue
	if err := config.DB.Preload("Matatu").First(&revenue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Revenue record not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

func UpdateRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var revenue models.Revenue
	if err := config.DB.First(&revenue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Revenue record not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateRevenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.AmountCollected != nil {
		if err := validation.Amount(*input.AmountCollected); err != nil {
			respondError(c, err)
			return
		}
		revenue.AmountCollected = *input.AmountCollected
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		revenue.Date = date
	}

	if err := config.DB.Save(&revenue).Error; err != nil {
		respondStoreError(c, err, "A revenue record already exists for this matatu and date")
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

func DeleteRevenue(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var revenue models.Revenue
	if err := config.DB.First(&revenue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Revenue record not found"})
			return
		}
		respondError(c, err)
		return
	}

	// Hard delete: a soft-deleted row would keep holding the (matatu, date)
	// unique key and block re-logging the corrected figure.
	if err := config.DB.Unscoped().Delete(&revenue).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Revenue record deleted"})
}
