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

type createDriverInput struct {
	UserID            uint   `json:"user_id" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	AssignedMatatuID  *uint  `json:"assigned_matatu_id"`
	LicenceExpiryDate string `json:"licence_expiry_date" binding:"required"`
}

type updateDriverInput struct {
	PhoneNumber       *string `json:"phone_number"`
	AssignedMatatuID  *uint   `json:"assigned_matatu_id"`
	LicenceExpiryDate *string `json:"licence_expiry_date"`
}

func CreateDriver(c *gin.Context) {
	var input createDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver input: " + err.Error()})
		return
	}

	if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}
	expiry, err := validation.ParseDate(input.LicenceExpiryDate)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := validation.LicenceExpiryDate(expiry); err != nil {
		respondError(c, err)
		return
	}
	if err := validation.AssignedMatatu(config.DB, input.AssignedMatatuID); err != nil {
		respondError(c, err)
		return
	}

	driver := models.Driver{
		UserID:            input.UserID,
		PhoneNumber:       input.PhoneNumber,
		AssignedMatatuID:  input.AssignedMatatuID,
		LicenceExpiryDate: expiry,
	}
	if err := config.DB.Create(&driver).Error; err != nil {
		respondStoreError(c, err, "User already has a driver profile or the matatu already has a driver")
		return
	}

	config.DB.Preload("User").Preload("AssignedMatatu").First(&driver, driver.ID)
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func ListDrivers(c *gin.Context) {
	var drivers []models.Driver
	if err := config.DB.Preload("User").Preload("AssignedMatatu").Find(&drivers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing drivers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": drivers})
}

func GetDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.Preload("User").Preload("AssignedMatatu").First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

func UpdateDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateDriverInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.PhoneNumber != nil {
		if err := validation.PhoneNumber(*input.PhoneNumber); err != nil {
			respondError(c, err)
			return
		}
		driver.PhoneNumber = *input.PhoneNumber
	}
	if input.LicenceExpiryDate != nil {
		expiry, err := validation.ParseDate(*input.LicenceExpiryDate)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := validation.LicenceExpiryDate(expiry); err != nil {
			respondError(c, err)
			return
		}
		driver.LicenceExpiryDate = expiry
	}
	if input.AssignedMatatuID != nil {
		if err := validation.AssignedMatatu(config.DB, input.AssignedMatatuID); err != nil {
			respondError(c, err)
			return
		}
		driver.AssignedMatatuID = input.AssignedMatatuID
	}

	if err := config.DB.Save(&driver).Error; err != nil {
		respondStoreError(c, err, "The matatu already has a driver")
		return
	}
	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DeleteDriver removes the profile and unpairs any conductor first.
func DeleteDriver(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var driver models.Driver
	if err := config.DB.First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver not found"})
			return
		}
		respondError(c, err)
		return
	}

	// Hard delete frees the user for a future replacement profile.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Conductor{}).Where("assigned_driver_id = ?", driver.ID).
			Update("assigned_driver_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&driver).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver deleted"})
}
