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

type createConductorInput struct {
	UserID            uint   `json:"user_id" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	AssignedDriverID  *uint  `json:"assigned_driver_id"`
	LicenceExpiryDate string `json:"licence_expiry_date" binding:"required"`
}

type updateConductorInput struct {
	PhoneNumber       *string `json:"phone_number"`
	AssignedDriverID  *uint   `json:"assigned_driver_id"`
	LicenceExpiryDate *string `json:"licence_expiry_date"`
}

func CreateConductor(c *gin.Context) {
	var input createConductorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid conductor input: " + err.Error()})
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
	if err := validation.AssignedDriver(config.DB, input.AssignedDriverID); err != nil {
		respondError(c, err)
		return
	}

	conductor := models.Conductor{
		UserID:            input.UserID,
		PhoneNumber:       input.PhoneNumber,
		AssignedDriverID:  input.AssignedDriverID,
		LicenceExpiryDate: expiry,
	}
	if err := config.DB.Create(&conductor).Error; err != nil {
		respondStoreError(c, err, "User already has a conductor profile or the driver already has a conductor")
		return
	}

	config.DB.Preload("User").Preload("AssignedDriver").First(&conductor, conductor.ID)
	c.JSON(http.StatusCreated, gin.H{"conductor": conductor})
}

func ListConductors(c *gin.Context) {
	var conductors []models.Conductor
	if err := config.DB.Preload("User").Preload("AssignedDriver").Find(&conductors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing conductors: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": conductors})
}

func GetConductor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var conductor models.Conductor
	if err := config.DB.Preload("User").Preload("AssignedDriver").First(&conductor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conductor not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conductor": conductor})
}

func UpdateConductor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var conductor models.Conductor
	if err := config.DB.First(&conductor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conductor not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateConductorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.PhoneNumber != nil {
		if err := validation.PhoneNumber(*input.PhoneNumber); err != nil {
			respondError(c, err)
			return
		}
		conductor.PhoneNumber = *input.PhoneNumber
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
		conductor.LicenceExpiryDate = expiry
	}
	if input.AssignedDriverID != nil {
		if err := validation.AssignedDriver(config.DB, input.AssignedDriverID); err != nil {
			respondError(c, err)
			return
		}
		conductor.AssignedDriverID = input.AssignedDriverID
	}

	if err := config.DB.Save(&conductor).Error; err != nil {
		respondStoreError(c, err, "The driver already has a conductor")
		return
	}
	c.JSON(http.StatusOK, gin.H{"conductor": conductor})
}

func DeleteConductor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var conductor models.Conductor
	if err := config.DB.First(&conductor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conductor not found"})
			return
		}
		respondError(c, err)
		return
	}

	if err := config.DB.Unscoped().Delete(&conductor).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conductor deleted"})
}
