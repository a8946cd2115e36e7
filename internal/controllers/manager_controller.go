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

type createManagerInput struct {
	UserID            uint   `json:"user_id" binding:"required"`
	PhoneNumber       string `json:"phone_number" binding:"required"`
	AssignedMatatuIDs []uint `json:"assigned_matatu_ids"`
}

type updateManagerInput struct {
	PhoneNumber       *string `json:"phone_number"`
	AssignedMatatuIDs *[]uint `json:"assigned_matatu_ids"`
}

// loadMatatus fetches the full set of matatus behind an id list.
func loadMatatus(db *gorm.DB, ids []uint) ([]models.Matatu, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var matatus []models.Matatu
	if err := db.Find(&matatus, ids).Error; err != nil {
		return nil, err
	}
	return matatus, nil
}

func CreateManager(c *gin.Context) {
	var input createManagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manager input: " + err.Error()})
		return
	}

	if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
		respondError(c, err)
		return
	}
	if err := validation.ManagedMatatus(config.DB, input.AssignedMatatuIDs); err != nil {
		respondError(c, err)
		return
	}
	matatus, err := loadMatatus(config.DB, input.AssignedMatatuIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	manager := models.Manager{
		UserID:          input.UserID,
		PhoneNumber:     input.PhoneNumber,
		AssignedMatatus: matatus,
	}
	if err := config.DB.Create(&manager).Error; err != nil {
		respondStoreError(c, err, "User already has a manager profile")
		return
	}

	config.DB.Preload("User").Preload("AssignedMatatus").First(&manager, manager.ID)
	c.JSON(http.StatusCreated, gin.H{"manager": manager})
}

func ListManagers(c *gin.Context) {
	var managers []models.Manager
	if err := config.DB.Preload("User").Preload("AssignedMatatus").Find(&managers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing managers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": managers})
}

func GetManager(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var manager models.Manager
	if err := config.DB.Preload("User").Preload("AssignedMatatus").First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"manager": manager})
}

func UpdateManager(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var manager models.Manager
	if err := config.DB.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateManagerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	// Validate the whole payload before touching the store so a rejected
	// assignment list cannot leave a half-applied update behind.
	if input.PhoneNumber != nil {
		if err := validation.PhoneNumber(*input.PhoneNumber); err != nil {
			respondError(c, err)
			return
		}
		manager.PhoneNumber = *input.PhoneNumber
	}
	var matatus []models.Matatu
	if input.AssignedMatatuIDs != nil {
		if err := validation.ManagedMatatus(config.DB, *input.AssignedMatatuIDs); err != nil {
			respondError(c, err)
			return
		}
		var err error
		matatus, err = loadMatatus(config.DB, *input.AssignedMatatuIDs)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&manager).Error; err != nil {
			return err
		}
		if input.AssignedMatatuIDs != nil {
			return tx.Model(&manager).Association("AssignedMatatus").Replace(matatus)
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}

	config.DB.Preload("User").Preload("AssignedMatatus").First(&manager, manager.ID)
	c.JSON(http.StatusOK, gin.H{"manager": manager})
}

func DeleteManager(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var manager models.Manager
	if err := config.DB.First(&manager, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Manager not found"})
			return
		}
		respondError(c, err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&manager).Association("AssignedMatatus").Clear(); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&manager).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Manager deleted"})
}
