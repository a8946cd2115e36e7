package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/apperrors"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

type createMatatuInput struct {
	RegistrationNumber string `json:"registration_number" binding:"required"`
	RouteID            *uint  `json:"route_id"`
	Capacity           uint   `json:"capacity" binding:"required"`
	LicenceExpiryDate  string `json:"licence_expiry_date" binding:"required"`
	// OwnerID is honored only when the caller has no owner profile of
	// their own (admin registering a vehicle on an owner's behalf).
	OwnerID *uint `json:"owner_id"`
}

type updateMatatuInput struct {
	RegistrationNumber *string `json:"registration_number"`
	// Raw so an explicit null (detach from route) is distinguishable from
	// an absent field.
	RouteID           json.RawMessage `json:"route_id"`
	Capacity          *uint           `json:"capacity"`
	LicenceExpiryDate *string         `json:"licence_expiry_date"`
	Active            *bool           `json:"is_active"`
}

// CreateMatatu registers a vehicle. The owner is the authenticated caller's
// owner profile when one exists.
func CreateMatatu(c *gin.Context) {
	var input createMatatuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid matatu input: " + err.Error()})
		return
	}

	if err := validation.RegistrationNumber(input.RegistrationNumber); err != nil {
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
	if err := validation.RouteRef(config.DB, input.RouteID); err != nil {
		respondError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	ownerID, err := resolveOwnerID(identity, input.OwnerID)
	if err != nil {
		respondError(c, err)
		return
	}

	matatu := models.Matatu{
		RegistrationNumber: input.RegistrationNumber,
		RouteID:            input.RouteID,
		Capacity:           input.Capacity,
		OwnerID:            ownerID,
		LicenceExpiryDate:  expiry,
		Active:             true,
	}
	if err := config.DB.Create(&matatu).Error; err != nil {
		respondStoreError(c, err, "A matatu with this registration number already exists")
		return
	}

	config.DB.Preload("Route").Preload("Owner").First(&matatu, matatu.ID)
	c.JSON(http.StatusCreated, gin.H{"matatu": matatu})
}

// resolveOwnerID prefers the caller's own owner profile over an explicit id.
func resolveOwnerID(identity authz.Identity, explicit *uint) (uint, error) {
	var owner models.MatatuOwner
	err := config.DB.Where("user_id = ?", identity.UserID).First(&owner).Error
	if err == nil {
		return owner.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	if explicit != nil {
		if err := config.DB.First(&owner, *explicit).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, apperrors.Validation("Owner does not exist")
			}
			return 0, err
		}
		return owner.ID, nil
	}
	return 0, apperrors.Validation("Caller has no owner profile and no owner_id was supplied")
}

func ListMatatus(c *gin.Context) {
	var matatus []models.Matatu
	if err := config.DB.Preload("Route").Preload("Owner").Find(&matatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing matatus: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": matatus})
}

func GetMatatu(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var matatu models.Matatu
	if err := config.DB.Preload("Route").Preload("Owner").First(&matatu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matatu": matatu})
}

// UpdateMatatu applies a partial update; only the matatu's owner or an admin
// may write.
func UpdateMatatu(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var matatu models.Matatu
	if err := config.DB.Preload("Owner").First(&matatu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu not found"})
			return
		}
		respondError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	if !authz.CanWriteMatatu(identity, &matatu) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the matatu's owner may modify it"})
		return
	}

	var input updateMatatuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.RegistrationNumber != nil {
		if err := validation.RegistrationNumber(*input.RegistrationNumber); err != nil {
			respondError(c, err)
			return
		}
		matatu.RegistrationNumber = *input.RegistrationNumber
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
		matatu.LicenceExpiryDate = expiry
	}
	if len(input.RouteID) > 0 {
		if string(input.RouteID) == "null" {
			matatu.RouteID = nil
		} else {
			var routeID uint
			if err := json.Unmarshal(input.RouteID, &routeID); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: route_id must be a number or null"})
				return
			}
			if err := validation.RouteRef(config.DB, &routeID); err != nil {
				respondError(c, err)
				return
			}
			matatu.RouteID = &routeID
		}
	}
	if input.Capacity != nil {
		matatu.Capacity = *input.Capacity
	}
	if input.Active != nil {
		matatu.Active = *input.Active
	}

	if err := config.DB.Save(&matatu).Error; err != nil {
		respondStoreError(c, err, "A matatu with this registration number already exists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"matatu": matatu})
}

// DeleteMatatu removes the vehicle and its financial history in one
// transaction (revenues, expenses and per-route shares cascade).
func DeleteMatatu(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var matatu models.Matatu
	if err := config.DB.Preload("Owner").First(&matatu, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Matatu not found"})
			return
		}
		respondError(c, err)
		return
	}

	identity := middleware.CurrentIdentity(c)
	if !authz.CanWriteMatatu(identity, &matatu) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the matatu's owner may delete it"})
		return
	}

	// Hard deletes throughout: the registration number and the per-date
	// revenue keys must be reusable once the vehicle is gone.
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("matatu_id = ?", matatu.ID).Delete(&models.Revenue{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("matatu_id = ?", matatu.ID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("matatu_id = ?", matatu.ID).Delete(&models.MatatuRouteRevenue{}).Error; err != nil {
			return err
		}
		// Unassign any driver before the vehicle goes.
		if err := tx.Model(&models.Driver{}).Where("assigned_matatu_id = ?", matatu.ID).
			Update("assigned_matatu_id", nil).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&matatu).Error
	})
	if err != nil {
		logrus.WithError(err).Error("matatu delete transaction failed")
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Matatu deleted"})
}
