package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/apperrors"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

type createPaymentInput struct {
	ReceiverID  uint    `json:"receiver_id" binding:"required"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type" binding:"required"`
	Date        string  `json:"date" binding:"required"`
}

type updatePaymentInput struct {
	Amount      *float64 `json:"amount"`
	PaymentType *string  `json:"payment_type"`
	Date        *string  `json:"date"`
}

// CreatePayment records a disbursement to a staff member.
func CreatePayment(c *gin.Context) {
	var input createPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment input: " + err.Error()})
		return
	}

	if err := validation.Amount(input.Amount); err != nil {
		respondError(c, err)
		return
	}
	date, err := validation.ParseDate(input.Date)
	if err != nil {
		respondError(c, err)
		return
	}

	var receiver models.User
	if err := config.DB.First(&receiver, input.ReceiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, apperrors.Validation("Receiver does not exist"))
			return
		}
		respondError(c, err)
		return
	}

	payment := models.Payment{
		ReceiverID:  input.ReceiverID,
		Amount:      input.Amount,
		PaymentType: input.PaymentType,
		Date:        date,
	}
	if err := config.DB.Create(&payment).Error; err != nil {
		respondStoreError(c, err, "Duplicate payment record")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payment": payment})
}

func ListPayments(c *gin.Context) {
	var payments []models.Payment
	if err := config.DB.Preload("Receiver").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing payments: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func GetPayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := config.DB.Preload("Receiver").First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

func UpdatePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.Amount != nil {
		if err := validation.Amount(*input.Amount); err != nil {
			respondError(c, err)
			return
		}
		payment.Amount = *input.Amount
	}
	if input.PaymentType != nil {
		payment.PaymentType = *input.PaymentType
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		payment.Date = date
	}

	if err := config.DB.Save(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": payment})
}

func DeletePayment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payment models.Payment
	if err := config.DB.First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		respondError(c, err)
		return
	}

	if err := config.DB.Unscoped().Delete(&payment).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted"})
}
