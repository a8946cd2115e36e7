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

type createExpenseInput struct {
	MatatuID    uint    `json:"matatu_id" binding:"required"`
	ExpenseType string  `json:"expense_type" binding:"required"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

type updateExpenseInput struct {
	ExpenseType *string  `json:"expense_type"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func CreateExpense(c *gin.Context) {
	var input createExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid expense input: " + err.Error()})
		return
	}

	if err := validation.Amount(input.Amount); err != nil {
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

	expense := models.Expense{
		MatatuID:    input.MatatuID,
		ExpenseType: input.ExpenseType,
		Amount:      input.Amount,
		Description: input.Description,
		Date:        date,
		LoggedByID:  &loggedBy,
	}
	if err := config.DB.Create(&expense).Error; err != nil {
		respondStoreError(c, err, "Duplicate expense record")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": expense})
}

func ListExpenses(c *gin.Context) {
	var expenses []models.Expense
	if err := config.DB.Preload("Matatu").Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing expenses: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func GetExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.Preload("Matatu").First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

func UpdateExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		respondError(c, err)
		return
	}

	var input updateExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid update: " + err.Error()})
		return
	}

	if input.Amount != nil {
		if err := validation.Amount(*input.Amount); err != nil {
			respondError(c, err)
			return
		}
		expense.Amount = *input.Amount
	}
	if input.ExpenseType != nil {
		expense.ExpenseType = *input.ExpenseType
	}
	if input.Description != nil {
		expense.Description = *input.Description
	}
	if input.Date != nil {
		date, err := validation.ParseDate(*input.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		expense.Date = date
	}

	if err := config.DB.Save(&expense).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

func DeleteExpense(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var expense models.Expense
	if err := config.DB.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
			return
		}
		respondError(c, err)
		return
	}

	if err := config.DB.Unscoped().Delete(&expense).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
