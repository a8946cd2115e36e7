package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

type signupInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`

	// Profile fields; which are required depends on the role.
	PhoneNumber       string `json:"phone_number"`
	LicenceExpiryDate string `json:"licence_expiry_date"`
}

// SignupUser creates a user and its role profile in a single transaction and
// returns a fresh token.
func SignupUser(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.ParseRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	tx := config.DB.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start transaction"})
		return
	}

	user := models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     role,
		Active:   true,
	}
	if err := tx.Create(&user).Error; err != nil {
		tx.Rollback()
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" || errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "username or email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create user: " + err.Error()})
		return
	}

	if err := createRoleProfile(tx, &user, input); err != nil {
		tx.Rollback()
		respondError(c, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not commit transaction: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  user,
	})
}

// LoginUser verifies credentials and returns a token plus the user with its
// role profile preloaded.
func LoginUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	query := config.DB.Where("email = ?", body.Email).
		Preload("OwnerProfile").
		Preload("ManagerProfile").
		Preload("DriverProfile").
		Preload("ConductorProfile")

	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found or invalid credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect password"})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// createRoleProfile attaches the profile record matching the new user's
// role. Phone numbers are validated here so a bad profile aborts the whole
// signup.
func createRoleProfile(tx *gorm.DB, user *models.User, input signupInput) error {
	switch user.Role {
	case models.RoleOwner:
		if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
			return err
		}
		if err := validation.OwnerPhoneUnique(tx, input.PhoneNumber, 0); err != nil {
			return err
		}
		owner := models.MatatuOwner{UserID: user.ID, PhoneNumber: input.PhoneNumber}
		return tx.Create(&owner).Error
	case models.RoleManager:
		if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
			return err
		}
		manager := models.Manager{UserID: user.ID, PhoneNumber: input.PhoneNumber}
		return tx.Create(&manager).Error
	case models.RoleDriver:
		if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
			return err
		}
		expiry, err := validation.ParseDate(input.LicenceExpiryDate)
		if err != nil {
			return err
		}
		if err := validation.LicenceExpiryDate(expiry); err != nil {
			return err
		}
		driver := models.Driver{UserID: user.ID, PhoneNumber: input.PhoneNumber, LicenceExpiryDate: expiry}
		return tx.Create(&driver).Error
	case models.RoleConductor:
		if err := validation.PhoneNumber(input.PhoneNumber); err != nil {
			return err
		}
		expiry, err := validation.ParseDate(input.LicenceExpiryDate)
		if err != nil {
			return err
		}
		if err := validation.LicenceExpiryDate(expiry); err != nil {
			return err
		}
		conductor := models.Conductor{UserID: user.ID, PhoneNumber: input.PhoneNumber, LicenceExpiryDate: expiry}
		return tx.Create(&conductor).Error
	}
	// Admin users carry no profile record.
	return nil
}
