package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/apperrors"
)

// parseID reads the :id URL parameter. Responds 400 and returns false on
// garbage input.
func parseID(c *gin.Context) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, false
	}
	return uint(id), true
}

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 and gets logged.
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
		return
	}
	var pd *apperrors.PermissionDenied
	if errors.As(err, &pd) {
		c.JSON(http.StatusForbidden, gin.H{"error": pd.Message})
		return
	}
	var cv *apperrors.ConstraintViolation
	if errors.As(err, &cv) {
		c.JSON(http.StatusConflict, gin.H{"error": cv.Message})
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found."})
		return
	}
	logrus.WithError(err).Error("unhandled request error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// respondStoreError translates store write failures: uniqueness breaches get
// the caller-supplied message, FK breaches a generic one, the rest fall
// through to respondError.
func respondStoreError(c *gin.Context, err error, duplicateMsg string) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		respondError(c, apperrors.Constraint(duplicateMsg))
		return
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		respondError(c, apperrors.Constraint("Referenced record does not exist"))
		return
	}
	respondError(c, err)
}
