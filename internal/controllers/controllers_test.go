package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/routes"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/validation"
)

// setupServer wires a fresh in-memory store behind the real router so tests
// exercise the full authorization -> validation -> store path.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	return routes.SetupRouter()
}

func tokenFor(t *testing.T, userID uint, role models.Role) string {
	t.Helper()
	token, err := middleware.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the engine; an empty token sends no
// Authorization header.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, username string, role models.Role) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@sacco.io",
		Password: "x",
		Role:     role,
		Active:   true,
	}
	require.NoError(t, config.DB.Create(&user).Error)
	return user
}

func seedOwner(t *testing.T, username, phone string) (models.User, models.MatatuOwner) {
	t.Helper()
	user := seedUser(t, username, models.RoleOwner)
	owner := models.MatatuOwner{UserID: user.ID, PhoneNumber: phone}
	require.NoError(t, config.DB.Create(&owner).Error)
	return user, owner
}

func seedRoute(t *testing.T, name string) models.Route {
	t.Helper()
	route := models.Route{Name: name, Active: true}
	require.NoError(t, config.DB.Create(&route).Error)
	return route
}

func seedMatatu(t *testing.T, reg string, ownerID uint, routeID *uint) models.Matatu {
	t.Helper()
	matatu := models.Matatu{
		RegistrationNumber: reg,
		RouteID:            routeID,
		Capacity:           14,
		OwnerID:            ownerID,
		LicenceExpiryDate:  validation.Today().AddDate(1, 0, 0),
		Active:             true,
	}
	require.NoError(t, config.DB.Create(&matatu).Error)
	return matatu
}

func futureDate() string {
	return validation.Today().AddDate(1, 0, 0).Format(validation.DateLayout)
}

func todayDate() time.Time {
	return validation.Today()
}

func matatuPath(id uint) string {
	return fmt.Sprintf("/matatus/%d", id)
}

func routePath(id uint) string {
	return fmt.Sprintf("/routes/%d", id)
}

func managerPath(id uint) string {
	return fmt.Sprintf("/managers/%d", id)
}

func driverPath(id uint) string {
	return fmt.Sprintf("/drivers/%d", id)
}

func revenuePath(id uint) string {
	return fmt.Sprintf("/revenues/%d", id)
}

func routeRevenuePath(id uint) string {
	return fmt.Sprintf("/route-revenues/%d", id)
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, config.DB.Model(model).Count(&n).Error)
	return n
}
