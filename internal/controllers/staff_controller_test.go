package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

func TestCreateDriver(t *testing.T) {
	r := setupServer(t)
	manager := seedUser(t, "staff-manager", models.RoleManager)
	managerToken := tokenFor(t, manager.ID, models.RoleManager)
	driverUser := seedUser(t, "staff-driver", models.RoleDriver)

	t.Run("non-manager denied, nothing persisted", func(t *testing.T) {
		conductor := seedUser(t, "staff-conductor", models.RoleConductor)
		w := doJSON(t, r, "POST", "/drivers", tokenFor(t, conductor.ID, models.RoleConductor), map[string]any{
			"user_id":             driverUser.ID,
			"phone_number":        "0712345678",
			"licence_expiry_date": futureDate(),
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Zero(t, countRows(t, &models.Driver{}))
	})

	t.Run("bad phone number", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/drivers", managerToken, map[string]any{
			"user_id":             driverUser.ID,
			"phone_number":        "07123",
			"licence_expiry_date": futureDate(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Phone number must be numeric and either 10 or 12 digits long")
	})

	t.Run("expired licence", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/drivers", managerToken, map[string]any{
			"user_id":             driverUser.ID,
			"phone_number":        "0712345678",
			"licence_expiry_date": "2019-06-30",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Licence expiry date must be in the future")
	})

	t.Run("manager creates driver", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/drivers", managerToken, map[string]any{
			"user_id":             driverUser.ID,
			"phone_number":        "0712345678",
			"licence_expiry_date": futureDate(),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, int64(1), countRows(t, &models.Driver{}))
	})

	t.Run("one profile per user", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/drivers", managerToken, map[string]any{
			"user_id":             driverUser.ID,
			"phone_number":        "0712345678",
			"licence_expiry_date": futureDate(),
		})
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestConductorAssignment(t *testing.T) {
	r := setupServer(t)
	manager := seedUser(t, "cond-manager", models.RoleManager)
	managerToken := tokenFor(t, manager.ID, models.RoleManager)

	driverUser := seedUser(t, "cond-driver", models.RoleDriver)
	driver := models.Driver{UserID: driverUser.ID, PhoneNumber: "0711111111",
		LicenceExpiryDate: todayDate().AddDate(1, 0, 0)}
	require.NoError(t, config.DB.Create(&driver).Error)

	conductorUser := seedUser(t, "cond-conductor", models.RoleConductor)

	t.Run("paired with existing driver", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/conductors", managerToken, map[string]any{
			"user_id":             conductorUser.ID,
			"phone_number":        "254712345678",
			"assigned_driver_id":  driver.ID,
			"licence_expiry_date": futureDate(),
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("missing driver rejected", func(t *testing.T) {
		other := seedUser(t, "cond-other", models.RoleConductor)
		missing := driver.ID + 100
		w := doJSON(t, r, "POST", "/conductors", managerToken, map[string]any{
			"user_id":             other.ID,
			"phone_number":        "0722222222",
			"assigned_driver_id":  missing,
			"licence_expiry_date": futureDate(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Assigned driver is not active")
	})
}

func TestManagerRosterAdminOnly(t *testing.T) {
	r := setupServer(t)
	admin := seedUser(t, "roster-admin", models.RoleAdmin)
	manager := seedUser(t, "roster-manager", models.RoleManager)
	subject := seedUser(t, "roster-subject", models.RoleManager)

	t.Run("manager cannot manage the roster", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/managers", tokenFor(t, manager.ID, models.RoleManager), map[string]any{
			"user_id":      subject.ID,
			"phone_number": "0733333333",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin creates manager profile", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/managers", tokenFor(t, admin.ID, models.RoleAdmin), map[string]any{
			"user_id":      subject.ID,
			"phone_number": "0733333333",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func TestUpdateManagerRejectionLeavesNoTrace(t *testing.T) {
	r := setupServer(t)
	admin := seedUser(t, "atomic-admin", models.RoleAdmin)
	subject := seedUser(t, "atomic-subject", models.RoleManager)
	profile := models.Manager{UserID: subject.ID, PhoneNumber: "0711111111"}
	require.NoError(t, config.DB.Create(&profile).Error)

	w := doJSON(t, r, "PATCH", managerPath(profile.ID), tokenFor(t, admin.ID, models.RoleAdmin), map[string]any{
		"phone_number":        "0722222222",
		"assigned_matatu_ids": []uint{9999},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "All managed matatus must be active")

	// The phone change must not survive the rejected assignment list.
	var reloaded models.Manager
	require.NoError(t, config.DB.First(&reloaded, profile.ID).Error)
	assert.Equal(t, "0711111111", reloaded.PhoneNumber)
}

func TestDriverDeleteFreesUser(t *testing.T) {
	r := setupServer(t)
	manager := seedUser(t, "free-manager", models.RoleManager)
	token := tokenFor(t, manager.ID, models.RoleManager)
	driverUser := seedUser(t, "free-driver", models.RoleDriver)

	driver := models.Driver{UserID: driverUser.ID, PhoneNumber: "0744444444",
		LicenceExpiryDate: todayDate().AddDate(1, 0, 0)}
	require.NoError(t, config.DB.Create(&driver).Error)

	w := doJSON(t, r, "DELETE", driverPath(driver.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The user can be given a fresh profile after the old one is removed.
	w = doJSON(t, r, "POST", "/drivers", token, map[string]any{
		"user_id":             driverUser.ID,
		"phone_number":        "0744444444",
		"licence_expiry_date": futureDate(),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestRouteDeleteDetachesMatatus(t *testing.T) {
	r := setupServer(t)
	_, owner := seedOwner(t, "route-owner", "0766666666")
	route := seedRoute(t, "CBD-Karen")
	matatu := seedMatatu(t, "KLL444L", owner.ID, &route.ID)
	manager := seedUser(t, "route-manager", models.RoleManager)

	w := doJSON(t, r, "DELETE", routePath(route.ID), tokenFor(t, manager.ID, models.RoleManager), nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var detached models.Matatu
	require.NoError(t, config.DB.First(&detached, matatu.ID).Error)
	assert.Nil(t, detached.RouteID)
}

func TestRouteNameUnique(t *testing.T) {
	r := setupServer(t)
	manager := seedUser(t, "unique-manager", models.RoleManager)
	token := tokenFor(t, manager.ID, models.RoleManager)

	w := doJSON(t, r, "POST", "/routes", token, map[string]any{"name": "CBD-Rongai"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/routes", token, map[string]any{"name": "CBD-Rongai"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "A route with this name already exists")
}
