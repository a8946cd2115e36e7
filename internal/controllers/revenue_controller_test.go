package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

func TestCreateRevenue(t *testing.T) {
	r := setupServer(t)
	_, owner := seedOwner(t, "owner-rev", "0744444444")
	matatu := seedMatatu(t, "KGG111G", owner.ID, nil)
	driver := seedUser(t, "driver-rev", models.RoleDriver)
	driverToken := tokenFor(t, driver.ID, models.RoleDriver)

	t.Run("driver logs takings", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 4500,
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("one record per matatu per day", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 6000,
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "already exists")
		assert.Equal(t, int64(1), countRows(t, &models.Revenue{}))
	})

	t.Run("non-positive amount", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": -50,
			"date":             "2026-01-01",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Amount must be greater than zero")
	})

	t.Run("zero amount gets the validator message", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 0,
			"date":             "2026-01-01",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Amount must be greater than zero")
	})

	t.Run("delete frees the day for a corrected figure", func(t *testing.T) {
		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 5200,
			"date":             "2026-01-05",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var logged models.Revenue
		require.NoError(t, config.DB.Last(&logged).Error)

		w = doJSON(t, r, "DELETE", revenuePath(logged.ID), driverToken, nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 5500,
			"date":             "2026-01-05",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("inactive matatu rejected", func(t *testing.T) {
		parked := seedMatatu(t, "KHH222H", owner.ID, nil)
		require.NoError(t, config.DB.Model(&parked).Update("active", false).Error)

		w := doJSON(t, r, "POST", "/revenues", driverToken, map[string]any{
			"matatu_id":        parked.ID,
			"amount_collected": 3000,
			"date":             "2026-01-02",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "The matatu is not active")
	})

	t.Run("owner role cannot log", func(t *testing.T) {
		ownerToken := tokenFor(t, owner.UserID, models.RoleOwner)
		w := doJSON(t, r, "POST", "/revenues", ownerToken, map[string]any{
			"matatu_id":        matatu.ID,
			"amount_collected": 4500,
			"date":             "2026-01-03",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestMatatuRouteRevenueUniqueness(t *testing.T) {
	r := setupServer(t)
	_, owner := seedOwner(t, "owner-mrr", "0755555555")
	route := seedRoute(t, "CBD-Kikuyu")
	matatu := seedMatatu(t, "KJJ333J", owner.ID, &route.ID)
	manager := seedUser(t, "manager-mrr", models.RoleManager)
	token := tokenFor(t, manager.ID, models.RoleManager)

	body := map[string]any{
		"matatu_id":         matatu.ID,
		"route_id":          route.ID,
		"revenue_collected": 12000,
		"date":              "2026-02-01",
	}
	w := doJSON(t, r, "POST", "/matatu-route-revenues", token, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/matatu-route-revenues", token, body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRouteRevenueRollup(t *testing.T) {
	r := setupServer(t)
	route := seedRoute(t, "CBD-Ngong")
	manager := seedUser(t, "manager-rr", models.RoleManager)
	token := tokenFor(t, manager.ID, models.RoleManager)

	w := doJSON(t, r, "POST", "/route-revenues", token, map[string]any{
		"route_id":      route.ID,
		"total_revenue": 98000,
		"date":          "2026-02-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// same route, same day
	w = doJSON(t, r, "POST", "/route-revenues", token, map[string]any{
		"route_id":      route.ID,
		"total_revenue": 50000,
		"date":          "2026-02-01",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// zero amount
	w = doJSON(t, r, "POST", "/route-revenues", token, map[string]any{
		"route_id":      route.ID,
		"total_revenue": 0,
		"date":          "2026-02-02",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Amount must be greater than zero")

	// amount correction on the existing rollup
	var rollup models.RouteRevenue
	require.NoError(t, config.DB.First(&rollup).Error)
	w = doJSON(t, r, "PATCH", routeRevenuePath(rollup.ID), token, map[string]any{
		"total_revenue": 87500,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var corrected models.RouteRevenue
	require.NoError(t, config.DB.First(&corrected, rollup.ID).Error)
	assert.Equal(t, float64(87500), corrected.TotalRevenue)
}
