package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MatatuRoutes: the collection is manager territory; items are readable by
// any authenticated caller, writable only by the record's owner (checked in
// the handler).
func MatatuRoutes(r *gin.Engine) {
	collection := r.Group("/matatus")
	collection.Use(middleware.RequireCapability(authz.CapManageFleet))
	{
		collection.GET("", controllers.ListMatatus)
		collection.POST("", controllers.CreateMatatu)
	}

	item := r.Group("/matatus")
	item.Use(middleware.RequireAuth())
	{
		item.GET("/:id", controllers.GetMatatu)
		item.PUT("/:id", controllers.UpdateMatatu)
		item.PATCH("/:id", controllers.UpdateMatatu)
		item.DELETE("/:id", controllers.DeleteMatatu)
	}
}
