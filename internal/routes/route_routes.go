package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RouteRoutes(r *gin.Engine) {
	routes := r.Group("/routes")
	routes.Use(middleware.RequireCapability(authz.CapManageFleet))
	{
		routes.GET("", controllers.ListRoutes)
		routes.POST("", controllers.CreateRoute)
		routes.GET("/:id", controllers.GetRoute)
		routes.PUT("/:id", controllers.UpdateRoute)
		routes.PATCH("/:id", controllers.UpdateRoute)
		routes.DELETE("/:id", controllers.DeleteRoute)
	}
}
