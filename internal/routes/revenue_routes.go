package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RevenueRoutes: drivers, conductors and managers log takings.
func RevenueRoutes(r *gin.Engine) {
	revenues := r.Group("/revenues")
	revenues.Use(middleware.RequireCapability(authz.CapLogTakings))
	{
		revenues.GET("", controllers.ListRevenues)
		revenues.POST("", controllers.CreateRevenue)
		revenues.GET("/:id", controllers.GetRevenue)
		revenues.PUT("/:id", controllers.UpdateRevenue)
		revenues.PATCH("/:id", controllers.UpdateRevenue)
		revenues.DELETE("/:id", controllers.DeleteRevenue)
	}
}
