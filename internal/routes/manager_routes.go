package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ManagerRoutes is the admin-only manager roster.
func ManagerRoutes(r *gin.Engine) {
	managers := r.Group("/managers")
	managers.Use(middleware.RequireCapability(authz.CapManageManagers))
	{
		managers.GET("", controllers.ListManagers)
		managers.POST("", controllers.CreateManager)
		managers.GET("/:id", controllers.GetManager)
		managers.PUT("/:id", controllers.UpdateManager)
		managers.PATCH("/:id", controllers.UpdateManager)
		managers.DELETE("/:id", controllers.DeleteManager)
	}
}
