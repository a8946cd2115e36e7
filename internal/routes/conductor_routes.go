package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

func ConductorRoutes(r *gin.Engine) {
	conductors := r.Group("/conductors")
	conductors.Use(middleware.RequireCapability(authz.CapManageStaff))
	{
		conductors.GET("", controllers.ListConductors)
		conductors.POST("", controllers.CreateConductor)
		conductors.GET("/:id", controllers.GetConductor)
		conductors.PUT("/:id", controllers.UpdateConductor)
		conductors.PATCH("/:id", controllers.UpdateConductor)
		conductors.DELETE("/:id", controllers.DeleteConductor)
	}
}
