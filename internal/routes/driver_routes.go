package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

func DriverRoutes(r *gin.Engine) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.RequireCapability(authz.CapManageStaff))
	{
		drivers.GET("", controllers.ListDrivers)
		drivers.POST("", controllers.CreateDriver)
		drivers.GET("/:id", controllers.GetDriver)
		drivers.PUT("/:id", controllers.UpdateDriver)
		drivers.PATCH("/:id", controllers.UpdateDriver)
		drivers.DELETE("/:id", controllers.DeleteDriver)
	}
}
