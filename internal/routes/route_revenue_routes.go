package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RouteRevenueRoutes registers both rollup entities.
func RouteRevenueRoutes(r *gin.Engine) {
	rollups := r.Group("/route-revenues")
	rollups.Use(middleware.RequireCapability(authz.CapManageFinance))
	{
		rollups.GET("", controllers.ListRouteRevenues)
		rollups.POST("", controllers.CreateRouteRevenue)
		rollups.GET("/:id", controllers.GetRouteRevenue)
		rollups.PUT("/:id", controllers.UpdateRouteRevenue)
		rollups.PATCH("/:id", controllers.UpdateRouteRevenue)
		rollups.DELETE("/:id", controllers.DeleteRouteRevenue)
	}

	shares := r.Group("/matatu-route-revenues")
	shares.Use(middleware.RequireCapability(authz.CapManageFinance))
	{
		shares.GET("", controllers.ListMatatuRouteRevenues)
		shares.POST("", controllers.CreateMatatuRouteRevenue)
		shares.GET("/:id", controllers.GetMatatuRouteRevenue)
		shares.PUT("/:id", controllers.UpdateMatatuRouteRevenue)
		shares.PATCH("/:id", controllers.UpdateMatatuRouteRevenue)
		shares.DELETE("/:id", controllers.DeleteMatatuRouteRevenue)
	}
}
