package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter registers recovery/request-logging middleware and every route
// group on a fresh engine.
func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r)
	ManagerRoutes(r)
	DriverRoutes(r)
	ConductorRoutes(r)
	MatatuRoutes(r)
	RouteRoutes(r)
	RevenueRoutes(r)
	ExpenseRoutes(r)
	PaymentRoutes(r)
	RouteRevenueRoutes(r)

	return r
}
