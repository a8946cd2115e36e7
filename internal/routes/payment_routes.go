package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

func PaymentRoutes(r *gin.Engine) {
	payments := r.Group("/payments")
	payments.Use(middleware.RequireCapability(authz.CapManageFinance))
	{
		payments.GET("", controllers.ListPayments)
		payments.POST("", controllers.CreatePayment)
		payments.GET("/:id", controllers.GetPayment)
		payments.PUT("/:id", controllers.UpdatePayment)
		payments.PATCH("/:id", controllers.UpdatePayment)
		payments.DELETE("/:id", controllers.DeletePayment)
	}
}
