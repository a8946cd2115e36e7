package routes

import (
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/authz"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/controllers"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/gin-gonic/gin"
)

func ExpenseRoutes(r *gin.Engine) {
	expenses := r.Group("/expenses")
	expenses.Use(middleware.RequireCapability(authz.CapLogTakings))
	{
		expenses.GET("", controllers.ListExpenses)
		expenses.POST("", controllers.CreateExpense)
		expenses.GET("/:id", controllers.GetExpense)
		expenses.PUT("/:id", controllers.UpdateExpense)
		expenses.PATCH("/:id", controllers.UpdateExpense)
		expenses.DELETE("/:id", controllers.DeleteExpense)
	}
}
