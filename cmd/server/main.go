package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/config"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/logger"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/middleware"
	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router (recovery + request logging included)
	r := routes.SetupRouter()

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + port()
	log.Println("🚀 Server running at " + addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
