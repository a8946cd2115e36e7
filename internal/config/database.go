package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Towet-Tum/Matatu-Management-Sacco/internal/models"
)

var (
	// DB is the globally accessible database handle
	DB *gorm.DB
)

// InitDB initializes the database connection using environment variables
// and migrates the sacco schema.
func InitDB() {
	// 1) Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	// Load environment variables (with defaults)
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "sacco")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	// Build Data Source Name
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	// Open GORM connection. TranslateError surfaces uniqueness and FK
	// breaches as gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// Assign to global
	DB = db
}

// Migrate applies the schema for every sacco entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Route{},
		&models.MatatuOwner{},
		&models.Matatu{},
		&models.Manager{},
		&models.Driver{},
		&models.Conductor{},
		&models.Revenue{},
		&models.Expense{},
		&models.Payment{},
		&models.MatatuRouteRevenue{},
		&models.RouteRevenue{},
	)
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

// GetDB returns the initialized DB handle
func GetDB() *gorm.DB {
	return DB
}
