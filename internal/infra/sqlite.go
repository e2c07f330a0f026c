package infra

import (
	"log"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tripplanner/internal/models/db_models"
)

// Shared cache keeps every gorm session on the same in-memory database for
// the life of the process. The store is volatile by design.
const defaultDSN = "file:tripplanner?mode=memory&cache=shared"

func InitDatabase() *gorm.DB {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = defaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error opening database: %v", err)
		log.Fatal("Error opening database")
	}

	if err := Migrate(db); err != nil {
		log.Printf("Error migrating database: %v", err)
		log.Fatal("Error migrating database")
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Park{},
		&db_models.ParkActivity{},
		&db_models.TripPlan{},
		&db_models.TripDay{},
		&db_models.TripActivity{},
		&db_models.AiRecommendation{},
	)
}

func CloseDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}
