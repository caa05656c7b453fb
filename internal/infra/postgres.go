package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venu/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// enumStatements create the storage-level enums. Guarded so that re-running
// them against an already-migrated database is a no-op.
var enumStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE account_role AS ENUM ('client', 'admin', 'super_admin');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE booking_status AS ENUM ('inquiry', 'confirmed', 'cleared');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE notification_type AS ENUM ('booking_inquiry', 'booking_confirmed', 'booking_cleared', 'assignment');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
}

// indexStatements back the filtered dashboard queries; not correctness-bearing.
var indexStatements = []string{
	`CREATE INDEX IF NOT EXISTS idx_bookings_status ON bookings (status)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_assigned_admin ON bookings (assigned_admin_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_event_date ON bookings (event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_is_read ON notifications (is_read)`,
}

// Migrate brings the schema up to date. Safe to run on every start.
func Migrate(db *gorm.DB) error {
	for _, stmt := range enumStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	if err := db.AutoMigrate(
		&db_models.Account{},
		&db_models.Booking{},
		&db_models.Notification{},
		&db_models.Facility{},
	); err != nil {
		return err
	}

	for _, stmt := range indexStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
