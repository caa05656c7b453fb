package dbfx

import (
	"log"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"venu/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB() *gorm.DB {
	db := infra.InitPostgresql()
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	return db
}
