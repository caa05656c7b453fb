package statsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"venu/internal/api/controllers"
	"venu/internal/repositories"
	"venu/internal/services"
)

var Module = fx.Provide(
	provideStatsRepo, provideStatsService, provideStatsController)

func provideStatsRepo(db *gorm.DB) repositories.StatsRepository {
	return repositories.NewStatsRepository(db)
}

func provideStatsService(statsRepo repositories.StatsRepository) services.StatsServiceInterface {
	return services.NewStatsService(statsRepo)
}

func provideStatsController(statsService services.StatsServiceInterface) *controllers.StatsController {
	return controllers.NewStatsController(statsService)
}
