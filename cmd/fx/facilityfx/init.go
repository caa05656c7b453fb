package facilityfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"venu/internal/api/controllers"
	"venu/internal/repositories"
	"venu/internal/services"
)

var Module = fx.Provide(
	provideFacilityRepo, provideFacilityService, provideFacilityController)

func provideFacilityRepo(db *gorm.DB) repositories.FacilityRepository {
	return repositories.NewFacilityRepository(db)
}

func provideFacilityService(facilityRepo repositories.FacilityRepository) services.FacilityServiceInterface {
	return services.NewFacilityService(facilityRepo)
}

func provideFacilityController(facilityService services.FacilityServiceInterface) *controllers.FacilityController {
	return controllers.NewFacilityController(facilityService)
}
