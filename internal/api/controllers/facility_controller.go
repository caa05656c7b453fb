package controllers

import (
	"github.com/gin-gonic/gin"

	"venu/internal/services"
	"venu/pkg/utils"
)

type FacilityController struct {
	facilityService services.FacilityServiceInterface
}

func NewFacilityController(facilityService services.FacilityServiceInterface) *FacilityController {
	return &FacilityController{
		facilityService: facilityService,
	}
}

// ListFacilities serves the booking form's facility catalog; public.
func (f *FacilityController) ListFacilities(c *gin.Context) {
	facilities, err := f.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, facilities, "Facilities fetched successfully")
}
