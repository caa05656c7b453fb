package controllers

import (
	"github.com/gin-gonic/gin"

	"venu/internal/services"
	"venu/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// GetDashboard godoc
// @Summary Super-admin dashboard
// @Description Booking KPIs plus per-admin conversion statistics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 500 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (s *StatsController) GetDashboard(c *gin.Context) {
	report, err := s.statsService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard data fetched successfully")
}

// GetAdminPerformance returns just the per-admin conversion rows.
func (s *StatsController) GetAdminPerformance(c *gin.Context) {
	rows, err := s.statsService.AdminPerformance(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, rows, "Admin performance fetched successfully")
}
