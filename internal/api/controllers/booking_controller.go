package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"venu/internal/models/request_models"
	"venu/internal/services"
	"venu/pkg/middleware"
	"venu/pkg/utils"
)

type BookingController struct {
	bookingService services.BookingServiceInterface
}

func NewBookingController(bookingService services.BookingServiceInterface) *BookingController {
	return &BookingController{
		bookingService: bookingService,
	}
}

// CreateBooking godoc
// @Summary Submit a booking inquiry
// @Tags Bookings
// @Accept json
// @Produce json
// @Param request body request_models.CreateBookingRequest true "Booking inquiry payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings [post]
func (b *BookingController) CreateBooking(c *gin.Context) {
	var req request_models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	booking, err := b.bookingService.CreateBooking(c.Request.Context(), middleware.CallerFrom(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking inquiry submitted")
}

// ListBookings: clients get their own rows, admin-level callers get all.
func (b *BookingController) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	bookings, err := b.bookingService.ListBookings(c.Request.Context(), middleware.CallerFrom(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bookings, "Bookings fetched successfully")
}

func (b *BookingController) GetBooking(c *gin.Context) {
	booking, err := b.bookingService.GetBooking(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, booking, "Booking fetched successfully")
}

// UpdateStatus godoc
// @Summary Advance a booking's status
// @Description inquiry -> confirmed -> cleared, forward only; assigned admin or super admin
// @Tags Bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking id"
// @Param request body request_models.UpdateBookingStatusRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /bookings/{id}/status [patch]
func (b *BookingController) UpdateStatus(c *gin.Context) {
	var req request_models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.UpdateStatus(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking status updated")
}

func (b *BookingController) AssignAdmin(c *gin.Context) {
	var req request_models.AssignAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.AssignAdmin(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking assigned")
}

func (b *BookingController) UpdateSpend(c *gin.Context) {
	var req request_models.UpdateSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := b.bookingService.UpdateSpend(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Booking spend updated")
}
