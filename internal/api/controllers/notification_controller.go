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

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) CreateNotification(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := n.notificationService.CreateNotification(c.Request.Context(), middleware.CallerFrom(c), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification created")
}

func (n *NotificationController) ListNotifications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	list, err := n.notificationService.ListNotifications(c.Request.Context(), middleware.CallerFrom(c), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, list, "Notifications fetched successfully")
}

// MarkRead reports how many rows were written; marking someone else's
// notification is a successful write of zero rows.
func (n *NotificationController) MarkRead(c *gin.Context) {
	rows, err := n.notificationService.MarkRead(c.Request.Context(), middleware.CallerFrom(c), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updated": rows}, "Notification updated")
}

func (n *NotificationController) MarkAllRead(c *gin.Context) {
	rows, err := n.notificationService.MarkAllRead(c.Request.Context(), middleware.CallerFrom(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updated": rows}, "Notifications updated")
}
