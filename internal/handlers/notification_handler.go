package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	BaseHandler
	notificationService services.NotificationService
	userRepo            repositories.UserRepository
}

func NewNotificationHandler(
	base BaseHandler,
	notificationService services.NotificationService,
	userRepo repositories.UserRepository,
) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
		userRepo:            userRepo,
	}
}

func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications", middleware.AuthMiddleware(h.userRepo))
	{
		notifications.GET("", h.List)
		notifications.GET("/unread-count", h.UnreadCount)
		notifications.PUT("/:id/read", h.MarkRead)
		notifications.PUT("/read-all", h.MarkAllRead)
		notifications.DELETE("/:id", h.Delete)
	}
}

func (h *NotificationHandler) List(c *gin.Context) {
	resp, err := h.notificationService.List(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	unread, err := h.notificationService.UnreadCount(middleware.GetUserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, gin.H{"unreadCount": unread})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationService.MarkRead(c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationService.MarkAllRead(middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "All notifications marked as read")
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notificationService.Delete(c.Param("id"), middleware.GetUserID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Message(c, "Notification deleted")
}
