package dto

import "jobboard_backend/internal/models"

// NotificationListResponse pairs the recent notifications with the
// unread counter shown in the header badge.
type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}
