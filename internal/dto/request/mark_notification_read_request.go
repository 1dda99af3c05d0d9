package request

// MarkNotificationReadRequest 标记通知已读
type MarkNotificationReadRequest struct {
	NotificationId string `json:"notificationId" binding:"required"` // 通知id
}
