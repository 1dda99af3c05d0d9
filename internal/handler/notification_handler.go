// 本文件处理通知相关的 API 请求
package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/service"
)

// NotificationHandler 通知请求处理器
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler 构造函数
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// GetNotificationList 获取通知列表与未读数
// GET /notification/getNotificationList?limit=50
// 响应: {"list": []respond.NotificationRespond, "unreadCount": n}
func (h *NotificationHandler) GetNotificationList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	list, unread, err := h.svc.GetNotificationList(c.GetString("user_id"), limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{
		"list":        list,
		"unreadCount": unread,
	})
}

// MarkRead 标记单条通知已读
// POST /notification/markRead
// 请求体: request.MarkNotificationReadRequest
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.MarkNotificationReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.MarkRead(c.GetString("user_id"), req.NotificationId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// MarkAllRead 标记全部通知已读
// POST /notification/markAllRead
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.GetString("user_id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
