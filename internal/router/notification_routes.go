package router

import (
	"github.com/gin-gonic/gin"
)

// registerNotificationRoutes 注册通知相关路由
func (rt *Router) registerNotificationRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Notification
	r.GET("/notification/getNotificationList", h.GetNotificationList)
	r.POST("/notification/markRead", h.MarkRead)
	r.POST("/notification/markAllRead", h.MarkAllRead)
}
