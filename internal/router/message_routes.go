package router

import (
	"github.com/gin-gonic/gin"
)

// registerMessageRoutes 注册会话消息相关路由
func (rt *Router) registerMessageRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Message
	r.POST("/message/sendMessage", h.SendMessage)
	r.GET("/message/getMessageList", h.GetMessageList)
}
