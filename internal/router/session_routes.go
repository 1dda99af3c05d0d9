package router

import (
	"github.com/gin-gonic/gin"
)

// registerSessionRoutes 注册共读会话与小组相关路由
func (rt *Router) registerSessionRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Session
	r.POST("/group/createGroup", h.CreateGroup)
	r.GET("/group/getMyGroupList", h.GetMyGroupList)
	r.POST("/session/startSession", h.StartSession)
	r.POST("/session/updateProgress", h.UpdateProgress)
	r.GET("/session/getSessionDetail", h.GetSessionDetail)
	r.GET("/session/getActiveSessionList", h.GetActiveSessionList)
	r.POST("/session/deleteSession", h.DeleteSession)
}
