package router

import (
	"github.com/gin-gonic/gin"
)

// registerRelationshipRoutes 注册好友关系相关路由
func (rt *Router) registerRelationshipRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Relationship
	r.POST("/relationship/sendRequest", h.SendRequest)
	r.POST("/relationship/respondRequest", h.RespondRequest)
	r.GET("/relationship/getFriendList", h.GetFriendList)
	r.GET("/relationship/getIncomingList", h.GetIncomingList)
	r.GET("/relationship/getOutgoingList", h.GetOutgoingList)
}
