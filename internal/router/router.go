// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
// 全部业务路由都在 JWT 认证分组之内
package router

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/handler"
	"bookmate_server/internal/infrastructure/middleware"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 构造函数
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 httpserver.Init() 中调用，按模块分别注册各个路由组
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("", middleware.JWTAuth())

	rt.registerRelationshipRoutes(auth) // 好友关系路由
	rt.registerLibraryRoutes(auth)      // 共享书架路由
	rt.registerSessionRoutes(auth)      // 共读会话与小组路由
	rt.registerMessageRoutes(auth)      // 消息路由
	rt.registerNotificationRoutes(auth) // 通知路由
	rt.registerBadgeRoutes(auth)        // 徽章路由
}
