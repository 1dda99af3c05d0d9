package router

import (
	"github.com/gin-gonic/gin"
)

// registerBadgeRoutes 注册徽章相关路由
func (rt *Router) registerBadgeRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Badge
	r.GET("/badge/getMyBadgeList", h.GetMyBadgeList)
}
