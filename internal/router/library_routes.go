package router

import (
	"github.com/gin-gonic/gin"
)

// registerLibraryRoutes 注册共享书架相关路由
func (rt *Router) registerLibraryRoutes(r *gin.RouterGroup) {
	h := rt.handlers.Library
	r.POST("/library/createLibrary", h.CreateLibrary)
	r.POST("/library/addBook", h.AddBook)
	r.GET("/library/getMyLibraryList", h.GetMyLibraryList)
	r.GET("/library/getLibraryDetail", h.GetLibraryDetail)
	r.POST("/library/deleteLibrary", h.DeleteLibrary)
}
