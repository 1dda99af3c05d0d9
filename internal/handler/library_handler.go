// 本文件处理共享书架相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/service"
)

// LibraryHandler 共享书架请求处理器
type LibraryHandler struct {
	svc service.LibraryService
}

// NewLibraryHandler 构造函数
func NewLibraryHandler(svc service.LibraryService) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

// CreateLibrary 创建共享书架
// POST /library/createLibrary
// 请求体: request.CreateLibraryRequest
// 响应: respond.CreateLibraryRespond
func (h *LibraryHandler) CreateLibrary(c *gin.Context) {
	var req request.CreateLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.CreateLibrary(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// AddBook 向书架添加书籍
// POST /library/addBook
// 请求体: request.AddLibraryBookRequest
// 响应: respond.AddLibraryBookRespond
func (h *LibraryHandler) AddBook(c *gin.Context) {
	var req request.AddLibraryBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.AddBook(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyLibraryList 获取我参与的书架列表
// GET /library/getMyLibraryList
// 响应: []respond.LibrarySummaryRespond
func (h *LibraryHandler) GetMyLibraryList(c *gin.Context) {
	data, err := h.svc.GetMyLibraryList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetLibraryDetail 获取书架详情
// GET /library/getLibraryDetail?libraryId=xxx
// 查询参数: request.LibraryDetailRequest
// 响应: respond.LibraryDetailRespond
func (h *LibraryHandler) GetLibraryDetail(c *gin.Context) {
	var req request.LibraryDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetLibraryDetail(c.GetString("user_id"), req.LibraryId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteLibrary 删除书架
// POST /library/deleteLibrary
// 请求体: request.DeleteLibraryRequest
func (h *LibraryHandler) DeleteLibrary(c *gin.Context) {
	var req request.DeleteLibraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.DeleteLibrary(c.GetString("user_id"), req.LibraryId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
