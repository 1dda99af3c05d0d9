// 本文件处理徽章相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/service"
)

// BadgeHandler 徽章请求处理器
type BadgeHandler struct {
	svc service.BadgeService
}

// NewBadgeHandler 构造函数
func NewBadgeHandler(svc service.BadgeService) *BadgeHandler {
	return &BadgeHandler{svc: svc}
}

// GetMyBadgeList 获取我已获得的徽章
// GET /badge/getMyBadgeList
// 响应: []respond.BadgeRespond
func (h *BadgeHandler) GetMyBadgeList(c *gin.Context) {
	data, err := h.svc.GetMyBadgeList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
