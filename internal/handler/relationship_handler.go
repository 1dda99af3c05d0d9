// Package handler 提供 HTTP 请求处理器
// 本文件处理好友关系相关的 API 请求
// 当前用户id一律取自 JWT 中间件写入的上下文，不信任请求体
package handler

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/service"
)

// RelationshipHandler 好友关系请求处理器
type RelationshipHandler struct {
	svc service.RelationshipService
}

// NewRelationshipHandler 构造函数
func NewRelationshipHandler(svc service.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{svc: svc}
}

// SendRequest 发起好友申请
// POST /relationship/sendRequest
// 请求体: request.SendFriendRequestRequest
// 响应: respond.SendFriendRequestRespond
func (h *RelationshipHandler) SendRequest(c *gin.Context) {
	var req request.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.SendRequest(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// RespondRequest 处理好友申请
// POST /relationship/respondRequest
// 请求体: request.RespondFriendRequestRequest
func (h *RelationshipHandler) RespondRequest(c *gin.Context) {
	var req request.RespondFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.RespondRequest(c.GetString("user_id"), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetFriendList 获取好友列表
// GET /relationship/getFriendList
// 响应: []respond.FriendRespond
func (h *RelationshipHandler) GetFriendList(c *gin.Context) {
	data, err := h.svc.GetFriendList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetIncomingList 获取收到的待处理申请
// GET /relationship/getIncomingList
// 响应: []respond.FriendRequestRespond
func (h *RelationshipHandler) GetIncomingList(c *gin.Context) {
	data, err := h.svc.GetIncomingList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetOutgoingList 获取发出的申请
// GET /relationship/getOutgoingList
// 响应: []respond.FriendRequestRespond
func (h *RelationshipHandler) GetOutgoingList(c *gin.Context) {
	data, err := h.svc.GetOutgoingList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
