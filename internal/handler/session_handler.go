// 本文件处理共读会话与小组相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/service"
)

// SessionHandler 共读会话请求处理器，小组作为会话容器一并处理
type SessionHandler struct {
	svc service.SessionService
}

// NewSessionHandler 构造函数
func NewSessionHandler(svc service.SessionService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// CreateGroup 创建共读小组
// POST /group/createGroup
// 请求体: request.CreateGroupRequest
// 响应: respond.GroupRespond
func (h *SessionHandler) CreateGroup(c *gin.Context) {
	var req request.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.CreateGroup(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMyGroupList 获取我参与的小组列表
// GET /group/getMyGroupList
// 响应: []respond.GroupRespond
func (h *SessionHandler) GetMyGroupList(c *gin.Context) {
	data, err := h.svc.GetMyGroupList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// StartSession 开始共读会话
// POST /session/startSession
// 请求体: request.StartSessionRequest
// 响应: respond.SessionDetailRespond
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req request.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.StartSession(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// UpdateProgress 更新我的共读进度
// POST /session/updateProgress
// 请求体: request.UpdateProgressRequest
// 响应: respond.ProgressRespond
func (h *SessionHandler) UpdateProgress(c *gin.Context) {
	var req request.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.UpdateProgress(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetSessionDetail 获取会话详情
// GET /session/getSessionDetail?sessionId=xxx
// 查询参数: request.SessionDetailRequest
// 响应: respond.SessionDetailRespond
func (h *SessionHandler) GetSessionDetail(c *gin.Context) {
	var req request.SessionDetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetSessionDetail(c.GetString("user_id"), req.SessionId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetActiveSessionList 获取我参与的进行中会话
// GET /session/getActiveSessionList
// 响应: []respond.SessionSummaryRespond
func (h *SessionHandler) GetActiveSessionList(c *gin.Context) {
	data, err := h.svc.GetActiveSessionList(c.GetString("user_id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteSession 删除会话
// POST /session/deleteSession
// 请求体: request.DeleteSessionRequest
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	var req request.DeleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.svc.DeleteSession(c.GetString("user_id"), req.SessionId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
