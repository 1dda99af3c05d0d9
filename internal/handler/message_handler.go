// 本文件处理会话消息相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/service"
)

// MessageHandler 会话消息请求处理器
type MessageHandler struct {
	svc service.MessageService
}

// NewMessageHandler 构造函数
func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// SendMessage 发送会话消息
// POST /message/sendMessage
// 请求体: request.SendMessageRequest
// 响应: respond.MessageRespond
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.SendMessage(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetMessageList 获取会话消息列表
// GET /message/getMessageList?sessionId=xxx&limit=50
// 查询参数: request.MessageListRequest
// 响应: []respond.MessageRespond
func (h *MessageHandler) GetMessageList(c *gin.Context) {
	var req request.MessageListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.svc.GetMessageList(c.GetString("user_id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
