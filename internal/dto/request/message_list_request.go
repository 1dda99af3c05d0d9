package request

// MessageListRequest 查询会话消息
type MessageListRequest struct {
	SessionId string `form:"sessionId" binding:"required"` // 会话id
	Limit     int    `form:"limit" binding:"gte=0"`        // 返回条数，0 取默认值
}
