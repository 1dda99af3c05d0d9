package request

// SessionDetailRequest 查询会话详情
type SessionDetailRequest struct {
	SessionId string `form:"sessionId" binding:"required"` // 会话id
}
