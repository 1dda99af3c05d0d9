package request

// DeleteSessionRequest 删除共读会话
type DeleteSessionRequest struct {
	SessionId string `json:"sessionId" binding:"required"` // 会话id
}
