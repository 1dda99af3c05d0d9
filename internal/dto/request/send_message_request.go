package request

// SendMessageRequest 发送会话消息
type SendMessageRequest struct {
	SessionId string `json:"sessionId" binding:"required"`          // 会话id
	Type      int8   `json:"type" binding:"gte=0,lte=3"`            // 消息类型
	Content   string `json:"content" binding:"required,max=2000"`   // 内容
	PageRef   *int   `json:"pageRef" binding:"omitempty,gte=0"`     // 引用页码，可空
	IsSpoiler bool   `json:"isSpoiler"`                             // 是否剧透
}
