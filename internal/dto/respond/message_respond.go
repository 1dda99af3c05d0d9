package respond

import "time"

// MessageRespond 会话消息
type MessageRespond struct {
	MessageId  string    `json:"messageId"`  // 消息id
	SessionId  string    `json:"sessionId"`  // 会话id
	SenderId   string    `json:"senderId"`   // 发送人用户id
	SenderName string    `json:"senderName"` // 发送人昵称
	Type       int8      `json:"type"`       // 消息类型
	Content    string    `json:"content"`    // 内容
	PageRef    *int      `json:"pageRef"`    // 引用页码
	IsSpoiler  bool      `json:"isSpoiler"`  // 是否剧透
	SentAt     time.Time `json:"sentAt"`     // 发送时间
}
