// Package notification_type_enum 通知类型
// 通知只落库，不负责推送；类型字符串直接面向客户端展示逻辑
package notification_type_enum

const (
	FRIEND_REQUEST  = "friend_request"  // 收到好友申请
	FRIEND_ACCEPTED = "friend_accepted" // 好友申请被接受
	READING_UPDATE  = "reading_update"  // 共读进度更新
	MESSAGE         = "message"         // 会话新消息
	ACHIEVEMENT     = "achievement"     // 徽章解锁
)
