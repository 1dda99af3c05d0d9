// Package message_type_enum 会话消息类型
package message_type_enum

const (
	TEXT        int8 = iota // 普通文字
	PROGRESS                // 进度播报
	SYSTEM                  // 系统消息
	ACHIEVEMENT             // 成就播报
)
