// Package session_status_enum 共读会话状态
package session_status_enum

// 状态机: ACTIVE -> PAUSED / COMPLETED / CANCELLED（后三者为终态）
// 删除操作独立于状态机，任何状态下发起人均可删除
const (
	ACTIVE    int8 = iota // 进行中
	PAUSED                // 已暂停
	COMPLETED             // 已完成
	CANCELLED             // 已取消
)
