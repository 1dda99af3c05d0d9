// Package relationship_status_enum 好友关系申请状态
package relationship_status_enum

// 状态机: PENDING -> ACCEPTED / REJECTED；BLOCKED 为终态，可由任意状态进入
const (
	PENDING  int8 = iota // 申请中
	ACCEPTED             // 已接受
	REJECTED             // 已拒绝
	BLOCKED              // 已拉黑（预留，当前流程未使用）
)
