// Package group_status_enum 共读小组状态
package group_status_enum

const (
	NORMAL    int8 = iota // 正常
	DISBANDED             // 已解散
)
