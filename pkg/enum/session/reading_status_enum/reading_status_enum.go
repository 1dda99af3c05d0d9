// Package reading_status_enum 单个参与者的阅读状态
package reading_status_enum

const (
	NOT_STARTED int8 = iota // 未开始
	READING                 // 阅读中
	PAUSED                  // 暂停
	COMPLETED               // 已读完
)
