// Package reading_mode_enum 共读模式
package reading_mode_enum

const (
	SAME_BOOK     int8 = iota // 共读同一本书（需要书籍引用）
	SEPARATE_BOOK             // 各读各的书
)
