// Package group_type_enum 共读小组类型
package group_type_enum

const (
	PAIR        int8 = iota // 二人共读
	SMALL_GROUP             // 小组
	BOOK_CLUB               // 读书会
)
