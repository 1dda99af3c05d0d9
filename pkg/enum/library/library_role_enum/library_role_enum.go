// Package library_role_enum 共享书架成员角色
package library_role_enum

const (
	MEMBER int8 = iota // 普通成员
	OWNER              // 创建者，唯一可删除书架
)
