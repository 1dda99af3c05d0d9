package model

import (
	"gorm.io/gorm"
)

// SharedLibraryMember 共享书架成员表
// (library_uuid, user_uuid) 唯一；角色见 library_role_enum
type SharedLibraryMember struct {
	gorm.Model
	LibraryUuid string `gorm:"column:library_uuid;uniqueIndex:idx_library_member;type:char(20);not null;comment:书架id"`
	UserUuid    string `gorm:"column:user_uuid;index;uniqueIndex:idx_library_member;type:char(20);not null;comment:成员用户id"`
	Role        int8   `gorm:"column:role;not null;comment:角色，0.成员，1.创建者"`
}

func (SharedLibraryMember) TableName() string {
	return "shared_library_member"
}
