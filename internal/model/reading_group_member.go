package model

import (
	"gorm.io/gorm"
)

// ReadingGroupMember 共读小组成员表
type ReadingGroupMember struct {
	gorm.Model
	GroupUuid string `gorm:"column:group_uuid;uniqueIndex:idx_group_member;type:char(20);not null;comment:小组id"`
	UserUuid  string `gorm:"column:user_uuid;index;uniqueIndex:idx_group_member;type:char(20);not null;comment:成员用户id"`
	Status    int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.已退出"`
}

func (ReadingGroupMember) TableName() string {
	return "reading_group_member"
}
