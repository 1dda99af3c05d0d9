package model

import (
	"gorm.io/gorm"
)

// ReadingGroup 共读小组表
// 一个小组同一时刻至多拥有一个进行中的共读会话
type ReadingGroup struct {
	gorm.Model
	Uuid       string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:小组唯一id"`
	Name       string `gorm:"column:name;type:varchar(50);not null;comment:小组名称"`
	Type       int8   `gorm:"column:type;not null;comment:类型，0.二人，1.小组，2.读书会"`
	MaxMembers int    `gorm:"column:max_members;default:10;comment:成员上限"`
	CreatorId  string `gorm:"column:creator_id;index;type:char(20);not null;comment:创建者id"`
	Status     int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.已解散"`
}

func (ReadingGroup) TableName() string {
	return "reading_group"
}
