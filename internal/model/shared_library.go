package model

import (
	"gorm.io/gorm"
)

// SharedLibrary 共享书架表
// 创建、成员写入必须在同一事务内完成；删除级联成员与书籍关联
type SharedLibrary struct {
	gorm.Model
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:书架唯一id"`
	Name        string `gorm:"column:name;type:varchar(50);not null;comment:书架名称"`
	Description string `gorm:"column:description;type:varchar(500);comment:描述"`
	CreatorId   string `gorm:"column:creator_id;index;type:char(20);not null;comment:创建者id"`
}

func (SharedLibrary) TableName() string {
	return "shared_library"
}
