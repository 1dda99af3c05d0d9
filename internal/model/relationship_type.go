package model

import (
	"gorm.io/gorm"
)

// RelationshipType 关系类型字典表
// 预置数据（书友/家人/同学/伴侣），极少变更，关系管理只读引用
type RelationshipType struct {
	gorm.Model
	Code  string `gorm:"column:code;uniqueIndex;type:varchar(20);not null;comment:类型编码"`
	Name  string `gorm:"column:name;type:varchar(20);not null;comment:展示名称"`
	Icon  string `gorm:"column:icon;type:varchar(50);comment:展示图标"`
	Color string `gorm:"column:color;type:char(10);comment:展示颜色"`
}

func (RelationshipType) TableName() string {
	return "relationship_type"
}
