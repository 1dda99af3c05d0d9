package model

import (
	"gorm.io/gorm"
)

// Badge 徽章字典表，预置数据
type Badge struct {
	gorm.Model
	Code        string `gorm:"column:code;uniqueIndex;type:varchar(30);not null;comment:徽章编码"`
	Name        string `gorm:"column:name;type:varchar(50);not null;comment:展示名称"`
	Description string `gorm:"column:description;type:varchar(200);comment:描述"`
	Icon        string `gorm:"column:icon;type:varchar(50);comment:图标"`
}

func (Badge) TableName() string {
	return "badge"
}
