package model

import (
	"gorm.io/gorm"
)

// Book 书目表（全局书库）
// 由个人书目 CRUD 子系统维护，本核心只读，用于解析书籍引用
type Book struct {
	gorm.Model
	Uuid      string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:书目唯一id"`
	Title     string `gorm:"column:title;type:varchar(200);not null;comment:书名"`
	Author    string `gorm:"column:author;type:varchar(100);comment:作者"`
	PageCount int    `gorm:"column:page_count;default:0;comment:总页数"`
	CoverUrl  string `gorm:"column:cover_url;type:char(255);comment:封面"`
}

func (Book) TableName() string {
	return "book"
}
