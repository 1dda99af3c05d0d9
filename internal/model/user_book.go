package model

import (
	"gorm.io/gorm"
)

// UserBook 个人书架条目
// 由个人书目 CRUD 子系统维护，本核心只读：当书籍引用无法直接命中
// 全局书库时，按"操作者本人的书架条目id"解引用到书目id
type UserBook struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:条目唯一id"`
	UserId   string `gorm:"column:user_id;index;type:char(20);not null;comment:所属用户id"`
	BookUuid string `gorm:"column:book_uuid;index;type:char(20);not null;comment:书目id"`
	Status   int8   `gorm:"column:status;default:0;comment:阅读状态（个人子系统语义）"`
}

func (UserBook) TableName() string {
	return "user_book"
}
