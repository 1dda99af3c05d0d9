package model

import (
	"gorm.io/gorm"
)

// SharedLibraryBook 共享书架书籍关联表
// (library_uuid, book_uuid) 唯一，book_uuid 永远是解析后的书目id
type SharedLibraryBook struct {
	gorm.Model
	LibraryUuid string `gorm:"column:library_uuid;uniqueIndex:idx_library_book;type:char(20);not null;comment:书架id"`
	BookUuid    string `gorm:"column:book_uuid;uniqueIndex:idx_library_book;type:char(20);not null;comment:书目id"`
	AddedBy     string `gorm:"column:added_by;type:char(20);not null;comment:添加人id"`
	Notes       string `gorm:"column:notes;type:varchar(500);comment:备注"`
}

func (SharedLibraryBook) TableName() string {
	return "shared_library_book"
}
