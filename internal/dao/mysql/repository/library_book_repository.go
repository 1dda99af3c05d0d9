// 本文件实现 LibraryBookRepository 接口
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// libraryBookRepository LibraryBookRepository 接口的实现
type libraryBookRepository struct {
	db *gorm.DB
}

// NewLibraryBookRepository 创建 LibraryBookRepository 实例
func NewLibraryBookRepository(db *gorm.DB) LibraryBookRepository {
	return &libraryBookRepository{db: db}
}

// Create 添加书籍关联
// (library_uuid, book_uuid) 唯一键冲突会被 wrapDBError 归一化为 CodeConflict
func (r *libraryBookRepository) Create(book *model.SharedLibraryBook) error {
	if err := r.db.Create(book).Error; err != nil {
		return wrapDBError(err, "添加书架书籍")
	}
	return nil
}

// FindByLibraryAndBook 查找关联行，用于重复添加检查
func (r *libraryBookRepository) FindByLibraryAndBook(libraryUuid, bookUuid string) (*model.SharedLibraryBook, error) {
	var book model.SharedLibraryBook
	err := r.db.Where("library_uuid = ? AND book_uuid = ?", libraryUuid, bookUuid).First(&book).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询书架书籍 library=%s book=%s", libraryUuid, bookUuid)
	}
	return &book, nil
}

// FindByLibrary 查找书架全部书籍关联，按添加时间倒序
func (r *libraryBookRepository) FindByLibrary(libraryUuid string, limit int) ([]model.SharedLibraryBook, error) {
	var books []model.SharedLibraryBook
	query := r.db.Where("library_uuid = ?", libraryUuid).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&books).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询书架书籍列表 library=%s", libraryUuid)
	}
	return books, nil
}

// CountByLibrary 统计书架书籍数量
func (r *libraryBookRepository) CountByLibrary(libraryUuid string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SharedLibraryBook{}).Where("library_uuid = ?", libraryUuid).Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "统计书架书籍 library=%s", libraryUuid)
	}
	return count, nil
}

// DeleteByLibraryUuid 物理删除书架全部书籍关联
func (r *libraryBookRepository) DeleteByLibraryUuid(libraryUuid string) error {
	err := r.db.Unscoped().Where("library_uuid = ?", libraryUuid).Delete(&model.SharedLibraryBook{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除书架书籍 library=%s", libraryUuid)
	}
	return nil
}
