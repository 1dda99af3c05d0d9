// 本文件实现 BookRepository 与 UserBookRepository 接口
// 书目与个人书架由个人 CRUD 子系统维护，这里只读，用于书籍引用解析
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// bookRepository BookRepository 接口的实现
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建 BookRepository 实例
func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// FindByUuid 根据 UUID 查找书目
func (r *bookRepository) FindByUuid(uuid string) (*model.Book, error) {
	var book model.Book
	if err := r.db.First(&book, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询书目 uuid=%s", uuid)
	}
	return &book, nil
}

// FindByUuids 批量根据 UUID 查找书目
func (r *bookRepository) FindByUuids(uuids []string) ([]model.Book, error) {
	if len(uuids) == 0 {
		return []model.Book{}, nil
	}
	var books []model.Book
	if err := r.db.Where("uuid IN ?", uuids).Find(&books).Error; err != nil {
		return nil, wrapDBError(err, "批量查询书目")
	}
	return books, nil
}

// userBookRepository UserBookRepository 接口的实现
type userBookRepository struct {
	db *gorm.DB
}

// NewUserBookRepository 创建 UserBookRepository 实例
func NewUserBookRepository(db *gorm.DB) UserBookRepository {
	return &userBookRepository{db: db}
}

// FindByUuidAndUser 查找指定用户名下的书架条目
// 只允许解引用操作者本人的条目，不能借别人的书架条目加书
func (r *userBookRepository) FindByUuidAndUser(uuid, userId string) (*model.UserBook, error) {
	var ub model.UserBook
	if err := r.db.Where("uuid = ? AND user_id = ?", uuid, userId).First(&ub).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询书架条目 uuid=%s user=%s", uuid, userId)
	}
	return &ub, nil
}
