// 本文件实现 LibraryRepository 接口
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// libraryRepository LibraryRepository 接口的实现
type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository 创建 LibraryRepository 实例
func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

// FindByUuid 根据 UUID 查找书架
func (r *libraryRepository) FindByUuid(uuid string) (*model.SharedLibrary, error) {
	var lib model.SharedLibrary
	if err := r.db.First(&lib, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询共享书架 uuid=%s", uuid)
	}
	return &lib, nil
}

// FindByUuids 批量查找书架
func (r *libraryRepository) FindByUuids(uuids []string) ([]model.SharedLibrary, error) {
	if len(uuids) == 0 {
		return []model.SharedLibrary{}, nil
	}
	var libs []model.SharedLibrary
	if err := r.db.Where("uuid IN ?", uuids).Order("created_at DESC").Find(&libs).Error; err != nil {
		return nil, wrapDBError(err, "批量查询共享书架")
	}
	return libs, nil
}

// Create 创建书架
func (r *libraryRepository) Create(lib *model.SharedLibrary) error {
	if err := r.db.Create(lib).Error; err != nil {
		return wrapDBError(err, "创建共享书架")
	}
	return nil
}

// DeleteByUuid 物理删除书架行
// 成员行与书籍关联的删除由 Service 在同一事务内先行执行
func (r *libraryRepository) DeleteByUuid(uuid string) error {
	if err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.SharedLibrary{}).Error; err != nil {
		return wrapDBErrorf(err, "删除共享书架 uuid=%s", uuid)
	}
	return nil
}
