// 本文件实现 GroupRepository 接口
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// groupRepository GroupRepository 接口的实现
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository 创建 GroupRepository 实例
func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

// FindByUuid 根据 UUID 查找小组
func (r *groupRepository) FindByUuid(uuid string) (*model.ReadingGroup, error) {
	var group model.ReadingGroup
	if err := r.db.First(&group, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询共读小组 uuid=%s", uuid)
	}
	return &group, nil
}

// FindByUuids 批量查找小组
func (r *groupRepository) FindByUuids(uuids []string) ([]model.ReadingGroup, error) {
	if len(uuids) == 0 {
		return []model.ReadingGroup{}, nil
	}
	var groups []model.ReadingGroup
	if err := r.db.Where("uuid IN ?", uuids).Find(&groups).Error; err != nil {
		return nil, wrapDBError(err, "批量查询共读小组")
	}
	return groups, nil
}

// Create 创建小组
func (r *groupRepository) Create(group *model.ReadingGroup) error {
	if err := r.db.Create(group).Error; err != nil {
		return wrapDBError(err, "创建共读小组")
	}
	return nil
}
