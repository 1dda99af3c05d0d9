// Package repository 提供数据访问层的具体实现
// 本文件实现 UserRepository 接口；用户表由外部系统维护，这里只读
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// userRepository UserRepository 接口的实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建 UserRepository 实例
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByUuid 根据 UUID 查找用户
func (r *userRepository) FindByUuid(uuid string) (*model.UserInfo, error) {
	var user model.UserInfo
	if err := r.db.First(&user, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 uuid=%s", uuid)
	}
	return &user, nil
}

// FindByUuids 批量根据 UUID 查找用户
func (r *userRepository) FindByUuids(uuids []string) ([]model.UserInfo, error) {
	if len(uuids) == 0 {
		return []model.UserInfo{}, nil
	}
	var users []model.UserInfo
	if err := r.db.Where("uuid IN ?", uuids).Find(&users).Error; err != nil {
		return nil, wrapDBError(err, "批量查询用户")
	}
	return users, nil
}

// ExistsByUuids 校验一组用户是否全部存在，返回缺失的 UUID 列表
func (r *userRepository) ExistsByUuids(uuids []string) ([]string, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var found []string
	if err := r.db.Model(&model.UserInfo{}).Where("uuid IN ?", uuids).Pluck("uuid", &found).Error; err != nil {
		return nil, wrapDBError(err, "批量校验用户")
	}
	foundSet := make(map[string]struct{}, len(found))
	for _, u := range found {
		foundSet[u] = struct{}{}
	}
	var missing []string
	for _, u := range uuids {
		if _, ok := foundSet[u]; !ok {
			missing = append(missing, u)
		}
	}
	return missing, nil
}
