// 本文件实现 BadgeRepository 接口
// 徽章授予采用 INSERT ... ON CONFLICT DO NOTHING 的 insert-if-absent
// 模式，(user_uuid, badge_code) 唯一键保证并发评估不会重复授予
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// badgeRepository BadgeRepository 接口的实现
type badgeRepository struct {
	db *gorm.DB
}

// NewBadgeRepository 创建 BadgeRepository 实例
func NewBadgeRepository(db *gorm.DB) BadgeRepository {
	return &badgeRepository{db: db}
}

// FindAll 查找全部徽章字典
func (r *badgeRepository) FindAll() ([]model.Badge, error) {
	var badges []model.Badge
	if err := r.db.Find(&badges).Error; err != nil {
		return nil, wrapDBError(err, "查询徽章字典")
	}
	return badges, nil
}

// FindByCodes 批量查找徽章字典
func (r *badgeRepository) FindByCodes(codes []string) ([]model.Badge, error) {
	if len(codes) == 0 {
		return []model.Badge{}, nil
	}
	var badges []model.Badge
	if err := r.db.Where("code IN ?", codes).Find(&badges).Error; err != nil {
		return nil, wrapDBError(err, "批量查询徽章字典")
	}
	return badges, nil
}

// CreateBadge 写入字典数据（仅用于种子初始化）
func (r *badgeRepository) CreateBadge(b *model.Badge) error {
	if err := r.db.Create(b).Error; err != nil {
		return wrapDBError(err, "创建徽章")
	}
	return nil
}

// GrantIfAbsent 幂等授予徽章，返回是否为新授予
func (r *badgeRepository) GrantIfAbsent(ub *model.UserBadge) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_uuid"}, {Name: "badge_code"}},
		DoNothing: true,
	}).Create(ub)
	if result.Error != nil {
		return false, wrapDBErrorf(result.Error, "授予徽章 user=%s badge=%s", ub.UserUuid, ub.BadgeCode)
	}
	return result.RowsAffected > 0, nil
}

// FindByUser 查找用户已获得的徽章
func (r *badgeRepository) FindByUser(userUuid string) ([]model.UserBadge, error) {
	var list []model.UserBadge
	err := r.db.Where("user_uuid = ?", userUuid).Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户徽章 user=%s", userUuid)
	}
	return list, nil
}
