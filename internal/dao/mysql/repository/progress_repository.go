// 本文件实现 ProgressRepository 接口，处理共读进度的数据库操作
package repository

import (
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/session/reading_status_enum"

	"gorm.io/gorm"
)

// progressRepository ProgressRepository 接口的实现
type progressRepository struct {
	db *gorm.DB
}

// NewProgressRepository 创建 ProgressRepository 实例
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Create 创建进度行（会话开始时播种）
func (r *progressRepository) Create(progress *model.SharedReadingProgress) error {
	if err := r.db.Create(progress).Error; err != nil {
		return wrapDBError(err, "创建共读进度")
	}
	return nil
}

// FindBySessionAndUser 查找参与者的进度行
func (r *progressRepository) FindBySessionAndUser(sessionUuid, userUuid string) (*model.SharedReadingProgress, error) {
	var progress model.SharedReadingProgress
	err := r.db.Where("session_uuid = ? AND user_uuid = ?", sessionUuid, userUuid).First(&progress).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询共读进度 session=%s user=%s", sessionUuid, userUuid)
	}
	return &progress, nil
}

// FindBySession 查找会话全部进度行
func (r *progressRepository) FindBySession(sessionUuid string) ([]model.SharedReadingProgress, error) {
	var list []model.SharedReadingProgress
	if err := r.db.Where("session_uuid = ?", sessionUuid).Find(&list).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话进度列表 session=%s", sessionUuid)
	}
	return list, nil
}

// FindSessionUuidsByUser 查找用户作为参与者的全部会话 UUID
func (r *progressRepository) FindSessionUuidsByUser(userUuid string) ([]string, error) {
	var uuids []string
	err := r.db.Model(&model.SharedReadingProgress{}).
		Where("user_uuid = ?", userUuid).
		Pluck("session_uuid", &uuids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户会话列表 user=%s", userUuid)
	}
	return uuids, nil
}

// Update 全字段更新进度行（同一用户的更新后写覆盖先写）
func (r *progressRepository) Update(progress *model.SharedReadingProgress) error {
	if err := r.db.Save(progress).Error; err != nil {
		return wrapDBError(err, "更新共读进度")
	}
	return nil
}

// CountCompletedByUser 统计用户已读完的会话数量
func (r *progressRepository) CountCompletedByUser(userUuid string) (int64, error) {
	var count int64
	err := r.db.Model(&model.SharedReadingProgress{}).
		Where("user_uuid = ? AND reading_status = ?", userUuid, reading_status_enum.COMPLETED).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "统计已读完会话 user=%s", userUuid)
	}
	return count, nil
}

// DeleteBySessionUuid 物理删除会话全部进度行
func (r *progressRepository) DeleteBySessionUuid(sessionUuid string) error {
	err := r.db.Unscoped().Where("session_uuid = ?", sessionUuid).Delete(&model.SharedReadingProgress{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除会话进度 session=%s", sessionUuid)
	}
	return nil
}
