// 本文件实现 SessionRepository 接口，处理共读会话的数据库操作
package repository

import (
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/session/session_status_enum"

	"gorm.io/gorm"
)

// sessionRepository SessionRepository 接口的实现
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository 创建 SessionRepository 实例
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// FindByUuid 根据 UUID 查找会话
func (r *sessionRepository) FindByUuid(uuid string) (*model.SharedReadingSession, error) {
	var session model.SharedReadingSession
	if err := r.db.First(&session, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询共读会话 uuid=%s", uuid)
	}
	return &session, nil
}

// FindActiveByGroup 查找小组当前进行中的会话
// 仅用于创建前的友好检查；并发下的唯一性由 active_group_key 唯一索引兜底
func (r *sessionRepository) FindActiveByGroup(groupUuid string) (*model.SharedReadingSession, error) {
	var session model.SharedReadingSession
	err := r.db.Where("group_uuid = ? AND status = ?", groupUuid, session_status_enum.ACTIVE).First(&session).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询小组进行中会话 group=%s", groupUuid)
	}
	return &session, nil
}

// FindByUuids 批量查找会话
func (r *sessionRepository) FindByUuids(uuids []string) ([]model.SharedReadingSession, error) {
	if len(uuids) == 0 {
		return []model.SharedReadingSession{}, nil
	}
	var sessions []model.SharedReadingSession
	if err := r.db.Where("uuid IN ?", uuids).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, wrapDBError(err, "批量查询共读会话")
	}
	return sessions, nil
}

// Create 创建会话
// active_group_key 唯一键冲突（同组并发创建）由 wrapDBError 转为 CodeConflict
func (r *sessionRepository) Create(session *model.SharedReadingSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return wrapDBError(err, "创建共读会话")
	}
	return nil
}

// Update 全字段更新会话
func (r *sessionRepository) Update(session *model.SharedReadingSession) error {
	if err := r.db.Save(session).Error; err != nil {
		return wrapDBError(err, "更新共读会话")
	}
	return nil
}

// DeleteByUuid 物理删除会话行
// 进度行与消息行的删除由 Service 在同一事务内先行执行
func (r *sessionRepository) DeleteByUuid(uuid string) error {
	err := r.db.Unscoped().Where("uuid = ?", uuid).Delete(&model.SharedReadingSession{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除共读会话 uuid=%s", uuid)
	}
	return nil
}
