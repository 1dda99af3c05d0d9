// 本文件实现 SessionMessageRepository 接口，消息只追加不修改
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// sessionMessageRepository SessionMessageRepository 接口的实现
type sessionMessageRepository struct {
	db *gorm.DB
}

// NewSessionMessageRepository 创建 SessionMessageRepository 实例
func NewSessionMessageRepository(db *gorm.DB) SessionMessageRepository {
	return &sessionMessageRepository{db: db}
}

// Create 追加消息
func (r *sessionMessageRepository) Create(msg *model.SharedReadingMessage) error {
	if err := r.db.Create(msg).Error; err != nil {
		return wrapDBError(err, "创建会话消息")
	}
	return nil
}

// FindRecentBySession 查找会话最近的 limit 条消息，按时间倒序
func (r *sessionMessageRepository) FindRecentBySession(sessionUuid string, limit int) ([]model.SharedReadingMessage, error) {
	var msgs []model.SharedReadingMessage
	query := r.db.Where("session_uuid = ?", sessionUuid).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&msgs).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话消息 session=%s", sessionUuid)
	}
	return msgs, nil
}

// DeleteBySessionUuid 物理删除会话全部消息
func (r *sessionMessageRepository) DeleteBySessionUuid(sessionUuid string) error {
	err := r.db.Unscoped().Where("session_uuid = ?", sessionUuid).Delete(&model.SharedReadingMessage{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除会话消息 session=%s", sessionUuid)
	}
	return nil
}
