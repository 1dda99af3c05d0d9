// 本文件实现 NotificationRepository 接口
// 通知只落库；唯一的后续写操作是已读确认
package repository

import (
	"time"

	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// notificationRepository NotificationRepository 接口的实现
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository 创建 NotificationRepository 实例
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

// Create 创建通知行
func (r *notificationRepository) Create(n *model.Notification) error {
	if err := r.db.Create(n).Error; err != nil {
		return wrapDBError(err, "创建通知")
	}
	return nil
}

// FindByRecipient 查找用户的通知，按时间倒序
func (r *notificationRepository) FindByRecipient(recipientId string, limit int) ([]model.Notification, error) {
	var list []model.Notification
	query := r.db.Where("recipient_id = ?", recipientId).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&list).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询通知列表 user=%s", recipientId)
	}
	return list, nil
}

// CountUnreadByRecipient 统计用户未读通知数量
func (r *notificationRepository) CountUnreadByRecipient(recipientId string) (int64, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientId).
		Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "统计未读通知 user=%s", recipientId)
	}
	return count, nil
}

// MarkRead 将指定通知标记为已读（仅限接收人本人）
func (r *notificationRepository) MarkRead(uuid, recipientId string) error {
	now := time.Now()
	result := r.db.Model(&model.Notification{}).
		Where("uuid = ? AND recipient_id = ? AND read_at IS NULL", uuid, recipientId).
		Update("read_at", &now)
	if result.Error != nil {
		return wrapDBErrorf(result.Error, "标记通知已读 uuid=%s", uuid)
	}
	if result.RowsAffected == 0 {
		return wrapDBErrorf(gorm.ErrRecordNotFound, "通知不存在或已读 uuid=%s", uuid)
	}
	return nil
}

// MarkAllRead 将用户全部未读通知标记为已读
func (r *notificationRepository) MarkAllRead(recipientId string) error {
	now := time.Now()
	err := r.db.Model(&model.Notification{}).
		Where("recipient_id = ? AND read_at IS NULL", recipientId).
		Update("read_at", &now).Error
	if err != nil {
		return wrapDBErrorf(err, "标记全部通知已读 user=%s", recipientId)
	}
	return nil
}
