package model

import (
	"time"

	"gorm.io/gorm"
)

// Notification 通知表
// 由关系/会话/消息事件派生落库；推送投递由外部系统负责。
// 唯一的后续写操作是已读确认（read_at）
type Notification struct {
	gorm.Model
	Uuid        string     `gorm:"column:uuid;uniqueIndex;type:char(36);not null;comment:通知唯一id"`
	RecipientId string     `gorm:"column:recipient_id;index;type:char(20);not null;comment:接收人id"`
	Type        string     `gorm:"column:type;type:varchar(30);not null;comment:通知类型"`
	Title       string     `gorm:"column:title;type:varchar(100);not null;comment:标题"`
	Message     string     `gorm:"column:message;type:varchar(500);comment:正文"`
	RelatedType string     `gorm:"column:related_type;type:varchar(30);comment:关联实体类型"`
	RelatedUuid string     `gorm:"column:related_uuid;type:char(36);comment:关联实体id"`
	ReadAt      *time.Time `gorm:"column:read_at;comment:已读时间，空为未读"`
}

func (Notification) TableName() string {
	return "notification"
}
