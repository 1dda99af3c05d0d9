package model

import (
	"gorm.io/gorm"
)

// SharedReadingMessage 会话消息表，只追加不修改
type SharedReadingMessage struct {
	gorm.Model
	Uuid        string `gorm:"column:uuid;uniqueIndex;type:char(36);not null;comment:消息唯一id"`
	SessionUuid string `gorm:"column:session_uuid;index;type:char(20);not null;comment:会话id"`
	SenderId    string `gorm:"column:sender_id;type:char(20);not null;comment:发送者id"`
	Type        int8   `gorm:"column:type;not null;comment:类型，0.文字，1.进度，2.系统，3.成就"`
	Content     string `gorm:"column:content;type:varchar(2000);not null;comment:内容"`
	PageRef     *int   `gorm:"column:page_ref;comment:引用页码，可空"`
	IsSpoiler   bool   `gorm:"column:is_spoiler;default:false;comment:是否剧透"`
}

func (SharedReadingMessage) TableName() string {
	return "shared_reading_message"
}
