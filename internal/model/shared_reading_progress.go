package model

import (
	"time"

	"gorm.io/gorm"
)

// SharedReadingProgress 共读进度表
// 每个 (session_uuid, user_uuid) 一行，即"参与者"的定义；
// 仅本人可更新，随会话删除级联删除
type SharedReadingProgress struct {
	gorm.Model
	SessionUuid    string    `gorm:"column:session_uuid;uniqueIndex:idx_session_user;type:char(20);not null;comment:会话id"`
	UserUuid       string    `gorm:"column:user_uuid;index;uniqueIndex:idx_session_user;type:char(20);not null;comment:参与者id"`
	CurrentPage    int       `gorm:"column:current_page;default:0;comment:当前页"`
	TotalPages     int       `gorm:"column:total_pages;default:0;comment:总页数"`
	ProgressPct    int       `gorm:"column:progress_pct;default:0;comment:进度百分比，四舍五入"`
	ReadingStatus  int8      `gorm:"column:reading_status;default:0;comment:阅读状态，0.未开始，1.阅读中，2.暂停，3.已读完"`
	Notes          string    `gorm:"column:notes;type:varchar(500);comment:笔记"`
	LastActivityAt time.Time `gorm:"column:last_activity_at;comment:最后活动时间"`
}

func (SharedReadingProgress) TableName() string {
	return "shared_reading_progress"
}
