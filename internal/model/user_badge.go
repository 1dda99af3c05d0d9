package model

import (
	"gorm.io/gorm"
)

// UserBadge 用户徽章表
// (user_uuid, badge_code) 唯一；授予采用 insert-if-absent，
// 并发重复评估不会产生第二行
type UserBadge struct {
	gorm.Model
	UserUuid  string `gorm:"column:user_uuid;uniqueIndex:idx_user_badge;type:char(20);not null;comment:用户id"`
	BadgeCode string `gorm:"column:badge_code;uniqueIndex:idx_user_badge;type:varchar(30);not null;comment:徽章编码"`
	Context   string `gorm:"column:context;type:varchar(200);comment:授予上下文，如触发的会话id"`
}

func (UserBadge) TableName() string {
	return "user_badge"
}
