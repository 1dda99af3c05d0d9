package model

import (
	"gorm.io/gorm"
)

// UserInfo 用户信息表
// 由外部认证/用户系统维护，本服务只读，仅用于校验用户存在和补全展示字段
type UserInfo struct {
	gorm.Model
	Uuid     string `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:用户唯一id"`
	Nickname string `gorm:"column:nickname;type:varchar(20);not null;comment:昵称"`
	Email    string `gorm:"column:email;type:varchar(50);comment:邮箱"`
	Avatar   string `gorm:"column:avatar;type:char(255);comment:头像"`
	Status   int8   `gorm:"column:status;default:0;comment:状态，0.正常，1.禁用"`
}

func (UserInfo) TableName() string {
	return "user_info"
}
