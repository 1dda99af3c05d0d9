package model

import (
	"time"

	"gorm.io/gorm"
)

// UserRelationship 用户关系表（好友申请/好友关系）
// 有向边 (requester_id, addressee_id)；同一无序用户对至多一行，
// 由有向唯一索引 + 查询层的对称查找共同保证
type UserRelationship struct {
	gorm.Model
	Uuid        string     `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:关系唯一id"`
	RequesterId string     `gorm:"column:requester_id;index;uniqueIndex:idx_relationship_pair;type:char(20);not null;comment:申请人id"`
	AddresseeId string     `gorm:"column:addressee_id;index;uniqueIndex:idx_relationship_pair;type:char(20);not null;comment:被申请人id"`
	TypeCode    string     `gorm:"column:type_code;type:varchar(20);comment:关系类型编码，可空"`
	Status      int8       `gorm:"column:status;not null;comment:状态，0.申请中，1.已接受，2.已拒绝，3.已拉黑"`
	Message     string     `gorm:"column:message;type:varchar(200);comment:申请留言"`
	RespondedAt *time.Time `gorm:"column:responded_at;comment:被申请人处理时间"`
}

func (UserRelationship) TableName() string {
	return "user_relationship"
}
