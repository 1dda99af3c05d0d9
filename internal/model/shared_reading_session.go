package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SharedReadingSession 共读会话表
// 书籍引用在创建时解析一次：命中书库则写 book_uuid，否则写
// 冗余的 book_title/book_author/book_pages 作为兜底，读取时优先书库
//
// ActiveGroupKey 在 status=ACTIVE 且归属小组时等于 group_uuid，
// 离开 ACTIVE 状态时置 NULL；唯一索引由此保证"一个小组至多一个
// 进行中会话"，并发创建时后插入方会命中唯一键冲突
type SharedReadingSession struct {
	gorm.Model
	Uuid           string         `gorm:"column:uuid;uniqueIndex;type:char(20);not null;comment:会话唯一id"`
	GroupUuid      string         `gorm:"column:group_uuid;index;type:char(20);comment:归属小组id，直连会话为空"`
	InitiatorId    string         `gorm:"column:initiator_id;index;type:char(20);not null;comment:发起人id"`
	PartnerIds     datatypes.JSON `gorm:"column:partner_ids;comment:直连会话的伙伴id列表"`
	ReadingMode    int8           `gorm:"column:reading_mode;not null;comment:共读模式，0.同书，1.各自"`
	Title          string         `gorm:"column:title;type:varchar(100);not null;comment:会话标题"`
	BookUuid       string         `gorm:"column:book_uuid;type:char(20);comment:解析成功的书目id"`
	BookTitle      string         `gorm:"column:book_title;type:varchar(200);comment:兜底书名"`
	BookAuthor     string         `gorm:"column:book_author;type:varchar(100);comment:兜底作者"`
	BookPages      int            `gorm:"column:book_pages;default:0;comment:兜底总页数"`
	Status         int8           `gorm:"column:status;default:0;comment:状态，0.进行中，1.暂停，2.完成，3.取消"`
	ActiveGroupKey *string        `gorm:"column:active_group_key;uniqueIndex;type:char(20);comment:进行中会话的小组唯一键"`
	StartDate      time.Time      `gorm:"column:start_date;not null;comment:开始时间"`
	TargetDate     *time.Time     `gorm:"column:target_date;comment:目标完成时间"`
	ActualEndDate  *time.Time     `gorm:"column:actual_end_date;comment:实际结束时间"`
}

func (SharedReadingSession) TableName() string {
	return "shared_reading_session"
}
