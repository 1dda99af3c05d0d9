package respond

import "time"

// NotificationRespond 通知
type NotificationRespond struct {
	NotificationId string    `json:"notificationId"` // 通知id
	Type           string    `json:"type"`           // 通知类型
	Title          string    `json:"title"`          // 标题
	Message        string    `json:"message"`        // 正文
	RelatedType    string    `json:"relatedType"`    // 关联对象类型
	RelatedId      string    `json:"relatedId"`      // 关联对象id
	IsRead         bool      `json:"isRead"`         // 是否已读
	CreatedAt      time.Time `json:"createdAt"`      // 创建时间
}
