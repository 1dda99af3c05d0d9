package respond

import "time"

// SessionDetailRespond 会话详情
type SessionDetailRespond struct {
	SessionId      string                       `json:"sessionId"`      // 会话id
	GroupId        string                       `json:"groupId"`        // 小组id，直连会话为空
	InitiatorId    string                       `json:"initiatorId"`    // 发起人用户id
	Title          string                       `json:"title"`          // 会话标题
	ReadingMode    int8                         `json:"readingMode"`    // 共读模式
	Status         int8                         `json:"status"`         // 会话状态
	Book           SessionBookRespond           `json:"book"`           // 书籍快照
	StartDate      time.Time                    `json:"startDate"`      // 开始时间
	TargetDate     *time.Time                   `json:"targetDate"`     // 目标完成时间
	ActualEndDate  *time.Time                   `json:"actualEndDate"`  // 实际结束时间
	Participants   []ParticipantProgressRespond `json:"participants"`   // 参与者进度
	Aggregate      AggregateProgressRespond     `json:"aggregate"`      // 进度汇总
	RecentMessages []MessageRespond             `json:"recentMessages"` // 最近消息
}
