package respond

import "time"

// SessionSummaryRespond 会话列表项
type SessionSummaryRespond struct {
	SessionId   string                   `json:"sessionId"`   // 会话id
	GroupId     string                   `json:"groupId"`     // 小组id，直连会话为空
	Title       string                   `json:"title"`       // 会话标题
	ReadingMode int8                     `json:"readingMode"` // 共读模式
	Status      int8                     `json:"status"`      // 会话状态
	Book        SessionBookRespond       `json:"book"`        // 书籍快照
	StartDate   time.Time                `json:"startDate"`   // 开始时间
	TargetDate  *time.Time               `json:"targetDate"`  // 目标完成时间
	Aggregate   AggregateProgressRespond `json:"aggregate"`   // 进度汇总
}
