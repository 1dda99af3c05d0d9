package respond

import "time"

// ProgressRespond 更新进度响应
type ProgressRespond struct {
	SessionId      string    `json:"sessionId"`      // 会话id
	UserId         string    `json:"userId"`         // 用户id
	CurrentPage    int       `json:"currentPage"`    // 当前页
	TotalPages     int       `json:"totalPages"`     // 总页数
	ProgressPct    int       `json:"progressPct"`    // 进度百分比
	ReadingStatus  int8      `json:"readingStatus"`  // 阅读状态
	SessionStatus  int8      `json:"sessionStatus"`  // 会话状态
	LastActivityAt time.Time `json:"lastActivityAt"` // 最近活动时间
}
