package respond

import "time"

// ParticipantProgressRespond 参与者进度
type ParticipantProgressRespond struct {
	UserId         string    `json:"userId"`         // 参与者用户id
	Nickname       string    `json:"nickname"`       // 参与者昵称
	Avatar         string    `json:"avatar"`         // 参与者头像
	CurrentPage    int       `json:"currentPage"`    // 当前页
	TotalPages     int       `json:"totalPages"`     // 总页数
	ProgressPct    int       `json:"progressPct"`    // 进度百分比
	ReadingStatus  int8      `json:"readingStatus"`  // 阅读状态
	Notes          string    `json:"notes"`          // 笔记
	LastActivityAt time.Time `json:"lastActivityAt"` // 最近活动时间
}
