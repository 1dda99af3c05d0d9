package respond

// AggregateProgressRespond 会话进度汇总
type AggregateProgressRespond struct {
	ParticipantCount int     `json:"participantCount"` // 参与人数
	CompletedCount   int     `json:"completedCount"`   // 已读完人数
	AvgProgressPct   float64 `json:"avgProgressPct"`   // 平均进度百分比
	MinCurrentPage   int     `json:"minCurrentPage"`   // 最慢当前页
	MaxCurrentPage   int     `json:"maxCurrentPage"`   // 最快当前页
}
