package request

// UpdateProgressRequest 更新个人共读进度
type UpdateProgressRequest struct {
	SessionId     string `json:"sessionId" binding:"required"` // 会话id
	CurrentPage   int    `json:"currentPage" binding:"gte=0"`  // 当前页
	TotalPages    int    `json:"totalPages" binding:"gte=0"`   // 总页数，0 表示沿用已有值
	ReadingStatus *int8  `json:"readingStatus" binding:"omitempty,gte=0,lte=3"` // 阅读状态，可空
	Notes         string `json:"notes" binding:"max=500"`      // 笔记
}
