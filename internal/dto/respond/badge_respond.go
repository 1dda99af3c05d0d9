package respond

import "time"

// BadgeRespond 已获得徽章
type BadgeRespond struct {
	Code        string    `json:"code"`        // 徽章编码
	Name        string    `json:"name"`        // 徽章名称
	Description string    `json:"description"` // 徽章描述
	Icon        string    `json:"icon"`        // 徽章图标
	Context     string    `json:"context"`     // 获得时的上下文
	EarnedAt    time.Time `json:"earnedAt"`    // 获得时间
}
