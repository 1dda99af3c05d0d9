package constants

const (
	REDIS_TIMEOUT              = 30  // 缓存默认过期时间（分钟）
	RECENT_BOOKS_LIMIT         = 5   // 书架列表预览的最近书籍数量
	RECENT_MESSAGES_LIMIT      = 50  // 会话详情返回的最近消息数量
	NOTIFY_PREVIEW_LEN         = 50  // 消息通知的内容预览截断长度（按 rune）
	PROGRESS_NOTIFY_DELTA      = 10  // 触发进度通知的最小页数增量
	DEFAULT_TOTAL_PAGES        = 300 // 无法解析书籍页数时的兜底总页数
	REFRESH_TOKEN_EXPIRY_HOURS = 168 // Refresh Token 有效期（小时），168小时 = 7天
)
