package respond

// LibrarySummaryRespond 书架列表项
type LibrarySummaryRespond struct {
	LibraryId   string               `json:"libraryId"`   // 书架id
	Name        string               `json:"name"`        // 书架名称
	Description string               `json:"description"` // 描述
	IsOwner     bool                 `json:"isOwner"`     // 当前用户是否拥有者
	MemberCount int                  `json:"memberCount"` // 成员数
	BookCount   int64                `json:"bookCount"`   // 书籍数
	RecentBooks []LibraryBookRespond `json:"recentBooks"` // 最近添加的书籍
}
