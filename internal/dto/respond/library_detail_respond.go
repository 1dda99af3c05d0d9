package respond

// LibraryDetailRespond 书架详情
type LibraryDetailRespond struct {
	LibraryId   string                 `json:"libraryId"`   // 书架id
	Name        string                 `json:"name"`        // 书架名称
	Description string                 `json:"description"` // 描述
	CreatorId   string                 `json:"creatorId"`   // 创建者用户id
	IsOwner     bool                   `json:"isOwner"`     // 当前用户是否拥有者
	Members     []LibraryMemberRespond `json:"members"`     // 成员列表
	Books       []LibraryBookRespond   `json:"books"`       // 书籍列表
}
