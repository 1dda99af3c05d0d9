package respond

// CreateLibraryRespond 创建书架响应
type CreateLibraryRespond struct {
	LibraryId   string `json:"libraryId"`   // 书架id
	Name        string `json:"name"`        // 书架名称
	MemberCount int    `json:"memberCount"` // 成员数（含创建者）
}
