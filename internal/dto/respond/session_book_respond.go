package respond

// SessionBookRespond 会话书籍快照
type SessionBookRespond struct {
	BookId    string `json:"bookId"`    // 书目id，未解析时为空
	Title     string `json:"title"`     // 书名
	Author    string `json:"author"`    // 作者
	PageCount int    `json:"pageCount"` // 总页数
}
