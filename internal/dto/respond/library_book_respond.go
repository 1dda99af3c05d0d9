package respond

import "time"

// LibraryBookRespond 书架书籍
type LibraryBookRespond struct {
	BookId    string    `json:"bookId"`    // 书目id
	Title     string    `json:"title"`     // 书名
	Author    string    `json:"author"`    // 作者
	PageCount int       `json:"pageCount"` // 总页数
	CoverUrl  string    `json:"coverUrl"`  // 封面地址
	AddedBy   string    `json:"addedBy"`   // 添加人用户id
	Notes     string    `json:"notes"`     // 备注
	AddedAt   time.Time `json:"addedAt"`   // 添加时间
}
