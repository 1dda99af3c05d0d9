package respond

// AddLibraryBookRespond 添加书籍响应
type AddLibraryBookRespond struct {
	LibraryId string `json:"libraryId"` // 书架id
	BookId    string `json:"bookId"`    // 解析后的书目id
	Title     string `json:"title"`     // 书名
}
