package request

// AddLibraryBookRequest 向共享书架添加书籍
// BookRef 先按书目id解析，未命中时按操作者本人的书架条目id解引用
type AddLibraryBookRequest struct {
	LibraryId string `json:"libraryId" binding:"required"` // 书架id
	BookRef   string `json:"bookRef" binding:"required"`   // 书籍引用
	Notes     string `json:"notes" binding:"max=500"`      // 备注
}
