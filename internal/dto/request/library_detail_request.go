package request

// LibraryDetailRequest 查询书架详情
type LibraryDetailRequest struct {
	LibraryId string `form:"libraryId" binding:"required"` // 书架id
}
