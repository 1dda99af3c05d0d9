package request

// DeleteLibraryRequest 删除共享书架
type DeleteLibraryRequest struct {
	LibraryId string `json:"libraryId" binding:"required"` // 书架id
}
