package request

// CreateLibraryRequest 创建共享书架
type CreateLibraryRequest struct {
	Name        string   `json:"name" binding:"required,max=50"`            // 书架名称
	Description string   `json:"description" binding:"max=500"`            // 描述
	MemberIds   []string `json:"memberIds" binding:"required,min=1,dive,required"` // 初始成员id列表（不含创建者）
}
