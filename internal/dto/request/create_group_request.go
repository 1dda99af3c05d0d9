package request

// CreateGroupRequest 创建共读小组
type CreateGroupRequest struct {
	Name       string   `json:"name" binding:"required,max=50"`   // 小组名称
	Type       int8     `json:"type" binding:"gte=0,lte=2"`       // 类型，0.二人，1.小组，2.读书会
	MaxMembers int      `json:"maxMembers" binding:"gte=0"`       // 成员上限，0 取默认值
	MemberIds  []string `json:"memberIds" binding:"dive,required"` // 初始成员id列表（不含创建者）
}
