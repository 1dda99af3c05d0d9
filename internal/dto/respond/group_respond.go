package respond

// GroupRespond 共读小组
type GroupRespond struct {
	GroupId     string `json:"groupId"`     // 小组id
	Name        string `json:"name"`        // 小组名称
	Type        int8   `json:"type"`        // 小组类型
	MaxMembers  int    `json:"maxMembers"`  // 成员上限
	CreatorId   string `json:"creatorId"`   // 创建者用户id
	MemberCount int    `json:"memberCount"` // 当前成员数
}
