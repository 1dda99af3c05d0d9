package respond

// LibraryMemberRespond 书架成员
type LibraryMemberRespond struct {
	UserId   string `json:"userId"`   // 成员用户id
	Nickname string `json:"nickname"` // 成员昵称
	Avatar   string `json:"avatar"`   // 成员头像
	Role     int8   `json:"role"`     // 角色，0.成员，1.拥有者
}
