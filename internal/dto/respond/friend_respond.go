package respond

import "time"

// FriendRespond 好友列表项
type FriendRespond struct {
	RelationshipId string    `json:"relationshipId"` // 关系id
	UserId         string    `json:"userId"`         // 好友用户id
	Nickname       string    `json:"nickname"`       // 好友昵称
	Avatar         string    `json:"avatar"`         // 好友头像
	TypeCode       string    `json:"typeCode"`       // 关系类型编码
	TypeName       string    `json:"typeName"`       // 关系类型名称
	TypeIcon       string    `json:"typeIcon"`       // 关系类型图标
	TypeColor      string    `json:"typeColor"`      // 关系类型颜色
	Since          time.Time `json:"since"`          // 成为好友时间
}
