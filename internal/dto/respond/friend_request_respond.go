package respond

import "time"

// FriendRequestRespond 好友申请列表项
// 收件箱视角 UserId 为申请人，发件箱视角 UserId 为被申请人
type FriendRequestRespond struct {
	RequestId string    `json:"requestId"` // 申请id
	UserId    string    `json:"userId"`    // 对端用户id
	Nickname  string    `json:"nickname"`  // 对端昵称
	Avatar    string    `json:"avatar"`    // 对端头像
	TypeCode  string    `json:"typeCode"`  // 关系类型编码
	Message   string    `json:"message"`   // 申请留言
	Status    int8      `json:"status"`    // 申请状态
	AppliedAt time.Time `json:"appliedAt"` // 申请时间
}
