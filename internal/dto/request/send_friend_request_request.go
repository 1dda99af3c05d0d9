package request

// SendFriendRequestRequest 发起好友申请
// 申请人取自认证上下文，不在请求体中出现
type SendFriendRequestRequest struct {
	AddresseeId string `json:"addresseeId" binding:"required"`    // 被申请人id
	TypeCode    string `json:"typeCode" binding:"max=20"`         // 关系类型编码，可空
	Message     string `json:"message" binding:"max=200"`         // 申请留言
}
