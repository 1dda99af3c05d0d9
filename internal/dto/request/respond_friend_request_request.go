package request

// RespondFriendRequestRequest 处理好友申请
type RespondFriendRequestRequest struct {
	RequestId string `json:"requestId" binding:"required"`                 // 申请id
	Decision  string `json:"decision" binding:"required,oneof=accept reject"` // 处理结果
}
