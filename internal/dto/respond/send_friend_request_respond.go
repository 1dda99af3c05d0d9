package respond

// SendFriendRequestRespond 发起好友申请响应
type SendFriendRequestRespond struct {
	RequestId string `json:"requestId"` // 申请id
	Status    int8   `json:"status"`    // 申请状态
}
