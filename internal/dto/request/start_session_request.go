package request

import "time"

// StartSessionRequest 开始共读会话
// GroupId 与 PartnerIds 二选一：前者为小组会话，后者为直连会话
type StartSessionRequest struct {
	GroupId     string     `json:"groupId"`                          // 小组id，小组会话必填
	PartnerIds  []string   `json:"partnerIds" binding:"dive,required"` // 伙伴id列表，直连会话必填
	ReadingMode int8       `json:"readingMode" binding:"gte=0,lte=1"` // 共读模式，0.同书，1.各自
	Title       string     `json:"title" binding:"required,max=100"` // 会话标题
	BookRef     string     `json:"bookRef"`                          // 书籍引用，可空
	BookTitle   string     `json:"bookTitle" binding:"max=200"`      // 引用无法解析时的兜底书名
	BookAuthor  string     `json:"bookAuthor" binding:"max=100"`     // 兜底作者
	BookPages   int        `json:"bookPages" binding:"gte=0"`        // 兜底总页数
	TargetDate  *time.Time `json:"targetDate"`                       // 目标完成时间，可空
}
