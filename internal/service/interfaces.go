// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// 接口设计遵循依赖倒置原则，便于测试和解耦
package service

import (
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/dto/respond"
)

// RelationshipService 好友关系业务接口
// 处理好友申请状态机：申请、响应、列表查询
type RelationshipService interface {
	// SendRequest 发起好友申请
	SendRequest(requesterId string, req request.SendFriendRequestRequest) (*respond.SendFriendRequestRespond, error)
	// RespondRequest 被申请人接受/拒绝申请
	RespondRequest(userId string, req request.RespondFriendRequestRequest) error
	// GetFriendList 获取已接受的好友列表
	GetFriendList(userId string) ([]respond.FriendRespond, error)
	// GetIncomingList 获取收到的待处理申请
	GetIncomingList(userId string) ([]respond.FriendRequestRespond, error)
	// GetOutgoingList 获取发出的未被拒绝的申请
	GetOutgoingList(userId string) ([]respond.FriendRequestRespond, error)
}

// LibraryService 共享书架业务接口
type LibraryService interface {
	// CreateLibrary 创建书架，成员行与书架行在同一事务写入
	CreateLibrary(creatorId string, req request.CreateLibraryRequest) (*respond.CreateLibraryRespond, error)
	// AddBook 向书架添加书籍，书籍引用先按书目id，再按本人书架条目id解析
	AddBook(userId string, req request.AddLibraryBookRequest) (*respond.AddLibraryBookRespond, error)
	// GetMyLibraryList 获取用户参与的书架列表
	GetMyLibraryList(userId string) ([]respond.LibrarySummaryRespond, error)
	// GetLibraryDetail 获取书架详情（仅成员可见）
	GetLibraryDetail(userId, libraryId string) (*respond.LibraryDetailRespond, error)
	// DeleteLibrary 删除书架及其成员/书籍关联（仅拥有者）
	DeleteLibrary(userId, libraryId string) error
}

// SessionService 共读会话业务接口
// 小组是会话的备选容器，其创建/列表操作也归属本接口
type SessionService interface {
	// CreateGroup 创建共读小组
	CreateGroup(creatorId string, req request.CreateGroupRequest) (*respond.GroupRespond, error)
	// GetMyGroupList 获取用户参与的小组列表
	GetMyGroupList(userId string) ([]respond.GroupRespond, error)
	// StartSession 开始共读会话，为全部参与者播种进度行
	StartSession(initiatorId string, req request.StartSessionRequest) (*respond.SessionDetailRespond, error)
	// UpdateProgress 更新本人进度，可能触发通知与会话完成
	UpdateProgress(userId string, req request.UpdateProgressRequest) (*respond.ProgressRespond, error)
	// GetSessionDetail 获取会话详情（仅参与者）
	GetSessionDetail(userId, sessionId string) (*respond.SessionDetailRespond, error)
	// GetActiveSessionList 获取用户参与的进行中会话
	GetActiveSessionList(userId string) ([]respond.SessionSummaryRespond, error)
	// DeleteSession 删除会话及其进度/消息（仅发起人）
	DeleteSession(userId, sessionId string) error
}

// MessageService 会话消息业务接口
type MessageService interface {
	// SendMessage 发送消息并向其余参与者扇出通知
	SendMessage(senderId string, req request.SendMessageRequest) (*respond.MessageRespond, error)
	// GetMessageList 获取会话最近消息（仅参与者）
	GetMessageList(userId string, req request.MessageListRequest) ([]respond.MessageRespond, error)
}

// NotificationService 通知业务接口
// 通知由业务事件落库；这里只提供读与已读确认
type NotificationService interface {
	// GetNotificationList 获取用户通知列表与未读数
	GetNotificationList(userId string, limit int) ([]respond.NotificationRespond, int64, error)
	// MarkRead 标记单条通知已读（仅接收人本人）
	MarkRead(userId, notificationId string) error
	// MarkAllRead 标记全部通知已读
	MarkAllRead(userId string) error
}

// BadgeService 徽章业务接口
type BadgeService interface {
	// GetMyBadgeList 获取用户已获得的徽章
	GetMyBadgeList(userId string) ([]respond.BadgeRespond, error)
}
