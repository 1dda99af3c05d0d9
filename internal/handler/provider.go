// Package handler 提供 HTTP 请求处理器
// 本文件实现 Handler 层的依赖注入和聚合
package handler

import (
	"bookmate_server/internal/service"
)

// Handlers 聚合所有 Handler 实例，Router 层据此注册路由
type Handlers struct {
	Relationship *RelationshipHandler
	Library      *LibraryHandler
	Session      *SessionHandler
	Message      *MessageHandler
	Notification *NotificationHandler
	Badge        *BadgeHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svcs *service.Services) *Handlers {
	return &Handlers{
		Relationship: NewRelationshipHandler(svcs.Relationship),
		Library:      NewLibraryHandler(svcs.Library),
		Session:      NewSessionHandler(svcs.Session),
		Message:      NewMessageHandler(svcs.Message),
		Notification: NewNotificationHandler(svcs.Notification),
		Badge:        NewBadgeHandler(svcs.Badge),
	}
}
