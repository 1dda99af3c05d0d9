// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"bookmate_server/internal/dao/mysql/repository"
	myredis "bookmate_server/internal/dao/redis"
	"bookmate_server/internal/infrastructure/mq"
	"bookmate_server/internal/service/badge"
	"bookmate_server/internal/service/library"
	"bookmate_server/internal/service/message"
	"bookmate_server/internal/service/notify"
	"bookmate_server/internal/service/relationship"
	"bookmate_server/internal/service/session"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过此结构访问各个 Service
type Services struct {
	Relationship RelationshipService
	Library      LibraryService
	Session      SessionService
	Message      MessageService
	Notification NotificationService
	Badge        BadgeService
}

// NewServices 创建并注入所有 Service 实例
// 通知服务被其余业务作为扇出入口复用，徽章评估挂在状态转换之后
func NewServices(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *Services {
	notifySvc := notify.NewNotificationService(repos, cache, publisher)
	badgeSvc := badge.NewBadgeService(repos, notifySvc)

	return &Services{
		Relationship: relationship.NewRelationshipService(repos, cache, notifySvc, badgeSvc),
		Library:      library.NewLibraryService(repos, cache),
		Session:      session.NewSessionService(repos, notifySvc, badgeSvc),
		Message:      message.NewMessageService(repos, notifySvc),
		Notification: notifySvc,
		Badge:        badgeSvc,
	}
}
