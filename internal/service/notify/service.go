// Package notify 通知落库、扇出与读取
// 通知以数据库行为准；Kafka 镜像与缓存失效都是尽力而为，
// 任何失败只记日志，绝不向触发方返回错误
package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookmate_server/internal/dao/mysql/repository"
	myredis "bookmate_server/internal/dao/redis"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/infrastructure/mq"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/constants"
	"bookmate_server/pkg/errorx"
)

// Event 通知事件的 Kafka 载荷
type Event struct {
	NotificationId string    `json:"notificationId"`
	RecipientId    string    `json:"recipientId"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	RelatedType    string    `json:"relatedType"`
	RelatedId      string    `json:"relatedId"`
	CreatedAt      time.Time `json:"createdAt"`
}

// notificationService 通知业务逻辑实现，同时作为各业务的扇出入口
type notificationService struct {
	repos     *repository.Repositories
	cache     myredis.AsyncCacheService
	publisher mq.EventPublisher
}

// NewNotificationService 构造函数
func NewNotificationService(repos *repository.Repositories, cache myredis.AsyncCacheService, publisher mq.EventPublisher) *notificationService {
	return &notificationService{repos: repos, cache: cache, publisher: publisher}
}

// Send 为单个接收人创建通知并镜像到 Kafka
// 在业务事务提交之后调用；失败只记日志
func (n *notificationService) Send(recipientId, ntype, title, message, relatedType, relatedId string) {
	row := &model.Notification{
		Uuid:        uuid.NewString(),
		RecipientId: recipientId,
		Type:        ntype,
		Title:       title,
		Message:     message,
		RelatedType: relatedType,
		RelatedUuid: relatedId,
	}
	if err := n.repos.Notification.Create(row); err != nil {
		zap.L().Error("create notification failed",
			zap.String("recipient", recipientId), zap.String("type", ntype), zap.Error(err))
		return
	}

	// 未读数缓存失效，异步执行
	n.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = n.cache.Delete(ctx, "notify_unread_"+recipientId)
	})

	payload, err := json.Marshal(Event{
		NotificationId: row.Uuid,
		RecipientId:    recipientId,
		Type:           ntype,
		Title:          title,
		Message:        message,
		RelatedType:    relatedType,
		RelatedId:      relatedId,
		CreatedAt:      row.CreatedAt,
	})
	if err != nil {
		zap.L().Error("marshal notify event failed", zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := n.publisher.Publish(ctx, []byte(recipientId), payload); err != nil {
		zap.L().Warn("publish notify event failed",
			zap.String("recipient", recipientId), zap.Error(err))
	}
}

// Fanout 向一组接收人扇出同一通知，跳过 exclude（通常是触发者本人）
func (n *notificationService) Fanout(recipientIds []string, exclude, ntype, title, message, relatedType, relatedId string) {
	for _, rid := range recipientIds {
		if rid == exclude {
			continue
		}
		n.Send(rid, ntype, title, message, relatedType, relatedId)
	}
}

// GetNotificationList 获取用户通知列表与未读数
func (n *notificationService) GetNotificationList(userId string, limit int) ([]respond.NotificationRespond, int64, error) {
	rows, err := n.repos.Notification.FindByRecipient(userId, limit)
	if err != nil {
		zap.L().Error("find notifications failed", zap.String("user", userId), zap.Error(err))
		return nil, 0, errorx.ErrServerBusy
	}
	unread, err := n.unreadCount(userId)
	if err != nil {
		return nil, 0, errorx.ErrServerBusy
	}

	rsp := make([]respond.NotificationRespond, 0, len(rows))
	for _, row := range rows {
		rsp = append(rsp, respond.NotificationRespond{
			NotificationId: row.Uuid,
			Type:           row.Type,
			Title:          row.Title,
			Message:        row.Message,
			RelatedType:    row.RelatedType,
			RelatedId:      row.RelatedUuid,
			IsRead:         row.ReadAt != nil,
			CreatedAt:      row.CreatedAt,
		})
	}
	return rsp, unread, nil
}

// unreadCount 未读数，缓存优先
func (n *notificationService) unreadCount(userId string) (int64, error) {
	cacheKey := "notify_unread_" + userId
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if cached, err := n.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var count int64
		if err := json.Unmarshal([]byte(cached), &count); err == nil {
			return count, nil
		}
	}

	count, err := n.repos.Notification.CountUnreadByRecipient(userId)
	if err != nil {
		zap.L().Error("count unread notifications failed", zap.String("user", userId), zap.Error(err))
		return 0, err
	}
	n.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = n.cache.Set(ctx, cacheKey, string(mustMarshal(count)), time.Minute*constants.REDIS_TIMEOUT)
	})
	return count, nil
}

// MarkRead 标记单条通知已读
func (n *notificationService) MarkRead(userId, notificationId string) error {
	if err := n.repos.Notification.MarkRead(notificationId, userId); err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "通知不存在")
		}
		zap.L().Error("mark notification read failed",
			zap.String("user", userId), zap.String("notification", notificationId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	n.invalidateUnread(userId)
	return nil
}

// MarkAllRead 标记全部通知已读
func (n *notificationService) MarkAllRead(userId string) error {
	if err := n.repos.Notification.MarkAllRead(userId); err != nil {
		zap.L().Error("mark all notifications read failed", zap.String("user", userId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	n.invalidateUnread(userId)
	return nil
}

func (n *notificationService) invalidateUnread(userId string) {
	n.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = n.cache.Delete(ctx, "notify_unread_"+userId)
	})
}

func mustMarshal(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
