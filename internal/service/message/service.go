// Package message 会话内消息
// 消息只追加不修改；发送成功后向其余参与者扇出通知，
// 通知正文截断为预览，剧透消息不在预览中展示内容
package message

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/constants"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/errorx"
)

// Notifier 消息事件的通知依赖
type Notifier interface {
	Fanout(recipientIds []string, exclude, ntype, title, message, relatedType, relatedId string)
}

// messageService 会话消息业务逻辑实现
type messageService struct {
	repos    *repository.Repositories
	notifier Notifier
}

// NewMessageService 构造函数
func NewMessageService(repos *repository.Repositories, notifier Notifier) *messageService {
	return &messageService{repos: repos, notifier: notifier}
}

// SendMessage 发送消息，仅参与者可发
func (m *messageService) SendMessage(senderId string, req request.SendMessageRequest) (*respond.MessageRespond, error) {
	if _, err := m.repos.Session.FindByUuid(req.SessionId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error("find session failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if _, err := m.repos.Progress.FindBySessionAndUser(req.SessionId, senderId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该会话的参与者")
		}
		zap.L().Error("find progress failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	msg := &model.SharedReadingMessage{
		Uuid:        uuid.NewString(),
		SessionUuid: req.SessionId,
		SenderId:    senderId,
		Type:        req.Type,
		Content:     req.Content,
		PageRef:     req.PageRef,
		IsSpoiler:   req.IsSpoiler,
	}
	if err := m.repos.SessionMessage.Create(msg); err != nil {
		zap.L().Error("create message failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	sender, err := m.repos.User.FindByUuid(senderId)
	senderName := senderId
	if err == nil {
		senderName = sender.Nickname
	}

	rows, err := m.repos.Progress.FindBySession(req.SessionId)
	if err == nil {
		recipientIds := make([]string, 0, len(rows))
		for _, row := range rows {
			recipientIds = append(recipientIds, row.UserUuid)
		}
		m.notifier.Fanout(recipientIds, senderId, notification_type_enum.MESSAGE,
			"新的共读消息", fmt.Sprintf("%s: %s", senderName, preview(msg)), "message", msg.Uuid)
	} else {
		zap.L().Error("find participants for fanout failed", zap.String("session", req.SessionId), zap.Error(err))
	}

	return &respond.MessageRespond{
		MessageId:  msg.Uuid,
		SessionId:  msg.SessionUuid,
		SenderId:   senderId,
		SenderName: senderName,
		Type:       msg.Type,
		Content:    msg.Content,
		PageRef:    msg.PageRef,
		IsSpoiler:  msg.IsSpoiler,
		SentAt:     msg.CreatedAt,
	}, nil
}

// preview 通知正文预览，按 rune 截断，剧透消息隐藏内容
func preview(msg *model.SharedReadingMessage) string {
	if msg.IsSpoiler {
		return "[剧透内容]"
	}
	runes := []rune(msg.Content)
	if len(runes) <= constants.NOTIFY_PREVIEW_LEN {
		return msg.Content
	}
	return string(runes[:constants.NOTIFY_PREVIEW_LEN]) + "..."
}

// GetMessageList 获取会话最近消息，仅参与者可见，时间升序返回
func (m *messageService) GetMessageList(userId string, req request.MessageListRequest) ([]respond.MessageRespond, error) {
	if _, err := m.repos.Progress.FindBySessionAndUser(req.SessionId, userId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该会话的参与者")
		}
		zap.L().Error("find progress failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	limit := req.Limit
	if limit <= 0 {
		limit = constants.RECENT_MESSAGES_LIMIT
	}
	msgs, err := m.repos.SessionMessage.FindRecentBySession(req.SessionId, limit)
	if err != nil {
		zap.L().Error("find session messages failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(msgs) == 0 {
		return []respond.MessageRespond{}, nil
	}

	senderIds := make([]string, 0, len(msgs))
	seen := make(map[string]struct{}, len(msgs))
	for _, msg := range msgs {
		if _, ok := seen[msg.SenderId]; ok {
			continue
		}
		seen[msg.SenderId] = struct{}{}
		senderIds = append(senderIds, msg.SenderId)
	}
	users, err := m.repos.User.FindByUuids(senderIds)
	if err != nil {
		zap.L().Error("batch find senders failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	// 仓储按时间倒序返回，这里翻转为升序方便客户端渲染
	rsp := make([]respond.MessageRespond, 0, len(msgs))
	for i := len(msgs) - 1; i >= 0; i-- {
		msg := msgs[i]
		rsp = append(rsp, respond.MessageRespond{
			MessageId:  msg.Uuid,
			SessionId:  msg.SessionUuid,
			SenderId:   msg.SenderId,
			SenderName: userByUuid[msg.SenderId].Nickname,
			Type:       msg.Type,
			Content:    msg.Content,
			PageRef:    msg.PageRef,
			IsSpoiler:  msg.IsSpoiler,
			SentAt:     msg.CreatedAt,
		})
	}
	return rsp, nil
}
