// Package badge 徽章评估与查询
// 评估在接受好友、读完会话等状态转换后触发，必须幂等：
// 授予走 insert-if-absent，重复评估不会产生第二枚徽章或第二条通知
package badge

import (
	"fmt"

	"go.uber.org/zap"

	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/badge/badge_code_enum"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/errorx"
)

// Notifier 徽章解锁通知的最小依赖
type Notifier interface {
	Send(recipientId, ntype, title, message, relatedType, relatedId string)
}

// badgeService 徽章业务逻辑实现
type badgeService struct {
	repos    *repository.Repositories
	notifier Notifier
}

// NewBadgeService 构造函数
func NewBadgeService(repos *repository.Repositories, notifier Notifier) *badgeService {
	return &badgeService{repos: repos, notifier: notifier}
}

// EvaluateFriendBadges 好友申请被接受后评估社交类徽章
// 对申请双方各调用一次；评估失败只记日志，不影响主操作
func (b *badgeService) EvaluateFriendBadges(userId, relationshipId string) {
	count, err := b.repos.Relationship.CountAcceptedByUser(userId)
	if err != nil {
		zap.L().Error("count friends for badge evaluation failed", zap.String("user", userId), zap.Error(err))
		return
	}
	if count >= 1 {
		b.grant(userId, badge_code_enum.FIRST_FRIEND, relationshipId)
	}
	if count >= 5 {
		b.grant(userId, badge_code_enum.SOCIAL_CIRCLE, relationshipId)
	}
}

// EvaluateCompletionBadges 参与者读完一次共读后评估阅读类徽章
func (b *badgeService) EvaluateCompletionBadges(userId, sessionId string) {
	count, err := b.repos.Progress.CountCompletedByUser(userId)
	if err != nil {
		zap.L().Error("count completions for badge evaluation failed", zap.String("user", userId), zap.Error(err))
		return
	}
	if count >= 1 {
		b.grant(userId, badge_code_enum.FIRST_BOOK_FINISHED, sessionId)
	}
	if count >= 5 {
		b.grant(userId, badge_code_enum.READING_STREAK_5, sessionId)
	}
}

// grant 幂等授予，仅在新授予时发通知
func (b *badgeService) grant(userId, code, context string) {
	granted, err := b.repos.Badge.GrantIfAbsent(&model.UserBadge{
		UserUuid:  userId,
		BadgeCode: code,
		Context:   context,
	})
	if err != nil {
		zap.L().Error("grant badge failed",
			zap.String("user", userId), zap.String("badge", code), zap.Error(err))
		return
	}
	if !granted {
		return
	}

	name := code
	if dict, err := b.repos.Badge.FindByCodes([]string{code}); err == nil && len(dict) > 0 {
		name = dict[0].Name
	}
	zap.L().Info("badge granted", zap.String("user", userId), zap.String("badge", code))
	b.notifier.Send(userId, notification_type_enum.ACHIEVEMENT,
		"解锁新徽章", fmt.Sprintf("恭喜获得「%s」徽章", name), "badge", code)
}

// GetMyBadgeList 获取用户已获得的徽章
func (b *badgeService) GetMyBadgeList(userId string) ([]respond.BadgeRespond, error) {
	earned, err := b.repos.Badge.FindByUser(userId)
	if err != nil {
		zap.L().Error("find user badges failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(earned) == 0 {
		return []respond.BadgeRespond{}, nil
	}

	codes := make([]string, 0, len(earned))
	for _, ub := range earned {
		codes = append(codes, ub.BadgeCode)
	}
	dict, err := b.repos.Badge.FindByCodes(codes)
	if err != nil {
		zap.L().Error("find badge dictionary failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	dictByCode := make(map[string]model.Badge, len(dict))
	for _, d := range dict {
		dictByCode[d.Code] = d
	}

	rsp := make([]respond.BadgeRespond, 0, len(earned))
	for _, ub := range earned {
		d := dictByCode[ub.BadgeCode]
		rsp = append(rsp, respond.BadgeRespond{
			Code:        ub.BadgeCode,
			Name:        d.Name,
			Description: d.Description,
			Icon:        d.Icon,
			Context:     ub.Context,
			EarnedAt:    ub.CreatedAt,
		})
	}
	return rsp, nil
}
