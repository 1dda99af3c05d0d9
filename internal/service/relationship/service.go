// Package relationship 好友关系状态机
// 同一无序用户对至多一行关系；方向由 requester/addressee 表达，
// 查询统一走对称查找
package relationship

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"bookmate_server/internal/dao/mysql/repository"
	myredis "bookmate_server/internal/dao/redis"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/constants"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/enum/relationship/relationship_status_enum"
	"bookmate_server/pkg/errorx"
	"bookmate_server/pkg/util/random"
)

// Notifier 关系事件的通知依赖
type Notifier interface {
	Send(recipientId, ntype, title, message, relatedType, relatedId string)
}

// BadgeEvaluator 接受申请后的徽章评估依赖
type BadgeEvaluator interface {
	EvaluateFriendBadges(userId, relationshipId string)
}

// relationshipService 好友关系业务逻辑实现
type relationshipService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	notifier Notifier
	badges   BadgeEvaluator
}

// NewRelationshipService 构造函数
func NewRelationshipService(repos *repository.Repositories, cache myredis.AsyncCacheService, notifier Notifier, badges BadgeEvaluator) *relationshipService {
	return &relationshipService{repos: repos, cache: cache, notifier: notifier, badges: badges}
}

// SendRequest 发起好友申请
// 同一用户对之间只要存在关系行就冲突，按状态给出不同提示
func (r *relationshipService) SendRequest(requesterId string, req request.SendFriendRequestRequest) (*respond.SendFriendRequestRespond, error) {
	if requesterId == req.AddresseeId {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能向自己发起好友申请")
	}

	if _, err := r.repos.User.FindByUuid(req.AddresseeId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "被申请用户不存在")
		}
		zap.L().Error("find addressee failed", zap.String("addressee", req.AddresseeId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if req.TypeCode != "" {
		if _, err := r.repos.RelationshipType.FindByCode(req.TypeCode); err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.New(errorx.CodeInvalidParam, "未知的关系类型")
			}
			zap.L().Error("find relationship type failed", zap.String("code", req.TypeCode), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
	}

	existing, err := r.repos.Relationship.FindByPair(requesterId, req.AddresseeId)
	if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("find relationship pair failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if existing != nil {
		switch existing.Status {
		case relationship_status_enum.PENDING:
			return nil, errorx.New(errorx.CodeConflict, "该用户对之间已有待处理的申请")
		case relationship_status_enum.ACCEPTED:
			return nil, errorx.New(errorx.CodeConflict, "你们已经是好友了")
		case relationship_status_enum.REJECTED:
			return nil, errorx.New(errorx.CodeConflict, "该申请已被拒绝，无法再次发起")
		default:
			return nil, errorx.New(errorx.CodeForbidden, "无法向该用户发起申请")
		}
	}

	rel := &model.UserRelationship{
		Uuid:        "R" + random.GetNowAndLenRandomString(13),
		RequesterId: requesterId,
		AddresseeId: req.AddresseeId,
		TypeCode:    req.TypeCode,
		Status:      relationship_status_enum.PENDING,
		Message:     req.Message,
	}
	if err := r.repos.Relationship.Create(rel); err != nil {
		// 并发下对向申请先落库，命中有向唯一索引
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "该用户对之间已有待处理的申请")
		}
		zap.L().Error("create relationship failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	requester, err := r.repos.User.FindByUuid(requesterId)
	requesterName := requesterId
	if err == nil {
		requesterName = requester.Nickname
	}
	r.notifier.Send(req.AddresseeId, notification_type_enum.FRIEND_REQUEST,
		"新的好友申请", requesterName+" 想添加你为书友", "relationship", rel.Uuid)

	return &respond.SendFriendRequestRespond{RequestId: rel.Uuid, Status: rel.Status}, nil
}

// RespondRequest 被申请人处理申请
// 要求存在一条以当前用户为被申请人的待处理记录，
// 不是被申请人或申请已被处理都按不存在返回，不向申请方泄露关系状态
func (r *relationshipService) RespondRequest(userId string, req request.RespondFriendRequestRequest) error {
	rel, err := r.repos.Relationship.FindByUuid(req.RequestId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "待处理的好友申请不存在")
		}
		zap.L().Error("find relationship failed", zap.String("uuid", req.RequestId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if rel.AddresseeId != userId || rel.Status != relationship_status_enum.PENDING {
		return errorx.New(errorx.CodeNotFound, "待处理的好友申请不存在")
	}

	now := time.Now()
	rel.RespondedAt = &now
	if req.Decision == "accept" {
		rel.Status = relationship_status_enum.ACCEPTED
	} else {
		rel.Status = relationship_status_enum.REJECTED
	}
	if err := r.repos.Relationship.Update(rel); err != nil {
		zap.L().Error("update relationship failed", zap.String("uuid", rel.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}

	r.invalidateFriendList(rel.RequesterId)
	r.invalidateFriendList(rel.AddresseeId)

	if rel.Status == relationship_status_enum.ACCEPTED {
		addressee, err := r.repos.User.FindByUuid(userId)
		addresseeName := userId
		if err == nil {
			addresseeName = addressee.Nickname
		}
		r.notifier.Send(rel.RequesterId, notification_type_enum.FRIEND_ACCEPTED,
			"好友申请已通过", addresseeName+" 接受了你的好友申请", "relationship", rel.Uuid)
		r.badges.EvaluateFriendBadges(rel.RequesterId, rel.Uuid)
		r.badges.EvaluateFriendBadges(rel.AddresseeId, rel.Uuid)
	}
	return nil
}

// GetFriendList 获取已接受的好友列表，缓存优先
func (r *relationshipService) GetFriendList(userId string) ([]respond.FriendRespond, error) {
	cacheKey := "friend_list_" + userId
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if cached, err := r.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rsp []respond.FriendRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
	}

	rels, err := r.repos.Relationship.FindAcceptedByUser(userId)
	if err != nil {
		zap.L().Error("find accepted relationships failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(rels) == 0 {
		return []respond.FriendRespond{}, nil
	}

	friendIds := make([]string, 0, len(rels))
	for _, rel := range rels {
		friendIds = append(friendIds, otherSide(&rel, userId))
	}
	users, err := r.repos.User.FindByUuids(friendIds)
	if err != nil {
		zap.L().Error("batch find friends failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	types, err := r.repos.RelationshipType.FindAll()
	if err != nil {
		zap.L().Error("find relationship types failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	typeByCode := make(map[string]model.RelationshipType, len(types))
	for _, t := range types {
		typeByCode[t.Code] = t
	}

	rsp := make([]respond.FriendRespond, 0, len(rels))
	for _, rel := range rels {
		friendId := otherSide(&rel, userId)
		friend, ok := userByUuid[friendId]
		if !ok {
			continue
		}
		since := rel.UpdatedAt
		if rel.RespondedAt != nil {
			since = *rel.RespondedAt
		}
		item := respond.FriendRespond{
			RelationshipId: rel.Uuid,
			UserId:         friend.Uuid,
			Nickname:       friend.Nickname,
			Avatar:         friend.Avatar,
			TypeCode:       rel.TypeCode,
			Since:          since,
		}
		if t, ok := typeByCode[rel.TypeCode]; ok {
			item.TypeName = t.Name
			item.TypeIcon = t.Icon
			item.TypeColor = t.Color
		}
		rsp = append(rsp, item)
	}

	r.cache.SubmitTask(func() {
		data, err := json.Marshal(rsp)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = r.cache.Set(ctx, cacheKey, string(data), time.Minute*constants.REDIS_TIMEOUT)
	})
	return rsp, nil
}

// GetIncomingList 获取收到的待处理申请
func (r *relationshipService) GetIncomingList(userId string) ([]respond.FriendRequestRespond, error) {
	rels, err := r.repos.Relationship.FindPendingByAddressee(userId)
	if err != nil {
		zap.L().Error("find incoming requests failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return r.assembleRequestList(rels, func(rel *model.UserRelationship) string {
		return rel.RequesterId
	})
}

// GetOutgoingList 获取发出的未被拒绝的申请
func (r *relationshipService) GetOutgoingList(userId string) ([]respond.FriendRequestRespond, error) {
	rels, err := r.repos.Relationship.FindOutgoingByRequester(userId)
	if err != nil {
		zap.L().Error("find outgoing requests failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return r.assembleRequestList(rels, func(rel *model.UserRelationship) string {
		return rel.AddresseeId
	})
}

// assembleRequestList 组装申请列表，peerOf 取对端用户id
func (r *relationshipService) assembleRequestList(rels []model.UserRelationship, peerOf func(*model.UserRelationship) string) ([]respond.FriendRequestRespond, error) {
	if len(rels) == 0 {
		return []respond.FriendRequestRespond{}, nil
	}
	peerIds := make([]string, 0, len(rels))
	for i := range rels {
		peerIds = append(peerIds, peerOf(&rels[i]))
	}
	users, err := r.repos.User.FindByUuids(peerIds)
	if err != nil {
		zap.L().Error("batch find request peers failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	rsp := make([]respond.FriendRequestRespond, 0, len(rels))
	for i := range rels {
		rel := &rels[i]
		peer := userByUuid[peerOf(rel)]
		rsp = append(rsp, respond.FriendRequestRespond{
			RequestId: rel.Uuid,
			UserId:    peer.Uuid,
			Nickname:  peer.Nickname,
			Avatar:    peer.Avatar,
			TypeCode:  rel.TypeCode,
			Message:   rel.Message,
			Status:    rel.Status,
			AppliedAt: rel.CreatedAt,
		})
	}
	return rsp, nil
}

func (r *relationshipService) invalidateFriendList(userId string) {
	r.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = r.cache.Delete(ctx, "friend_list_"+userId)
	})
}

// otherSide 返回关系中相对 userId 的另一方
func otherSide(rel *model.UserRelationship, userId string) string {
	if rel.RequesterId == userId {
		return rel.AddresseeId
	}
	return rel.RequesterId
}
