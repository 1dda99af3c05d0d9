package session

import (
	"go.uber.org/zap"

	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/group/group_status_enum"
	"bookmate_server/pkg/enum/group/group_type_enum"
	"bookmate_server/pkg/errorx"
	"bookmate_server/pkg/util/random"
)

// 小组类型的默认成员上限
const (
	pairMaxMembers      = 2
	defaultGroupMembers = 10
	bookClubMaxMembers  = 50
)

// CreateGroup 创建共读小组
// 小组行与成员行在同一事务写入，创建者自动入组
func (s *sessionService) CreateGroup(creatorId string, req request.CreateGroupRequest) (*respond.GroupRespond, error) {
	memberIds := make([]string, 0, len(req.MemberIds))
	seen := map[string]struct{}{creatorId: {}}
	for _, id := range req.MemberIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		memberIds = append(memberIds, id)
	}

	maxMembers := req.MaxMembers
	switch req.Type {
	case group_type_enum.PAIR:
		maxMembers = pairMaxMembers
	case group_type_enum.BOOK_CLUB:
		if maxMembers <= 0 || maxMembers > bookClubMaxMembers {
			maxMembers = bookClubMaxMembers
		}
	default:
		if maxMembers <= 0 {
			maxMembers = defaultGroupMembers
		}
	}
	if len(memberIds)+1 > maxMembers {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "成员数量超过上限 %d", maxMembers)
	}

	if len(memberIds) > 0 {
		missing, err := s.repos.User.ExistsByUuids(memberIds)
		if err != nil {
			zap.L().Error("check group members failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if len(missing) > 0 {
			return nil, errorx.Newf(errorx.CodeUserNotExist, "成员不存在: %v", missing)
		}
	}

	group := &model.ReadingGroup{
		Uuid:       "G" + random.GetNowAndLenRandomString(13),
		Name:       req.Name,
		Type:       req.Type,
		MaxMembers: maxMembers,
		CreatorId:  creatorId,
		Status:     group_status_enum.NORMAL,
	}
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Group.Create(group); err != nil {
			return err
		}
		if err := tx.GroupMember.Create(&model.ReadingGroupMember{
			GroupUuid: group.Uuid,
			UserUuid:  creatorId,
		}); err != nil {
			return err
		}
		for _, id := range memberIds {
			if err := tx.GroupMember.Create(&model.ReadingGroupMember{
				GroupUuid: group.Uuid,
				UserUuid:  id,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("create group transaction failed", zap.String("creator", creatorId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.GroupRespond{
		GroupId:     group.Uuid,
		Name:        group.Name,
		Type:        group.Type,
		MaxMembers:  group.MaxMembers,
		CreatorId:   group.CreatorId,
		MemberCount: len(memberIds) + 1,
	}, nil
}

// GetMyGroupList 获取用户参与的小组列表
func (s *sessionService) GetMyGroupList(userId string) ([]respond.GroupRespond, error) {
	groupUuids, err := s.repos.GroupMember.FindGroupUuidsByUser(userId)
	if err != nil {
		zap.L().Error("find user groups failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(groupUuids) == 0 {
		return []respond.GroupRespond{}, nil
	}

	groups, err := s.repos.Group.FindByUuids(groupUuids)
	if err != nil {
		zap.L().Error("batch find groups failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.GroupRespond, 0, len(groups))
	for _, g := range groups {
		if g.Status != group_status_enum.NORMAL {
			continue
		}
		members, err := s.repos.GroupMember.FindActiveByGroup(g.Uuid)
		if err != nil {
			zap.L().Error("find group members failed", zap.String("group", g.Uuid), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp = append(rsp, respond.GroupRespond{
			GroupId:     g.Uuid,
			Name:        g.Name,
			Type:        g.Type,
			MaxMembers:  g.MaxMembers,
			CreatorId:   g.CreatorId,
			MemberCount: len(members),
		})
	}
	return rsp, nil
}
