// Package session 共读会话与进度
// 会话有两种容器：小组会话（一个小组至多一个进行中会话）和
// 直连会话（发起人 + 一组好友）。参与者的定义就是进度行：
// 会话开始时为包括发起人在内的全部参与者播种 current_page=0 的进度行
package session

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/dto/respond"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/constants"
	"bookmate_server/pkg/enum/group/group_status_enum"
	"bookmate_server/pkg/enum/message/message_type_enum"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/enum/relationship/relationship_status_enum"
	"bookmate_server/pkg/enum/session/reading_mode_enum"
	"bookmate_server/pkg/enum/session/reading_status_enum"
	"bookmate_server/pkg/enum/session/session_status_enum"
	"bookmate_server/pkg/errorx"
	"bookmate_server/pkg/util/random"
)

// Notifier 会话事件的通知依赖
type Notifier interface {
	Send(recipientId, ntype, title, message, relatedType, relatedId string)
	Fanout(recipientIds []string, exclude, ntype, title, message, relatedType, relatedId string)
}

// BadgeEvaluator 读完会话后的徽章评估依赖
type BadgeEvaluator interface {
	EvaluateCompletionBadges(userId, sessionId string)
}

// sessionService 共读会话业务逻辑实现
type sessionService struct {
	repos    *repository.Repositories
	notifier Notifier
	badges   BadgeEvaluator
}

// NewSessionService 构造函数
func NewSessionService(repos *repository.Repositories, notifier Notifier, badges BadgeEvaluator) *sessionService {
	return &sessionService{repos: repos, notifier: notifier, badges: badges}
}

// StartSession 开始共读会话
// GroupId 与 PartnerIds 二选一；书籍引用在此刻解析一次并快照
func (s *sessionService) StartSession(initiatorId string, req request.StartSessionRequest) (*respond.SessionDetailRespond, error) {
	if (req.GroupId == "") == (len(req.PartnerIds) == 0) {
		return nil, errorx.New(errorx.CodeInvalidParam, "groupId 与 partnerIds 必须且只能提供一个")
	}

	session := &model.SharedReadingSession{
		Uuid:        "S" + random.GetNowAndLenRandomString(13),
		InitiatorId: initiatorId,
		ReadingMode: req.ReadingMode,
		Title:       req.Title,
		BookTitle:   req.BookTitle,
		BookAuthor:  req.BookAuthor,
		BookPages:   req.BookPages,
		Status:      session_status_enum.ACTIVE,
		StartDate:   time.Now(),
		TargetDate:  req.TargetDate,
	}

	// 书籍引用解析一次：命中书库写 book_uuid，快照字段仅作兜底
	if req.BookRef != "" {
		book, err := s.resolveBookRef(req.BookRef, initiatorId)
		if err != nil {
			return nil, err
		}
		session.BookUuid = book.Uuid
		session.BookTitle = book.Title
		session.BookAuthor = book.Author
		session.BookPages = book.PageCount
	} else if req.ReadingMode == reading_mode_enum.SAME_BOOK && req.BookTitle == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "共读同一本书需要书籍引用或书名")
	}

	var participantIds []string
	if req.GroupId != "" {
		ids, err := s.prepareGroupSession(session, initiatorId, req.GroupId)
		if err != nil {
			return nil, err
		}
		participantIds = ids
	} else {
		ids, err := s.prepareDirectSession(session, initiatorId, req.PartnerIds)
		if err != nil {
			return nil, err
		}
		participantIds = ids
	}

	now := time.Now()
	err := s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Session.Create(session); err != nil {
			return err
		}
		for _, pid := range participantIds {
			if err := tx.Progress.Create(&model.SharedReadingProgress{
				SessionUuid:    session.Uuid,
				UserUuid:       pid,
				CurrentPage:    0,
				TotalPages:     session.BookPages,
				ReadingStatus:  reading_status_enum.NOT_STARTED,
				LastActivityAt: now,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// 并发开启小组会话时后到方命中 active_group_key 唯一索引
		if errorx.IsConflict(err) {
			return nil, errorx.New(errorx.CodeConflict, "该小组已有进行中的共读会话")
		}
		zap.L().Error("start session transaction failed", zap.String("initiator", initiatorId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	initiator, err := s.repos.User.FindByUuid(initiatorId)
	initiatorName := initiatorId
	if err == nil {
		initiatorName = initiator.Nickname
	}
	s.notifier.Fanout(participantIds, initiatorId, notification_type_enum.READING_UPDATE,
		"共读开始了", fmt.Sprintf("%s 发起了共读「%s」", initiatorName, session.Title), "session", session.Uuid)

	return s.assembleDetail(session, initiatorId)
}

// prepareGroupSession 校验小组会话的前置条件并填充会话行
// 返回参与者（在组成员）id 列表
func (s *sessionService) prepareGroupSession(session *model.SharedReadingSession, initiatorId, groupId string) ([]string, error) {
	group, err := s.repos.Group.FindByUuid(groupId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "小组不存在")
		}
		zap.L().Error("find group failed", zap.String("group", groupId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if group.Status != group_status_enum.NORMAL {
		return nil, errorx.New(errorx.CodeConflict, "小组已解散")
	}
	if _, err := s.repos.GroupMember.FindByGroupAndUser(groupId, initiatorId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该小组的成员")
		}
		zap.L().Error("find group member failed", zap.String("group", groupId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 友好预检，真正的唯一性由 active_group_key 唯一索引兜底
	if existing, err := s.repos.Session.FindActiveByGroup(groupId); err == nil && existing != nil {
		return nil, errorx.New(errorx.CodeConflict, "该小组已有进行中的共读会话")
	} else if err != nil && !errorx.IsNotFound(err) {
		zap.L().Error("find active group session failed", zap.String("group", groupId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	members, err := s.repos.GroupMember.FindActiveByGroup(groupId)
	if err != nil {
		zap.L().Error("find group members failed", zap.String("group", groupId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	participantIds := make([]string, 0, len(members))
	for _, m := range members {
		participantIds = append(participantIds, m.UserUuid)
	}

	session.GroupUuid = groupId
	key := groupId
	session.ActiveGroupKey = &key
	return participantIds, nil
}

// prepareDirectSession 校验直连会话的前置条件并填充会话行
// 每位伙伴都必须是发起人的已接受好友
func (s *sessionService) prepareDirectSession(session *model.SharedReadingSession, initiatorId string, partnerIds []string) ([]string, error) {
	partners := make([]string, 0, len(partnerIds))
	seen := map[string]struct{}{initiatorId: {}}
	for _, id := range partnerIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		partners = append(partners, id)
	}
	if len(partners) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "至少需要一位共读伙伴")
	}

	missing, err := s.repos.User.ExistsByUuids(partners)
	if err != nil {
		zap.L().Error("check session partners failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(missing) > 0 {
		return nil, errorx.Newf(errorx.CodeUserNotExist, "伙伴不存在: %v", missing)
	}

	for _, pid := range partners {
		rel, err := s.repos.Relationship.FindByPair(initiatorId, pid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return nil, errorx.Newf(errorx.CodeForbidden, "%s 不是你的好友", pid)
			}
			zap.L().Error("find relationship pair failed", zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		if rel.Status != relationship_status_enum.ACCEPTED {
			return nil, errorx.Newf(errorx.CodeForbidden, "%s 不是你的好友", pid)
		}
	}

	raw, err := json.Marshal(partners)
	if err != nil {
		return nil, errorx.ErrServerBusy
	}
	session.PartnerIds = datatypes.JSON(raw)
	return append(partners, initiatorId), nil
}

// resolveBookRef 解析书籍引用：书目id -> 本人书架条目id
func (s *sessionService) resolveBookRef(ref, userId string) (*model.Book, error) {
	book, err := s.repos.Book.FindByUuid(ref)
	if err == nil {
		return book, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("resolve book ref failed", zap.String("ref", ref), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	entry, err := s.repos.UserBook.FindByUuidAndUser(ref, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书籍引用无法解析")
		}
		zap.L().Error("resolve user book ref failed", zap.String("ref", ref), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	book, err = s.repos.Book.FindByUuid(entry.BookUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书籍引用无法解析")
		}
		zap.L().Error("find referenced book failed", zap.String("book", entry.BookUuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return book, nil
}

// UpdateProgress 更新本人进度
// 页数允许回退（重读）；增量达到阈值时通知其余参与者；
// 全员读完时会话自动完成
func (s *sessionService) UpdateProgress(userId string, req request.UpdateProgressRequest) (*respond.ProgressRespond, error) {
	session, err := s.repos.Session.FindByUuid(req.SessionId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error("find session failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if session.Status != session_status_enum.ACTIVE {
		return nil, errorx.New(errorx.CodeConflict, "会话已结束，无法更新进度")
	}

	progress, err := s.repos.Progress.FindBySessionAndUser(req.SessionId, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该会话的参与者")
		}
		zap.L().Error("find progress failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	prevPage := progress.CurrentPage
	wasCompleted := progress.ReadingStatus == reading_status_enum.COMPLETED

	pendingTotal := progress.TotalPages
	if req.TotalPages > 0 {
		pendingTotal = req.TotalPages
	}
	total := effectiveTotal(pendingTotal, session.BookPages)
	if req.CurrentPage > total {
		return nil, errorx.Newf(errorx.CodeInvalidParam, "页码超出范围：第 %d 页，共 %d 页", req.CurrentPage, total)
	}

	progress.CurrentPage = req.CurrentPage
	progress.TotalPages = pendingTotal
	if req.Notes != "" {
		progress.Notes = req.Notes
	}

	progress.ProgressPct = progressPct(progress.CurrentPage, total)

	switch {
	case req.ReadingStatus != nil:
		progress.ReadingStatus = *req.ReadingStatus
	case progress.CurrentPage >= total && total > 0:
		progress.ReadingStatus = reading_status_enum.COMPLETED
	case progress.CurrentPage > 0 && progress.ReadingStatus == reading_status_enum.NOT_STARTED:
		progress.ReadingStatus = reading_status_enum.READING
	}
	progress.LastActivityAt = time.Now()

	if err := s.repos.Progress.Update(progress); err != nil {
		zap.L().Error("update progress failed", zap.String("session", req.SessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	participantIds, err := s.participantIds(req.SessionId)
	if err != nil {
		return nil, err
	}

	reader, err := s.repos.User.FindByUuid(userId)
	readerName := userId
	if err == nil {
		readerName = reader.Nickname
	}

	// 页数增量达到阈值才打扰其他参与者
	if delta := progress.CurrentPage - prevPage; delta >= constants.PROGRESS_NOTIFY_DELTA {
		s.notifier.Fanout(participantIds, userId, notification_type_enum.READING_UPDATE,
			"共读进度更新", fmt.Sprintf("%s 前进了 %d 页，读到第 %d 页（%d%%）", readerName, delta, progress.CurrentPage, progress.ProgressPct),
			"session", session.Uuid)
	}

	nowCompleted := progress.ReadingStatus == reading_status_enum.COMPLETED
	if nowCompleted && !wasCompleted {
		// 完成事件落一条成就播报到会话消息流，失败不影响进度更新
		broadcast := &model.SharedReadingMessage{
			Uuid:        uuid.NewString(),
			SessionUuid: session.Uuid,
			SenderId:    userId,
			Type:        message_type_enum.ACHIEVEMENT,
			Content:     fmt.Sprintf("%s 读完了「%s」", readerName, session.Title),
		}
		if err := s.repos.SessionMessage.Create(broadcast); err != nil {
			zap.L().Error("create achievement message failed", zap.String("session", session.Uuid), zap.Error(err))
		}
		s.notifier.Fanout(participantIds, userId, notification_type_enum.READING_UPDATE,
			"有人读完啦", fmt.Sprintf("%s 读完了「%s」", readerName, session.Title), "session", session.Uuid)
		s.badges.EvaluateCompletionBadges(userId, session.Uuid)

		if err := s.completeIfAllDone(session); err != nil {
			return nil, err
		}
	}

	return &respond.ProgressRespond{
		SessionId:      session.Uuid,
		UserId:         userId,
		CurrentPage:    progress.CurrentPage,
		TotalPages:     total,
		ProgressPct:    progress.ProgressPct,
		ReadingStatus:  progress.ReadingStatus,
		SessionStatus:  session.Status,
		LastActivityAt: progress.LastActivityAt,
	}, nil
}

// completeIfAllDone 全员读完时把会话置为完成并释放小组占用
func (s *sessionService) completeIfAllDone(session *model.SharedReadingSession) error {
	rows, err := s.repos.Progress.FindBySession(session.Uuid)
	if err != nil {
		zap.L().Error("find session progress failed", zap.String("session", session.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}
	for _, row := range rows {
		if row.ReadingStatus != reading_status_enum.COMPLETED {
			return nil
		}
	}

	now := time.Now()
	session.Status = session_status_enum.COMPLETED
	session.ActiveGroupKey = nil
	session.ActualEndDate = &now
	if err := s.repos.Session.Update(session); err != nil {
		zap.L().Error("complete session failed", zap.String("session", session.Uuid), zap.Error(err))
		return errorx.ErrServerBusy
	}
	zap.L().Info("session completed", zap.String("session", session.Uuid))

	participantIds := make([]string, 0, len(rows))
	for _, row := range rows {
		participantIds = append(participantIds, row.UserUuid)
	}
	s.notifier.Fanout(participantIds, "", notification_type_enum.READING_UPDATE,
		"共读完成", fmt.Sprintf("「%s」的所有参与者都读完啦", session.Title), "session", session.Uuid)
	return nil
}

// GetSessionDetail 获取会话详情，仅参与者可见
func (s *sessionService) GetSessionDetail(userId, sessionId string) (*respond.SessionDetailRespond, error) {
	session, err := s.repos.Session.FindByUuid(sessionId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error("find session failed", zap.String("session", sessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if _, err := s.repos.Progress.FindBySessionAndUser(sessionId, userId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该会话的参与者")
		}
		zap.L().Error("find progress failed", zap.String("session", sessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return s.assembleDetail(session, userId)
}

// GetActiveSessionList 获取用户参与的进行中会话
func (s *sessionService) GetActiveSessionList(userId string) ([]respond.SessionSummaryRespond, error) {
	sessionUuids, err := s.repos.Progress.FindSessionUuidsByUser(userId)
	if err != nil {
		zap.L().Error("find user sessions failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(sessionUuids) == 0 {
		return []respond.SessionSummaryRespond{}, nil
	}

	sessions, err := s.repos.Session.FindByUuids(sessionUuids)
	if err != nil {
		zap.L().Error("batch find sessions failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.SessionSummaryRespond, 0, len(sessions))
	for i := range sessions {
		session := &sessions[i]
		if session.Status != session_status_enum.ACTIVE {
			continue
		}
		rows, err := s.repos.Progress.FindBySession(session.Uuid)
		if err != nil {
			zap.L().Error("find session progress failed", zap.String("session", session.Uuid), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		rsp = append(rsp, respond.SessionSummaryRespond{
			SessionId:   session.Uuid,
			GroupId:     session.GroupUuid,
			Title:       session.Title,
			ReadingMode: session.ReadingMode,
			Status:      session.Status,
			Book:        s.bookSnapshot(session),
			StartDate:   session.StartDate,
			TargetDate:  session.TargetDate,
			Aggregate:   aggregate(rows),
		})
	}
	return rsp, nil
}

// DeleteSession 删除会话及其进度与消息，仅发起人可操作
func (s *sessionService) DeleteSession(userId, sessionId string) error {
	session, err := s.repos.Session.FindByUuid(sessionId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "会话不存在")
		}
		zap.L().Error("find session failed", zap.String("session", sessionId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if session.InitiatorId != userId {
		return errorx.New(errorx.CodeForbidden, "只有发起人可以删除会话")
	}

	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.SessionMessage.DeleteBySessionUuid(sessionId); err != nil {
			return err
		}
		if err := tx.Progress.DeleteBySessionUuid(sessionId); err != nil {
			return err
		}
		return tx.Session.DeleteByUuid(sessionId)
	})
	if err != nil {
		zap.L().Error("delete session transaction failed", zap.String("session", sessionId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// participantIds 会话的参与者即其进度行
func (s *sessionService) participantIds(sessionId string) ([]string, error) {
	rows, err := s.repos.Progress.FindBySession(sessionId)
	if err != nil {
		zap.L().Error("find session progress failed", zap.String("session", sessionId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserUuid)
	}
	return ids, nil
}

// assembleDetail 组装会话详情
func (s *sessionService) assembleDetail(session *model.SharedReadingSession, viewerId string) (*respond.SessionDetailRespond, error) {
	rows, err := s.repos.Progress.FindBySession(session.Uuid)
	if err != nil {
		zap.L().Error("find session progress failed", zap.String("session", session.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	participantIds := make([]string, 0, len(rows))
	for _, row := range rows {
		participantIds = append(participantIds, row.UserUuid)
	}
	users, err := s.repos.User.FindByUuids(participantIds)
	if err != nil {
		zap.L().Error("batch find participants failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	participants := make([]respond.ParticipantProgressRespond, 0, len(rows))
	for _, row := range rows {
		u := userByUuid[row.UserUuid]
		participants = append(participants, respond.ParticipantProgressRespond{
			UserId:         row.UserUuid,
			Nickname:       u.Nickname,
			Avatar:         u.Avatar,
			CurrentPage:    row.CurrentPage,
			TotalPages:     effectiveTotal(row.TotalPages, session.BookPages),
			ProgressPct:    row.ProgressPct,
			ReadingStatus:  row.ReadingStatus,
			Notes:          row.Notes,
			LastActivityAt: row.LastActivityAt,
		})
	}

	msgs, err := s.repos.SessionMessage.FindRecentBySession(session.Uuid, constants.RECENT_MESSAGES_LIMIT)
	if err != nil {
		zap.L().Error("find session messages failed", zap.String("session", session.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	msgRsp := make([]respond.MessageRespond, 0, len(msgs))
	for _, m := range msgs {
		sender := userByUuid[m.SenderId]
		msgRsp = append(msgRsp, respond.MessageRespond{
			MessageId:  m.Uuid,
			SessionId:  m.SessionUuid,
			SenderId:   m.SenderId,
			SenderName: sender.Nickname,
			Type:       m.Type,
			Content:    m.Content,
			PageRef:    m.PageRef,
			IsSpoiler:  m.IsSpoiler,
			SentAt:     m.CreatedAt,
		})
	}

	return &respond.SessionDetailRespond{
		SessionId:      session.Uuid,
		GroupId:        session.GroupUuid,
		InitiatorId:    session.InitiatorId,
		Title:          session.Title,
		ReadingMode:    session.ReadingMode,
		Status:         session.Status,
		Book:           s.bookSnapshot(session),
		StartDate:      session.StartDate,
		TargetDate:     session.TargetDate,
		ActualEndDate:  session.ActualEndDate,
		Participants:   participants,
		Aggregate:      aggregate(rows),
		RecentMessages: msgRsp,
	}, nil
}

// bookSnapshot 书籍展示优先书库，回退到创建时的快照字段
func (s *sessionService) bookSnapshot(session *model.SharedReadingSession) respond.SessionBookRespond {
	if session.BookUuid != "" {
		if book, err := s.repos.Book.FindByUuid(session.BookUuid); err == nil {
			return respond.SessionBookRespond{
				BookId:    book.Uuid,
				Title:     book.Title,
				Author:    book.Author,
				PageCount: book.PageCount,
			}
		}
	}
	return respond.SessionBookRespond{
		BookId:    session.BookUuid,
		Title:     session.BookTitle,
		Author:    session.BookAuthor,
		PageCount: session.BookPages,
	}
}

// aggregate 汇总进度
func aggregate(rows []model.SharedReadingProgress) respond.AggregateProgressRespond {
	agg := respond.AggregateProgressRespond{ParticipantCount: len(rows)}
	if len(rows) == 0 {
		return agg
	}
	sumPct := 0
	agg.MinCurrentPage = rows[0].CurrentPage
	agg.MaxCurrentPage = rows[0].CurrentPage
	for _, row := range rows {
		sumPct += row.ProgressPct
		if row.CurrentPage < agg.MinCurrentPage {
			agg.MinCurrentPage = row.CurrentPage
		}
		if row.CurrentPage > agg.MaxCurrentPage {
			agg.MaxCurrentPage = row.CurrentPage
		}
		if row.ReadingStatus == reading_status_enum.COMPLETED {
			agg.CompletedCount++
		}
	}
	agg.AvgProgressPct = math.Round(float64(sumPct)/float64(len(rows))*10) / 10
	return agg
}

// effectiveTotal 行内总页数 -> 会话快照页数 -> 兜底默认值
func effectiveTotal(rowTotal, sessionTotal int) int {
	if rowTotal > 0 {
		return rowTotal
	}
	if sessionTotal > 0 {
		return sessionTotal
	}
	return constants.DEFAULT_TOTAL_PAGES
}

// progressPct 四舍五入的进度百分比，封顶 100
func progressPct(current, total int) int {
	if total <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(total) * 100))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
