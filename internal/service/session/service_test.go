package session

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	dao "bookmate_server/internal/dao/mysql"
	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/infrastructure/mq"
	"bookmate_server/internal/model"
	"bookmate_server/internal/service/badge"
	"bookmate_server/internal/service/notify"
	"bookmate_server/pkg/enum/group/group_type_enum"
	"bookmate_server/pkg/enum/message/message_type_enum"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/enum/relationship/relationship_status_enum"
	"bookmate_server/pkg/enum/session/reading_status_enum"
	"bookmate_server/pkg/enum/session/session_status_enum"
	"bookmate_server/pkg/errorx"
)

type stubCache struct{}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (stubCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (stubCache) Delete(ctx context.Context, key string) error                        { return nil }
func (stubCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (stubCache) SubmitTask(action func())                                            { action() }

// newTestService 组装走真实通知落库与徽章评估的会话服务
func newTestService(t *testing.T) (*sessionService, *repository.Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dao.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	notifySvc := notify.NewNotificationService(repos, stubCache{}, mq.NoopPublisher{})
	badgeSvc := badge.NewBadgeService(repos, notifySvc)
	return NewSessionService(repos, notifySvc, badgeSvc), repos
}

func seedUsers(t *testing.T, repos *repository.Repositories, uuids ...string) {
	t.Helper()
	for _, uuid := range uuids {
		if err := repos.DB().Create(&model.UserInfo{Uuid: uuid, Nickname: "用户" + uuid}).Error; err != nil {
			t.Fatalf("seed user %s: %v", uuid, err)
		}
	}
}

func befriend(t *testing.T, repos *repository.Repositories, a, b string) {
	t.Helper()
	now := time.Now()
	err := repos.Relationship.Create(&model.UserRelationship{
		Uuid:        "R" + a + b,
		RequesterId: a,
		AddresseeId: b,
		Status:      relationship_status_enum.ACCEPTED,
		RespondedAt: &now,
	})
	if err != nil {
		t.Fatalf("befriend %s/%s: %v", a, b, err)
	}
}

func notifyCount(t *testing.T, repos *repository.Repositories, userId, ntype string) int {
	t.Helper()
	rows, err := repos.Notification.FindByRecipient(userId, 0)
	if err != nil {
		t.Fatalf("find notifications of %s: %v", userId, err)
	}
	count := 0
	for _, row := range rows {
		if row.Type == ntype {
			count++
		}
	}
	return count
}

func TestCreateGroup(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")

	rsp, err := svc.CreateGroup("U1", request.CreateGroupRequest{
		Name:      "周末读书会",
		Type:      group_type_enum.SMALL_GROUP,
		MemberIds: []string{"U2", "U3"},
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if rsp.MemberCount != 3 {
		t.Fatalf("member count = %d, want 3", rsp.MemberCount)
	}

	groups, err := svc.GetMyGroupList("U3")
	if err != nil {
		t.Fatalf("group list: %v", err)
	}
	if len(groups) != 1 || groups[0].GroupId != rsp.GroupId {
		t.Fatalf("groups of U3 = %+v", groups)
	}
}

func TestCreateGroupPairLimit(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")

	_, err := svc.CreateGroup("U1", request.CreateGroupRequest{
		Name:      "二人组",
		Type:      group_type_enum.PAIR,
		MemberIds: []string{"U2", "U3"},
	})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("err = %v, want CodeInvalidParam", err)
	}
}

func TestStartGroupSessionSeedsProgress(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")

	group, err := svc.CreateGroup("U1", request.CreateGroupRequest{
		Name: "读书会", Type: group_type_enum.SMALL_GROUP, MemberIds: []string{"U2", "U3"},
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	detail, err := svc.StartSession("U2", request.StartSessionRequest{
		GroupId:   group.GroupId,
		Title:     "共读活着",
		BookTitle: "活着",
		BookPages: 191,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// 包括发起人在内的全部成员都有零起点进度行
	if len(detail.Participants) != 3 {
		t.Fatalf("participants = %d, want 3", len(detail.Participants))
	}
	for _, p := range detail.Participants {
		if p.CurrentPage != 0 || p.ReadingStatus != reading_status_enum.NOT_STARTED {
			t.Fatalf("participant %s not seeded at zero: %+v", p.UserId, p)
		}
	}

	// 其余成员收到开始通知，发起人不通知自己
	if n := notifyCount(t, repos, "U1", notification_type_enum.READING_UPDATE); n != 1 {
		t.Fatalf("U1 reading_update = %d, want 1", n)
	}
	if n := notifyCount(t, repos, "U2", notification_type_enum.READING_UPDATE); n != 0 {
		t.Fatalf("U2 reading_update = %d, want 0", n)
	}

	// 同一小组不能再开第二个进行中会话
	if _, err := svc.StartSession("U1", request.StartSessionRequest{
		GroupId: group.GroupId, Title: "再来一个", BookTitle: "围城", BookPages: 330,
	}); !errorx.IsConflict(err) {
		t.Fatalf("second session err = %v, want conflict", err)
	}
}

func TestStartDirectSessionRequiresFriendship(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")

	_, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "双人共读", BookTitle: "小王子", BookPages: 96,
	})
	if !errorx.IsForbidden(err) {
		t.Fatalf("stranger partner err = %v, want forbidden", err)
	}

	befriend(t, repos, "U1", "U2")
	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "双人共读", BookTitle: "小王子", BookPages: 96,
	})
	if err != nil {
		t.Fatalf("start direct session: %v", err)
	}
	if len(detail.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(detail.Participants))
	}
	if detail.GroupId != "" {
		t.Fatalf("direct session groupId = %q, want empty", detail.GroupId)
	}
}

func TestStartSessionContainerExclusive(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")

	// groupId 与 partnerIds 同时缺失或同时存在都是参数错误
	if _, err := svc.StartSession("U1", request.StartSessionRequest{Title: "无容器"}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("no container err = %v, want CodeInvalidParam", err)
	}
	if _, err := svc.StartSession("U1", request.StartSessionRequest{
		GroupId: "G1", PartnerIds: []string{"U2"}, Title: "双容器",
	}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("both containers err = %v, want CodeInvalidParam", err)
	}
}

func TestUpdateProgress(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 200,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	before := notifyCount(t, repos, "U2", notification_type_enum.READING_UPDATE)

	rsp, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId:   detail.SessionId,
		CurrentPage: 100,
	})
	if err != nil {
		t.Fatalf("update progress: %v", err)
	}
	if rsp.ProgressPct != 50 {
		t.Fatalf("pct = %d, want 50 (100/200)", rsp.ProgressPct)
	}
	if rsp.ReadingStatus != reading_status_enum.READING {
		t.Fatalf("reading status = %d, want READING", rsp.ReadingStatus)
	}

	// 100 页增量触发通知
	if n := notifyCount(t, repos, "U2", notification_type_enum.READING_UPDATE); n != before+1 {
		t.Fatalf("U2 reading_update = %d, want %d", n, before+1)
	}

	// 5 页小步前进不打扰
	if _, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 105,
	}); err != nil {
		t.Fatalf("small update: %v", err)
	}
	if n := notifyCount(t, repos, "U2", notification_type_enum.READING_UPDATE); n != before+1 {
		t.Fatalf("small delta should not notify, got %d", n)
	}

	// 页数允许回退（重读）
	back, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 20,
	})
	if err != nil {
		t.Fatalf("rewind update: %v", err)
	}
	if back.CurrentPage != 20 || back.ProgressPct != 10 {
		t.Fatalf("rewind = %+v, want page 20 / pct 10", back)
	}
}

func TestUpdateProgressPageOutOfBounds(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 100,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// 超过总页数的页码直接拒绝
	if _, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 500,
	}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("out-of-bounds err = %v, want CodeInvalidParam", err)
	}

	// 被拒绝的更新不落库
	row, err := repos.Progress.FindBySessionAndUser(detail.SessionId, "U1")
	if err != nil {
		t.Fatalf("find progress: %v", err)
	}
	if row.CurrentPage != 0 {
		t.Fatalf("stored page = %d, want untouched 0", row.CurrentPage)
	}

	// 显式传入更大的总页数后同一页码是合法的
	rsp, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 500, TotalPages: 600,
	})
	if err != nil {
		t.Fatalf("update with explicit total: %v", err)
	}
	if rsp.CurrentPage != 500 || rsp.TotalPages != 600 {
		t.Fatalf("progress = %+v, want page 500 of 600", rsp)
	}
}

func TestProgressNotificationNamesDelta(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 200,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 30,
	}); err != nil {
		t.Fatalf("update progress: %v", err)
	}

	rows, err := repos.Notification.FindByRecipient("U2", 0)
	if err != nil {
		t.Fatalf("notifications of U2: %v", err)
	}
	var found bool
	for _, row := range rows {
		if row.Type == notification_type_enum.READING_UPDATE && strings.Contains(row.Message, "前进了 30 页") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no notification naming the 30-page delta, got %+v", rows)
	}
}

func TestUpdateProgressAuthorization(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 100,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if _, err := svc.UpdateProgress("U3", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 10,
	}); !errorx.IsForbidden(err) {
		t.Fatalf("non-participant err = %v, want forbidden", err)
	}
	if _, err := svc.GetSessionDetail("U3", detail.SessionId); !errorx.IsForbidden(err) {
		t.Fatalf("non-participant detail err = %v, want forbidden", err)
	}
}

func TestSessionAutoCompletes(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")

	group, err := svc.CreateGroup("U1", request.CreateGroupRequest{
		Name: "二人组", Type: group_type_enum.PAIR, MemberIds: []string{"U2"},
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		GroupId: group.GroupId, Title: "共读", BookTitle: "测试书", BookPages: 100,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	// 第一人读完，会话仍进行中
	rsp, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 100,
	})
	if err != nil {
		t.Fatalf("U1 finish: %v", err)
	}
	if rsp.ReadingStatus != reading_status_enum.COMPLETED {
		t.Fatalf("U1 status = %d, want COMPLETED at full page", rsp.ReadingStatus)
	}
	if rsp.SessionStatus != session_status_enum.ACTIVE {
		t.Fatalf("session status = %d, want still ACTIVE", rsp.SessionStatus)
	}

	// 第二人读完，会话自动完成并释放小组占用
	rsp, err = svc.UpdateProgress("U2", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 100,
	})
	if err != nil {
		t.Fatalf("U2 finish: %v", err)
	}
	if rsp.SessionStatus != session_status_enum.COMPLETED {
		t.Fatalf("session status = %d, want COMPLETED", rsp.SessionStatus)
	}

	stored, err := repos.Session.FindByUuid(detail.SessionId)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if stored.ActiveGroupKey != nil || stored.ActualEndDate == nil {
		t.Fatalf("completed session = %+v, want released group key and end date", stored)
	}

	// 双方都拿到"初读告捷"徽章
	for _, uid := range []string{"U1", "U2"} {
		earned, err := repos.Badge.FindByUser(uid)
		if err != nil {
			t.Fatalf("badges of %s: %v", uid, err)
		}
		found := false
		for _, b := range earned {
			if b.BadgeCode == "first_book_finished" {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s missing first_book_finished, got %+v", uid, earned)
		}
	}

	// 每次读完都会在消息流里落一条成就播报
	msgs, err := repos.SessionMessage.FindRecentBySession(detail.SessionId, 0)
	if err != nil {
		t.Fatalf("find messages: %v", err)
	}
	achievements := 0
	for _, msg := range msgs {
		if msg.Type == message_type_enum.ACHIEVEMENT {
			achievements++
		}
	}
	if achievements != 2 {
		t.Fatalf("achievement messages = %d, want 2", achievements)
	}

	// 完成的会话不能再更新进度
	if _, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 50,
	}); !errorx.IsConflict(err) {
		t.Fatalf("update after complete err = %v, want conflict", err)
	}

	// 小组释放后可以开新会话
	if _, err := svc.StartSession("U2", request.StartSessionRequest{
		GroupId: group.GroupId, Title: "再读一本", BookTitle: "新书", BookPages: 120,
	}); err != nil {
		t.Fatalf("restart after complete: %v", err)
	}
}

func TestBadgeGrantIdempotent(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 50,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	if _, err := svc.UpdateProgress("U1", request.UpdateProgressRequest{
		SessionId: detail.SessionId, CurrentPage: 50,
	}); err != nil {
		t.Fatalf("finish: %v", err)
	}

	// 重复评估不会产生第二枚徽章或第二条解锁通知
	achievementsBefore := notifyCount(t, repos, "U1", notification_type_enum.ACHIEVEMENT)
	svc.badges.EvaluateCompletionBadges("U1", detail.SessionId)
	svc.badges.EvaluateCompletionBadges("U1", detail.SessionId)

	earned, err := repos.Badge.FindByUser("U1")
	if err != nil {
		t.Fatalf("find badges: %v", err)
	}
	if len(earned) != 1 {
		t.Fatalf("badges = %d, want exactly 1", len(earned))
	}
	if n := notifyCount(t, repos, "U1", notification_type_enum.ACHIEVEMENT); n != achievementsBefore {
		t.Fatalf("achievement notifications grew from %d to %d on re-evaluation", achievementsBefore, n)
	}
}

func TestDeleteSessionInitiatorOnly(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	detail, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "共读", BookTitle: "测试书", BookPages: 100,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	if err := svc.DeleteSession("U2", detail.SessionId); !errorx.IsForbidden(err) {
		t.Fatalf("partner delete err = %v, want forbidden", err)
	}
	if err := svc.DeleteSession("U1", detail.SessionId); err != nil {
		t.Fatalf("initiator delete: %v", err)
	}

	if _, err := repos.Session.FindByUuid(detail.SessionId); !errorx.IsNotFound(err) {
		t.Fatalf("session after delete err = %v, want not found", err)
	}
	rows, err := repos.Progress.FindBySession(detail.SessionId)
	if err != nil {
		t.Fatalf("find progress: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("progress rows = %d, want 0", len(rows))
	}
}

func TestGetActiveSessionList(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	befriend(t, repos, "U1", "U2")

	active, err := svc.StartSession("U1", request.StartSessionRequest{
		PartnerIds: []string{"U2"}, Title: "进行中", BookTitle: "书A", BookPages: 10,
	})
	if err != nil {
		t.Fatalf("start active session: %v", err)
	}

	done, err := svc.StartSession("U2", request.StartSessionRequest{
		PartnerIds: []string{"U1"}, Title: "已完成", BookTitle: "书B", BookPages: 10,
	})
	if err != nil {
		t.Fatalf("start second session: %v", err)
	}
	for _, uid := range []string{"U1", "U2"} {
		if _, err := svc.UpdateProgress(uid, request.UpdateProgressRequest{
			SessionId: done.SessionId, CurrentPage: 10,
		}); err != nil {
			t.Fatalf("%s finish: %v", uid, err)
		}
	}

	list, err := svc.GetActiveSessionList("U1")
	if err != nil {
		t.Fatalf("active list: %v", err)
	}
	if len(list) != 1 || list[0].SessionId != active.SessionId {
		t.Fatalf("active sessions = %+v, want only %s", list, active.SessionId)
	}
	if list[0].Aggregate.ParticipantCount != 2 {
		t.Fatalf("aggregate = %+v, want 2 participants", list[0].Aggregate)
	}
}
