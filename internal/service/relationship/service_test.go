package relationship

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	dao "bookmate_server/internal/dao/mysql"
	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/dto/request"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/relationship/relationship_status_enum"
	"bookmate_server/pkg/errorx"
)

// stubCache 同步执行异步任务的空缓存，保证测试确定性
type stubCache struct{}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (stubCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (stubCache) Delete(ctx context.Context, key string) error                        { return nil }
func (stubCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (stubCache) SubmitTask(action func())                                            { action() }

// recordingNotifier 记录发出的通知
type recordingNotifier struct {
	sent []string // recipientId:type
}

func (r *recordingNotifier) Send(recipientId, ntype, title, message, relatedType, relatedId string) {
	r.sent = append(r.sent, recipientId+":"+ntype)
}

// recordingBadges 记录被评估的用户
type recordingBadges struct {
	evaluated []string
}

func (r *recordingBadges) EvaluateFriendBadges(userId, relationshipId string) {
	r.evaluated = append(r.evaluated, userId)
}

func newTestRepos(t *testing.T) *repository.Repositories {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dao.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return repos
}

func seedUsers(t *testing.T, repos *repository.Repositories, uuids ...string) {
	t.Helper()
	for _, uuid := range uuids {
		user := &model.UserInfo{Uuid: uuid, Nickname: "用户" + uuid}
		if err := repos.DB().Create(user).Error; err != nil {
			t.Fatalf("seed user %s: %v", uuid, err)
		}
	}
}

func newTestService(t *testing.T) (*relationshipService, *repository.Repositories, *recordingNotifier, *recordingBadges) {
	t.Helper()
	repos := newTestRepos(t)
	notifier := &recordingNotifier{}
	badges := &recordingBadges{}
	svc := NewRelationshipService(repos, stubCache{}, notifier, badges)
	return svc, repos, notifier, badges
}

func TestSendRequest(t *testing.T) {
	svc, _, notifier, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2")

	rsp, err := svc.SendRequest("U1", request.SendFriendRequestRequest{
		AddresseeId: "U2",
		TypeCode:    "reading-buddy",
		Message:     "一起读书吧",
	})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if rsp.Status != relationship_status_enum.PENDING {
		t.Fatalf("status = %d, want PENDING", rsp.Status)
	}
	if len(notifier.sent) != 1 || notifier.sent[0] != "U2:friend_request" {
		t.Fatalf("notify = %v, want [U2:friend_request]", notifier.sent)
	}
}

func TestSendRequestToSelf(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1")

	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U1"}); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("err = %v, want CodeInvalidParam", err)
	}
}

func TestSendRequestUnknownAddressee(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1")

	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "UX"}); errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("err = %v, want CodeUserNotExist", err)
	}
}

func TestSendRequestDuplicateBothDirections(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2")

	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"}); err != nil {
		t.Fatalf("first request: %v", err)
	}
	// 同方向重复
	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"}); !errorx.IsConflict(err) {
		t.Fatalf("same direction err = %v, want conflict", err)
	}
	// 反方向也视为同一用户对
	if _, err := svc.SendRequest("U2", request.SendFriendRequestRequest{AddresseeId: "U1"}); !errorx.IsConflict(err) {
		t.Fatalf("reverse direction err = %v, want conflict", err)
	}
}

func TestRespondRequestOnlyAddressee(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2", "U3")

	rsp, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}

	// 申请人自己不能处理，对外表现为申请不存在
	if err := svc.RespondRequest("U1", request.RespondFriendRequestRequest{RequestId: rsp.RequestId, Decision: "accept"}); !errorx.IsNotFound(err) {
		t.Fatalf("requester respond err = %v, want not found", err)
	}
	// 无关第三人也不能处理
	if err := svc.RespondRequest("U3", request.RespondFriendRequestRequest{RequestId: rsp.RequestId, Decision: "accept"}); !errorx.IsNotFound(err) {
		t.Fatalf("stranger respond err = %v, want not found", err)
	}
}

func TestAcceptRequest(t *testing.T) {
	svc, _, notifier, badges := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2")

	rsp, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2", TypeCode: "family"})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.RespondRequest("U2", request.RespondFriendRequestRequest{RequestId: rsp.RequestId, Decision: "accept"}); err != nil {
		t.Fatalf("accept: %v", err)
	}

	// 双方好友列表都能看到对方
	for _, pair := range [][2]string{{"U1", "U2"}, {"U2", "U1"}} {
		friends, err := svc.GetFriendList(pair[0])
		if err != nil {
			t.Fatalf("friend list %s: %v", pair[0], err)
		}
		if len(friends) != 1 || friends[0].UserId != pair[1] {
			t.Fatalf("friends of %s = %+v, want [%s]", pair[0], friends, pair[1])
		}
		if friends[0].TypeName != "家人" {
			t.Fatalf("type name = %s, want 家人", friends[0].TypeName)
		}
	}

	// 接受通知只发给申请人
	accepted := 0
	for _, s := range notifier.sent {
		if s == "U1:friend_accepted" {
			accepted++
		}
	}
	if accepted != 1 {
		t.Fatalf("friend_accepted notifications = %d, want 1", accepted)
	}
	// 双方都进入徽章评估
	if len(badges.evaluated) != 2 {
		t.Fatalf("badge evaluations = %v, want both parties", badges.evaluated)
	}

	// 已处理的申请没有待处理记录可言，再处理按不存在返回
	if err := svc.RespondRequest("U2", request.RespondFriendRequestRequest{RequestId: rsp.RequestId, Decision: "reject"}); !errorx.IsNotFound(err) {
		t.Fatalf("double respond err = %v, want not found", err)
	}
}

func TestRejectBlocksReapply(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2")

	rsp, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"})
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := svc.RespondRequest("U2", request.RespondFriendRequestRequest{RequestId: rsp.RequestId, Decision: "reject"}); err != nil {
		t.Fatalf("reject: %v", err)
	}

	// 已拒绝的关系行不会回到待处理，双向重发都冲突
	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"}); !errorx.IsConflict(err) {
		t.Fatalf("reapply same direction err = %v, want conflict", err)
	}
	if _, err := svc.SendRequest("U2", request.SendFriendRequestRequest{AddresseeId: "U1"}); !errorx.IsConflict(err) {
		t.Fatalf("reapply reverse direction err = %v, want conflict", err)
	}

	// 行保持 REJECTED，没有新的待处理申请出现
	rel, err := svc.repos.Relationship.FindByUuid(rsp.RequestId)
	if err != nil {
		t.Fatalf("find relationship: %v", err)
	}
	if rel.Status != relationship_status_enum.REJECTED {
		t.Fatalf("status = %d, want REJECTED", rel.Status)
	}
	incoming, err := svc.GetIncomingList("U1")
	if err != nil {
		t.Fatalf("incoming list: %v", err)
	}
	if len(incoming) != 0 {
		t.Fatalf("incoming = %+v, want empty", incoming)
	}
}

func TestRequestLists(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	seedUsers(t, svc.repos, "U1", "U2", "U3")

	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U2"}); err != nil {
		t.Fatalf("request U2: %v", err)
	}
	if _, err := svc.SendRequest("U1", request.SendFriendRequestRequest{AddresseeId: "U3"}); err != nil {
		t.Fatalf("request U3: %v", err)
	}

	outgoing, err := svc.GetOutgoingList("U1")
	if err != nil {
		t.Fatalf("outgoing list: %v", err)
	}
	if len(outgoing) != 2 {
		t.Fatalf("outgoing = %d entries, want 2", len(outgoing))
	}

	incoming, err := svc.GetIncomingList("U2")
	if err != nil {
		t.Fatalf("incoming list: %v", err)
	}
	if len(incoming) != 1 || incoming[0].UserId != "U1" {
		t.Fatalf("incoming = %+v, want request from U1", incoming)
	}
}
