package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"

	dao "bookmate_server/internal/dao/mysql"
	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/infrastructure/mq"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/errorx"
)

type stubCache struct{}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (stubCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (stubCache) Delete(ctx context.Context, key string) error                        { return nil }
func (stubCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (stubCache) SubmitTask(action func())                                            { action() }

func newTestService(t *testing.T) (*notificationService, *repository.Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dao.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return NewNotificationService(repos, stubCache{}, mq.NoopPublisher{}), repos
}

func TestNotificationListAndUnread(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Send("U1", notification_type_enum.FRIEND_REQUEST, "新的好友申请", "用户U2想加你为书友", "relationship", "R1")
	svc.Send("U1", notification_type_enum.MESSAGE, "新的共读消息", "用户U2: 你读到哪了", "message", "M1")
	svc.Send("U2", notification_type_enum.MESSAGE, "新的共读消息", "用户U1: 第三章", "message", "M2")

	list, unread, err := svc.GetNotificationList("U1", 0)
	if err != nil {
		t.Fatalf("notification list: %v", err)
	}
	if len(list) != 2 || unread != 2 {
		t.Fatalf("list = %d unread = %d, want 2/2", len(list), unread)
	}
	// 倒序，最新的在前
	if list[0].Type != notification_type_enum.MESSAGE {
		t.Fatalf("list[0].Type = %q, want message first", list[0].Type)
	}

	if err := svc.MarkRead("U1", list[0].NotificationId); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if _, unread, err = svc.GetNotificationList("U1", 0); err != nil || unread != 1 {
		t.Fatalf("unread after mark = %d (err %v), want 1", unread, err)
	}

	if err := svc.MarkAllRead("U1"); err != nil {
		t.Fatalf("mark all read: %v", err)
	}
	if _, unread, err = svc.GetNotificationList("U1", 0); err != nil || unread != 0 {
		t.Fatalf("unread after mark all = %d (err %v), want 0", unread, err)
	}

	// 别人的未读不受影响
	if _, unread, err = svc.GetNotificationList("U2", 0); err != nil || unread != 1 {
		t.Fatalf("U2 unread = %d (err %v), want 1", unread, err)
	}
}

func TestMarkReadOnlyRecipient(t *testing.T) {
	svc, _ := newTestService(t)

	svc.Send("U1", notification_type_enum.MESSAGE, "新的共读消息", "内容", "message", "M1")
	list, _, err := svc.GetNotificationList("U1", 0)
	if err != nil || len(list) != 1 {
		t.Fatalf("list = %+v (err %v), want 1", list, err)
	}

	// 非接收人标记视同不存在
	if err := svc.MarkRead("U2", list[0].NotificationId); !errorx.IsNotFound(err) {
		t.Fatalf("foreign mark err = %v, want not found", err)
	}
	if err := svc.MarkRead("U1", "N404"); !errorx.IsNotFound(err) {
		t.Fatalf("missing mark err = %v, want not found", err)
	}
}

func TestFanoutExcludesSender(t *testing.T) {
	svc, repos := newTestService(t)

	svc.Fanout([]string{"U1", "U2", "U3"}, "U2", notification_type_enum.READING_UPDATE,
		"共读进度", "用户U2读到了第100页", "session", "S1")

	for uid, want := range map[string]int{"U1": 1, "U2": 0, "U3": 1} {
		rows, err := repos.Notification.FindByRecipient(uid, 0)
		if err != nil {
			t.Fatalf("notifications of %s: %v", uid, err)
		}
		if len(rows) != want {
			t.Fatalf("notifications of %s = %d, want %d", uid, len(rows), want)
		}
	}
}
