package message

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
	"bookmate_server/internal/service/notify"
	"bookmate_server/pkg/constants"
	"bookmate_server/pkg/enum/message/message_type_enum"
	"bookmate_server/pkg/enum/notification/notification_type_enum"
	"bookmate_server/pkg/enum/session/session_status_enum"
	"bookmate_server/pkg/errorx"
)

type stubCache struct{}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (stubCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (stubCache) Delete(ctx context.Context, key string) error                        { return nil }
func (stubCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (stubCache) SubmitTask(action func())                                            { action() }

func newTestService(t *testing.T) (*messageService, *repository.Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dao.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	notifySvc := notify.NewNotificationService(repos, stubCache{}, mq.NoopPublisher{})
	return NewMessageService(repos, notifySvc), repos
}

// seedSession 直接落一条会话和参与者进度行，消息层不关心会话如何建立
func seedSession(t *testing.T, repos *repository.Repositories, sessionId string, participantIds ...string) {
	t.Helper()
	err := repos.Session.Create(&model.SharedReadingSession{
		Uuid:        sessionId,
		InitiatorId: participantIds[0],
		Title:       "测试会话",
		Status:      session_status_enum.ACTIVE,
		BookTitle:   "测试书",
		StartDate:   time.Now(),
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	for _, uid := range participantIds {
		if err := repos.DB().Create(&model.UserInfo{Uuid: uid, Nickname: "用户" + uid}).Error; err != nil {
			t.Fatalf("seed user %s: %v", uid, err)
		}
		if err := repos.Progress.Create(&model.SharedReadingProgress{
			SessionUuid: sessionId,
			UserUuid:    uid,
		}); err != nil {
			t.Fatalf("seed progress %s: %v", uid, err)
		}
	}
}

func TestSendMessage(t *testing.T) {
	svc, repos := newTestService(t)
	seedSession(t, repos, "S1", "U1", "U2", "U3")

	rsp, err := svc.SendMessage("U1", request.SendMessageRequest{
		SessionId: "S1",
		Type:      message_type_enum.TEXT,
		Content:   "这一章写得太好了",
	})
	if err != nil {
		t.Fatalf("send message: %v", err)
	}
	if rsp.SenderName != "用户U1" {
		t.Fatalf("sender name = %q, want 用户U1", rsp.SenderName)
	}

	// 其余参与者各收到一条消息通知，发送者自己没有
	for _, uid := range []string{"U2", "U3"} {
		rows, err := repos.Notification.FindByRecipient(uid, 0)
		if err != nil {
			t.Fatalf("notifications of %s: %v", uid, err)
		}
		if len(rows) != 1 || rows[0].Type != notification_type_enum.MESSAGE {
			t.Fatalf("notifications of %s = %+v, want 1 message", uid, rows)
		}
		if !strings.Contains(rows[0].Message, "这一章写得太好了") {
			t.Fatalf("preview of %s = %q, want content", uid, rows[0].Message)
		}
	}
	rows, err := repos.Notification.FindByRecipient("U1", 0)
	if err != nil {
		t.Fatalf("notifications of U1: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("sender got %d notifications, want 0", len(rows))
	}
}

func TestSendMessageSpoilerPreview(t *testing.T) {
	svc, repos := newTestService(t)
	seedSession(t, repos, "S1", "U1", "U2")

	page := 42
	if _, err := svc.SendMessage("U1", request.SendMessageRequest{
		SessionId: "S1",
		Type:      message_type_enum.TEXT,
		Content:   "主角最后死了",
		PageRef:   &page,
		IsSpoiler: true,
	}); err != nil {
		t.Fatalf("send spoiler: %v", err)
	}

	rows, err := repos.Notification.FindByRecipient("U2", 0)
	if err != nil {
		t.Fatalf("notifications of U2: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("notifications = %d, want 1", len(rows))
	}
	if strings.Contains(rows[0].Message, "主角最后死了") {
		t.Fatalf("spoiler leaked into preview: %q", rows[0].Message)
	}
	if !strings.Contains(rows[0].Message, "[剧透内容]") {
		t.Fatalf("preview = %q, want spoiler placeholder", rows[0].Message)
	}

	// 正文原样入库，预览只影响通知
	list, err := svc.GetMessageList("U2", request.MessageListRequest{SessionId: "S1"})
	if err != nil {
		t.Fatalf("message list: %v", err)
	}
	if len(list) != 1 || list[0].Content != "主角最后死了" || !list[0].IsSpoiler || *list[0].PageRef != 42 {
		t.Fatalf("stored message = %+v", list)
	}
}

func TestSendMessageLongPreviewTruncated(t *testing.T) {
	svc, repos := newTestService(t)
	seedSession(t, repos, "S1", "U1", "U2")

	content := strings.Repeat("读", constants.NOTIFY_PREVIEW_LEN+20)
	if _, err := svc.SendMessage("U1", request.SendMessageRequest{
		SessionId: "S1",
		Type:      message_type_enum.TEXT,
		Content:   content,
	}); err != nil {
		t.Fatalf("send long message: %v", err)
	}

	rows, err := repos.Notification.FindByRecipient("U2", 0)
	if err != nil {
		t.Fatalf("notifications of U2: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("notifications = %d, want 1", len(rows))
	}
	if strings.Contains(rows[0].Message, content) {
		t.Fatalf("preview not truncated: %d runes", len([]rune(rows[0].Message)))
	}
	if !strings.HasSuffix(rows[0].Message, "...") {
		t.Fatalf("preview = %q, want ... suffix", rows[0].Message)
	}
}

func TestSendMessageAuthorization(t *testing.T) {
	svc, repos := newTestService(t)
	seedSession(t, repos, "S1", "U1", "U2")
	if err := repos.DB().Create(&model.UserInfo{Uuid: "U3", Nickname: "用户U3"}).Error; err != nil {
		t.Fatalf("seed outsider: %v", err)
	}

	if _, err := svc.SendMessage("U3", request.SendMessageRequest{
		SessionId: "S1", Type: message_type_enum.TEXT, Content: "插个话",
	}); !errorx.IsForbidden(err) {
		t.Fatalf("outsider send err = %v, want forbidden", err)
	}
	if _, err := svc.GetMessageList("U3", request.MessageListRequest{SessionId: "S1"}); !errorx.IsForbidden(err) {
		t.Fatalf("outsider list err = %v, want forbidden", err)
	}
	if _, err := svc.SendMessage("U1", request.SendMessageRequest{
		SessionId: "S404", Type: message_type_enum.TEXT, Content: "会话不存在",
	}); !errorx.IsNotFound(err) {
		t.Fatalf("missing session err = %v, want not found", err)
	}
}

func TestGetMessageListOrderAndLimit(t *testing.T) {
	svc, repos := newTestService(t)
	seedSession(t, repos, "S1", "U1", "U2")

	for i := 1; i <= 5; i++ {
		if _, err := svc.SendMessage("U1", request.SendMessageRequest{
			SessionId: "S1", Type: message_type_enum.TEXT, Content: fmt.Sprintf("第%d条", i),
		}); err != nil {
			t.Fatalf("send %d: %v", i, err)
		}
	}

	list, err := svc.GetMessageList("U2", request.MessageListRequest{SessionId: "S1"})
	if err != nil {
		t.Fatalf("message list: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("messages = %d, want 5", len(list))
	}
	// 按发送先后升序返回
	for i, msg := range list {
		if want := fmt.Sprintf("第%d条", i+1); msg.Content != want {
			t.Fatalf("list[%d] = %q, want %q", i, msg.Content, want)
		}
	}

	limited, err := svc.GetMessageList("U2", request.MessageListRequest{SessionId: "S1", Limit: 2})
	if err != nil {
		t.Fatalf("limited list: %v", err)
	}
	// limit 截取最近的两条，仍升序
	if len(limited) != 2 || limited[0].Content != "第4条" || limited[1].Content != "第5条" {
		t.Fatalf("limited = %+v, want 第4条/第5条", limited)
	}
}
