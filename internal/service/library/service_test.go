package library

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
	"bookmate_server/pkg/enum/library/library_role_enum"
	"bookmate_server/pkg/errorx"
)

type stubCache struct{}

func (stubCache) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }
func (stubCache) Get(ctx context.Context, key string) (string, error)                 { return "", nil }
func (stubCache) Delete(ctx context.Context, key string) error                        { return nil }
func (stubCache) DeleteByPattern(ctx context.Context, pattern string) error           { return nil }
func (stubCache) SubmitTask(action func())                                            { action() }

func newTestService(t *testing.T) (*libraryService, *repository.Repositories) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	repos, err := dao.Open(sqlite.Open(dsn))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	return NewLibraryService(repos, stubCache{}), repos
}

func seedUsers(t *testing.T, repos *repository.Repositories, uuids ...string) {
	t.Helper()
	for _, uuid := range uuids {
		if err := repos.DB().Create(&model.UserInfo{Uuid: uuid, Nickname: "用户" + uuid}).Error; err != nil {
			t.Fatalf("seed user %s: %v", uuid, err)
		}
	}
}

func seedBook(t *testing.T, repos *repository.Repositories, uuid, title string, pages int) {
	t.Helper()
	if err := repos.DB().Create(&model.Book{Uuid: uuid, Title: title, PageCount: pages}).Error; err != nil {
		t.Fatalf("seed book %s: %v", uuid, err)
	}
}

func TestCreateLibrary(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")

	rsp, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{
		Name:      "客厅书架",
		MemberIds: []string{"U2", "U3", "U2"}, // 重复id应被去重
	})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}
	if rsp.MemberCount != 3 {
		t.Fatalf("member count = %d, want 3", rsp.MemberCount)
	}

	members, err := repos.LibraryMember.FindByLibrary(rsp.LibraryId)
	if err != nil {
		t.Fatalf("find members: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("member rows = %d, want 3", len(members))
	}
	owners := 0
	for _, m := range members {
		if m.Role == library_role_enum.OWNER {
			owners++
			if m.UserUuid != "U1" {
				t.Fatalf("owner = %s, want U1", m.UserUuid)
			}
		}
	}
	if owners != 1 {
		t.Fatalf("owners = %d, want 1", owners)
	}
}

func TestCreateLibraryUnknownMember(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1")

	_, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{
		Name:      "客厅书架",
		MemberIds: []string{"UX"},
	})
	if errorx.GetCode(err) != errorx.CodeUserNotExist {
		t.Fatalf("err = %v, want CodeUserNotExist", err)
	}
	// 事务回滚，不留下半创建的书架
	libs, listErr := svc.GetMyLibraryList("U1")
	if listErr != nil {
		t.Fatalf("list: %v", listErr)
	}
	if len(libs) != 0 {
		t.Fatalf("libraries = %d, want 0 after rollback", len(libs))
	}
}

func TestAddBookByCatalogueId(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	seedBook(t, repos, "B1", "三体", 302)

	lib, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{Name: "书架", MemberIds: []string{"U2"}})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}

	rsp, err := svc.AddBook("U2", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "B1"})
	if err != nil {
		t.Fatalf("add book: %v", err)
	}
	if rsp.BookId != "B1" || rsp.Title != "三体" {
		t.Fatalf("rsp = %+v, want B1/三体", rsp)
	}

	// 重复添加同一本书冲突
	if _, err := svc.AddBook("U1", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "B1"}); !errorx.IsConflict(err) {
		t.Fatalf("duplicate add err = %v, want conflict", err)
	}
}

func TestAddBookByUserBookRef(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	seedBook(t, repos, "B1", "活着", 191)
	if err := repos.DB().Create(&model.UserBook{Uuid: "UB1", UserId: "U1", BookUuid: "B1"}).Error; err != nil {
		t.Fatalf("seed user book: %v", err)
	}

	lib, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{Name: "书架", MemberIds: []string{"U2"}})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}

	// 本人书架条目id可解析
	rsp, err := svc.AddBook("U1", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "UB1"})
	if err != nil {
		t.Fatalf("add by user book ref: %v", err)
	}
	if rsp.BookId != "B1" {
		t.Fatalf("resolved book = %s, want B1", rsp.BookId)
	}

	// 他人的书架条目id不可解析
	if _, err := svc.AddBook("U2", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "UB1"}); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("foreign ref err = %v, want CodeNotFound", err)
	}
}

func TestAddBookRequiresMembership(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2", "U3")
	seedBook(t, repos, "B1", "百年孤独", 360)

	lib, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{Name: "书架", MemberIds: []string{"U2"}})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}
	if _, err := svc.AddBook("U3", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "B1"}); !errorx.IsForbidden(err) {
		t.Fatalf("non-member add err = %v, want forbidden", err)
	}
	// 详情对非成员表现为书架不存在
	if _, err := svc.GetLibraryDetail("U3", lib.LibraryId); !errorx.IsNotFound(err) {
		t.Fatalf("non-member detail err = %v, want not found", err)
	}
}

func TestDeleteLibraryOwnerOnly(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	seedBook(t, repos, "B1", "围城", 330)

	lib, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{Name: "书架", MemberIds: []string{"U2"}})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}
	if _, err := svc.AddBook("U1", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "B1"}); err != nil {
		t.Fatalf("add book: %v", err)
	}

	// 普通成员不能删除
	if err := svc.DeleteLibrary("U2", lib.LibraryId); !errorx.IsForbidden(err) {
		t.Fatalf("member delete err = %v, want forbidden", err)
	}

	if err := svc.DeleteLibrary("U1", lib.LibraryId); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	// 书架、成员行、书籍关联一并消失
	if _, err := repos.Library.FindByUuid(lib.LibraryId); !errorx.IsNotFound(err) {
		t.Fatalf("library after delete err = %v, want not found", err)
	}
	members, err := repos.LibraryMember.FindByLibrary(lib.LibraryId)
	if err != nil {
		t.Fatalf("find members: %v", err)
	}
	if len(members) != 0 {
		t.Fatalf("member rows = %d, want 0", len(members))
	}
	count, err := repos.LibraryBook.CountByLibrary(lib.LibraryId)
	if err != nil {
		t.Fatalf("count books: %v", err)
	}
	if count != 0 {
		t.Fatalf("book rows = %d, want 0", count)
	}
}

func TestGetMyLibraryList(t *testing.T) {
	svc, repos := newTestService(t)
	seedUsers(t, repos, "U1", "U2")
	seedBook(t, repos, "B1", "小王子", 96)

	lib, err := svc.CreateLibrary("U1", request.CreateLibraryRequest{Name: "书架", MemberIds: []string{"U2"}})
	if err != nil {
		t.Fatalf("create library: %v", err)
	}
	if _, err := svc.AddBook("U1", request.AddLibraryBookRequest{LibraryId: lib.LibraryId, BookRef: "B1"}); err != nil {
		t.Fatalf("add book: %v", err)
	}

	list, err := svc.GetMyLibraryList("U2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("libraries = %d, want 1", len(list))
	}
	got := list[0]
	if got.IsOwner {
		t.Fatal("U2 should not be owner")
	}
	if got.MemberCount != 2 || got.BookCount != 1 {
		t.Fatalf("summary = %+v, want 2 members / 1 book", got)
	}
	if len(got.RecentBooks) != 1 || got.RecentBooks[0].Title != "小王子" {
		t.Fatalf("recent books = %+v", got.RecentBooks)
	}
}
