// Package library 共享书架
// 创建（书架 + 全部成员行）与删除（书架 + 成员 + 书籍关联）都是
// 单事务原子操作，不允许出现没有成员行的书架
package library

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
	"bookmate_server/pkg/enum/library/library_role_enum"
	"bookmate_server/pkg/errorx"
	"bookmate_server/pkg/util/random"
)

// libraryService 共享书架业务逻辑实现
type libraryService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewLibraryService 构造函数
func NewLibraryService(repos *repository.Repositories, cache myredis.AsyncCacheService) *libraryService {
	return &libraryService{repos: repos, cache: cache}
}

// CreateLibrary 创建书架
// 全部初始成员必须存在；书架行与成员行在同一事务写入
func (l *libraryService) CreateLibrary(creatorId string, req request.CreateLibraryRequest) (*respond.CreateLibraryRespond, error) {
	// 去重并剔除创建者本人，创建者固定以拥有者身份加入
	memberIds := make([]string, 0, len(req.MemberIds))
	seen := map[string]struct{}{creatorId: {}}
	for _, id := range req.MemberIds {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		memberIds = append(memberIds, id)
	}
	if len(memberIds) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "至少需要一位创建者以外的成员")
	}

	missing, err := l.repos.User.ExistsByUuids(memberIds)
	if err != nil {
		zap.L().Error("check library members failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(missing) > 0 {
		return nil, errorx.Newf(errorx.CodeUserNotExist, "成员不存在: %v", missing)
	}

	lib := &model.SharedLibrary{
		Uuid:        "L" + random.GetNowAndLenRandomString(13),
		Name:        req.Name,
		Description: req.Description,
		CreatorId:   creatorId,
	}
	err = l.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Library.Create(lib); err != nil {
			return err
		}
		if err := tx.LibraryMember.Create(&model.SharedLibraryMember{
			LibraryUuid: lib.Uuid,
			UserUuid:    creatorId,
			Role:        library_role_enum.OWNER,
		}); err != nil {
			return err
		}
		for _, id := range memberIds {
			if err := tx.LibraryMember.Create(&model.SharedLibraryMember{
				LibraryUuid: lib.Uuid,
				UserUuid:    id,
				Role:        library_role_enum.MEMBER,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("create library transaction failed", zap.String("creator", creatorId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	l.invalidateLibraryList(append(memberIds, creatorId))
	return &respond.CreateLibraryRespond{
		LibraryId:   lib.Uuid,
		Name:        lib.Name,
		MemberCount: len(memberIds) + 1,
	}, nil
}

// AddBook 向书架添加书籍
// 引用解析顺序：书目id -> 操作者本人的书架条目id；落库的永远是书目id
func (l *libraryService) AddBook(userId string, req request.AddLibraryBookRequest) (*respond.AddLibraryBookRespond, error) {
	if _, err := l.requireMember(req.LibraryId, userId); err != nil {
		return nil, err
	}

	book, err := l.resolveBookRef(req.BookRef, userId)
	if err != nil {
		return nil, err
	}

	link := &model.SharedLibraryBook{
		LibraryUuid: req.LibraryId,
		BookUuid:    book.Uuid,
		AddedBy:     userId,
		Notes:       req.Notes,
	}
	if err := l.repos.LibraryBook.Create(link); err != nil {
		if errorx.IsConflict(err) {
			return nil, errorx.Newf(errorx.CodeConflict, "《%s》已在书架中", book.Title)
		}
		zap.L().Error("add library book failed",
			zap.String("library", req.LibraryId), zap.String("book", book.Uuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	if members, err := l.repos.LibraryMember.FindByLibrary(req.LibraryId); err == nil {
		memberIds := make([]string, 0, len(members))
		for _, m := range members {
			memberIds = append(memberIds, m.UserUuid)
		}
		l.invalidateLibraryList(memberIds)
	}

	return &respond.AddLibraryBookRespond{
		LibraryId: req.LibraryId,
		BookId:    book.Uuid,
		Title:     book.Title,
	}, nil
}

// resolveBookRef 解析书籍引用
func (l *libraryService) resolveBookRef(ref, userId string) (*model.Book, error) {
	book, err := l.repos.Book.FindByUuid(ref)
	if err == nil {
		return book, nil
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("resolve book ref failed", zap.String("ref", ref), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 未命中书库，按本人书架条目id解引用
	entry, err := l.repos.UserBook.FindByUuidAndUser(ref, userId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书籍引用无法解析")
		}
		zap.L().Error("resolve user book ref failed", zap.String("ref", ref), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	book, err = l.repos.Book.FindByUuid(entry.BookUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书籍引用无法解析")
		}
		zap.L().Error("find referenced book failed", zap.String("book", entry.BookUuid), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return book, nil
}

// GetMyLibraryList 获取用户参与的书架列表，缓存优先
func (l *libraryService) GetMyLibraryList(userId string) ([]respond.LibrarySummaryRespond, error) {
	cacheKey := "library_list_" + userId
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if cached, err := l.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var rsp []respond.LibrarySummaryRespond
		if err := json.Unmarshal([]byte(cached), &rsp); err == nil {
			return rsp, nil
		}
	}

	libraryUuids, err := l.repos.LibraryMember.FindLibraryUuidsByUser(userId)
	if err != nil {
		zap.L().Error("find user libraries failed", zap.String("user", userId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(libraryUuids) == 0 {
		return []respond.LibrarySummaryRespond{}, nil
	}

	libs, err := l.repos.Library.FindByUuids(libraryUuids)
	if err != nil {
		zap.L().Error("batch find libraries failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	rsp := make([]respond.LibrarySummaryRespond, 0, len(libs))
	for _, lib := range libs {
		members, err := l.repos.LibraryMember.FindByLibrary(lib.Uuid)
		if err != nil {
			zap.L().Error("find library members failed", zap.String("library", lib.Uuid), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		bookCount, err := l.repos.LibraryBook.CountByLibrary(lib.Uuid)
		if err != nil {
			zap.L().Error("count library books failed", zap.String("library", lib.Uuid), zap.Error(err))
			return nil, errorx.ErrServerBusy
		}
		recent, err := l.assembleBooks(lib.Uuid, constants.RECENT_BOOKS_LIMIT)
		if err != nil {
			return nil, err
		}
		rsp = append(rsp, respond.LibrarySummaryRespond{
			LibraryId:   lib.Uuid,
			Name:        lib.Name,
			Description: lib.Description,
			IsOwner:     lib.CreatorId == userId,
			MemberCount: len(members),
			BookCount:   bookCount,
			RecentBooks: recent,
		})
	}

	l.cache.SubmitTask(func() {
		data, err := json.Marshal(rsp)
		if err != nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = l.cache.Set(ctx, cacheKey, string(data), time.Minute*constants.REDIS_TIMEOUT)
	})
	return rsp, nil
}

// GetLibraryDetail 获取书架详情，仅成员可见
func (l *libraryService) GetLibraryDetail(userId, libraryId string) (*respond.LibraryDetailRespond, error) {
	lib, err := l.requireMember(libraryId, userId)
	if err != nil {
		// 详情不向非成员暴露书架是否存在
		if errorx.IsForbidden(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书架不存在")
		}
		return nil, err
	}

	members, err := l.repos.LibraryMember.FindByLibrary(libraryId)
	if err != nil {
		zap.L().Error("find library members failed", zap.String("library", libraryId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	memberIds := make([]string, 0, len(members))
	for _, m := range members {
		memberIds = append(memberIds, m.UserUuid)
	}
	users, err := l.repos.User.FindByUuids(memberIds)
	if err != nil {
		zap.L().Error("batch find library members failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	userByUuid := make(map[string]model.UserInfo, len(users))
	for _, u := range users {
		userByUuid[u.Uuid] = u
	}

	memberRsp := make([]respond.LibraryMemberRespond, 0, len(members))
	for _, m := range members {
		u := userByUuid[m.UserUuid]
		memberRsp = append(memberRsp, respond.LibraryMemberRespond{
			UserId:   m.UserUuid,
			Nickname: u.Nickname,
			Avatar:   u.Avatar,
			Role:     m.Role,
		})
	}

	books, err := l.assembleBooks(libraryId, 0)
	if err != nil {
		return nil, err
	}

	return &respond.LibraryDetailRespond{
		LibraryId:   lib.Uuid,
		Name:        lib.Name,
		Description: lib.Description,
		CreatorId:   lib.CreatorId,
		IsOwner:     lib.CreatorId == userId,
		Members:     memberRsp,
		Books:       books,
	}, nil
}

// assembleBooks 组装书架书籍列表，limit<=0 表示全部
func (l *libraryService) assembleBooks(libraryId string, limit int) ([]respond.LibraryBookRespond, error) {
	links, err := l.repos.LibraryBook.FindByLibrary(libraryId, limit)
	if err != nil {
		zap.L().Error("find library books failed", zap.String("library", libraryId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if len(links) == 0 {
		return []respond.LibraryBookRespond{}, nil
	}
	bookUuids := make([]string, 0, len(links))
	for _, link := range links {
		bookUuids = append(bookUuids, link.BookUuid)
	}
	books, err := l.repos.Book.FindByUuids(bookUuids)
	if err != nil {
		zap.L().Error("batch find books failed", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	bookByUuid := make(map[string]model.Book, len(books))
	for _, b := range books {
		bookByUuid[b.Uuid] = b
	}

	rsp := make([]respond.LibraryBookRespond, 0, len(links))
	for _, link := range links {
		b := bookByUuid[link.BookUuid]
		rsp = append(rsp, respond.LibraryBookRespond{
			BookId:    link.BookUuid,
			Title:     b.Title,
			Author:    b.Author,
			PageCount: b.PageCount,
			CoverUrl:  b.CoverUrl,
			AddedBy:   link.AddedBy,
			Notes:     link.Notes,
			AddedAt:   link.CreatedAt,
		})
	}
	return rsp, nil
}

// DeleteLibrary 删除书架及其全部成员行与书籍关联，仅拥有者可操作
func (l *libraryService) DeleteLibrary(userId, libraryId string) error {
	lib, err := l.repos.Library.FindByUuid(libraryId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return errorx.New(errorx.CodeNotFound, "书架不存在")
		}
		zap.L().Error("find library failed", zap.String("library", libraryId), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if lib.CreatorId != userId {
		return errorx.New(errorx.CodeForbidden, "只有书架拥有者可以删除书架")
	}

	members, err := l.repos.LibraryMember.FindByLibrary(libraryId)
	if err != nil {
		zap.L().Error("find library members failed", zap.String("library", libraryId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	err = l.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.LibraryBook.DeleteByLibraryUuid(libraryId); err != nil {
			return err
		}
		if err := tx.LibraryMember.DeleteByLibraryUuid(libraryId); err != nil {
			return err
		}
		return tx.Library.DeleteByUuid(libraryId)
	})
	if err != nil {
		zap.L().Error("delete library transaction failed", zap.String("library", libraryId), zap.Error(err))
		return errorx.ErrServerBusy
	}

	memberIds := make([]string, 0, len(members))
	for _, m := range members {
		memberIds = append(memberIds, m.UserUuid)
	}
	l.invalidateLibraryList(memberIds)
	return nil
}

// requireMember 校验用户是书架成员，返回书架行
func (l *libraryService) requireMember(libraryId, userId string) (*model.SharedLibrary, error) {
	lib, err := l.repos.Library.FindByUuid(libraryId)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "书架不存在")
		}
		zap.L().Error("find library failed", zap.String("library", libraryId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if _, err := l.repos.LibraryMember.FindByLibraryAndUser(libraryId, userId); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeForbidden, "你不是该书架的成员")
		}
		zap.L().Error("find library member failed", zap.String("library", libraryId), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return lib, nil
}

func (l *libraryService) invalidateLibraryList(userIds []string) {
	l.cache.SubmitTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		for _, id := range userIds {
			_ = l.cache.Delete(ctx, "library_list_"+id)
		}
	})
}
