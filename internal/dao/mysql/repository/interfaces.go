package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// UserRepository 用户数据访问接口（只读）
// 用户由外部系统维护，本核心只做存在性校验和展示字段补全
type UserRepository interface {
	// FindByUuid 根据 UUID 查找用户
	FindByUuid(uuid string) (*model.UserInfo, error)
	// FindByUuids 批量根据 UUID 查找用户
	FindByUuids(uuids []string) ([]model.UserInfo, error)
	// ExistsByUuids 校验一组用户是否全部存在，返回缺失的 UUID 列表
	ExistsByUuids(uuids []string) ([]string, error)
}

// BookRepository 书目数据访问接口（只读）
type BookRepository interface {
	// FindByUuid 根据 UUID 查找书目
	FindByUuid(uuid string) (*model.Book, error)
	// FindByUuids 批量根据 UUID 查找书目
	FindByUuids(uuids []string) ([]model.Book, error)
}

// UserBookRepository 个人书架数据访问接口（只读）
type UserBookRepository interface {
	// FindByUuidAndUser 查找指定用户名下的书架条目，用于书籍引用解引用
	FindByUuidAndUser(uuid, userId string) (*model.UserBook, error)
}

// RelationshipTypeRepository 关系类型字典访问接口
type RelationshipTypeRepository interface {
	// FindByCode 根据编码查找关系类型
	FindByCode(code string) (*model.RelationshipType, error)
	// FindAll 查找全部关系类型
	FindAll() ([]model.RelationshipType, error)
	// Create 写入字典数据（仅用于种子初始化）
	Create(rt *model.RelationshipType) error
}

// RelationshipRepository 用户关系数据访问接口
type RelationshipRepository interface {
	// FindByUuid 根据 UUID 查找关系
	FindByUuid(uuid string) (*model.UserRelationship, error)
	// FindByPair 对称查找：任一方向的关系行
	FindByPair(userA, userB string) (*model.UserRelationship, error)
	// FindAcceptedByUser 查找用户的全部已接受关系（双向）
	FindAcceptedByUser(userId string) ([]model.UserRelationship, error)
	// FindPendingByAddressee 查找用户收到的待处理申请
	FindPendingByAddressee(userId string) ([]model.UserRelationship, error)
	// FindOutgoingByRequester 查找用户发出的未被拒绝的申请
	FindOutgoingByRequester(userId string) ([]model.UserRelationship, error)
	// CountAcceptedByUser 统计用户的好友数量
	CountAcceptedByUser(userId string) (int64, error)
	// Create 创建关系行
	Create(rel *model.UserRelationship) error
	// Update 全字段更新关系行
	Update(rel *model.UserRelationship) error
}

// LibraryRepository 共享书架数据访问接口
type LibraryRepository interface {
	// FindByUuid 根据 UUID 查找书架
	FindByUuid(uuid string) (*model.SharedLibrary, error)
	// FindByUuids 批量查找书架
	FindByUuids(uuids []string) ([]model.SharedLibrary, error)
	// Create 创建书架
	Create(lib *model.SharedLibrary) error
	// DeleteByUuid 物理删除书架行（级联删除由事务内调用方保证）
	DeleteByUuid(uuid string) error
}

// LibraryMemberRepository 共享书架成员数据访问接口
type LibraryMemberRepository interface {
	// Create 添加成员
	Create(member *model.SharedLibraryMember) error
	// FindByLibraryAndUser 查找成员行，用于权限校验
	FindByLibraryAndUser(libraryUuid, userUuid string) (*model.SharedLibraryMember, error)
	// FindByLibrary 查找书架全部成员
	FindByLibrary(libraryUuid string) ([]model.SharedLibraryMember, error)
	// FindLibraryUuidsByUser 查找用户参与的全部书架 UUID
	FindLibraryUuidsByUser(userUuid string) ([]string, error)
	// DeleteByLibraryUuid 物理删除书架全部成员行
	DeleteByLibraryUuid(libraryUuid string) error
}

// LibraryBookRepository 共享书架书籍关联数据访问接口
type LibraryBookRepository interface {
	// Create 添加书籍关联
	Create(book *model.SharedLibraryBook) error
	// FindByLibraryAndBook 查找关联行，用于重复添加检查
	FindByLibraryAndBook(libraryUuid, bookUuid string) (*model.SharedLibraryBook, error)
	// FindByLibrary 查找书架全部书籍关联，按添加时间倒序，limit<=0 表示不限制
	FindByLibrary(libraryUuid string, limit int) ([]model.SharedLibraryBook, error)
	// CountByLibrary 统计书架书籍数量
	CountByLibrary(libraryUuid string) (int64, error)
	// DeleteByLibraryUuid 物理删除书架全部书籍关联
	DeleteByLibraryUuid(libraryUuid string) error
}

// GroupRepository 共读小组数据访问接口
type GroupRepository interface {
	// FindByUuid 根据 UUID 查找小组
	FindByUuid(uuid string) (*model.ReadingGroup, error)
	// FindByUuids 批量查找小组
	FindByUuids(uuids []string) ([]model.ReadingGroup, error)
	// Create 创建小组
	Create(group *model.ReadingGroup) error
}

// GroupMemberRepository 共读小组成员数据访问接口
type GroupMemberRepository interface {
	// Create 添加小组成员
	Create(member *model.ReadingGroupMember) error
	// FindActiveByGroup 查找小组的在组成员
	FindActiveByGroup(groupUuid string) ([]model.ReadingGroupMember, error)
	// FindByGroupAndUser 查找成员行，用于权限校验
	FindByGroupAndUser(groupUuid, userUuid string) (*model.ReadingGroupMember, error)
	// FindGroupUuidsByUser 查找用户参与的全部小组 UUID
	FindGroupUuidsByUser(userUuid string) ([]string, error)
}

// SessionRepository 共读会话数据访问接口
type SessionRepository interface {
	// FindByUuid 根据 UUID 查找会话
	FindByUuid(uuid string) (*model.SharedReadingSession, error)
	// FindActiveByGroup 查找小组当前进行中的会话
	FindActiveByGroup(groupUuid string) (*model.SharedReadingSession, error)
	// FindByUuids 批量查找会话
	FindByUuids(uuids []string) ([]model.SharedReadingSession, error)
	// Create 创建会话
	Create(session *model.SharedReadingSession) error
	// Update 全字段更新会话
	Update(session *model.SharedReadingSession) error
	// DeleteByUuid 物理删除会话行（级联删除由事务内调用方保证）
	DeleteByUuid(uuid string) error
}

// ProgressRepository 共读进度数据访问接口
type ProgressRepository interface {
	// Create 创建进度行（会话开始时播种）
	Create(progress *model.SharedReadingProgress) error
	// FindBySessionAndUser 查找参与者的进度行
	FindBySessionAndUser(sessionUuid, userUuid string) (*model.SharedReadingProgress, error)
	// FindBySession 查找会话全部进度行
	FindBySession(sessionUuid string) ([]model.SharedReadingProgress, error)
	// FindActiveSessionUuidsByUser 查找用户作为参与者的全部会话 UUID
	FindSessionUuidsByUser(userUuid string) ([]string, error)
	// Update 全字段更新进度行
	Update(progress *model.SharedReadingProgress) error
	// CountCompletedByUser 统计用户已读完的会话数量
	CountCompletedByUser(userUuid string) (int64, error)
	// DeleteBySessionUuid 物理删除会话全部进度行
	DeleteBySessionUuid(sessionUuid string) error
}

// SessionMessageRepository 会话消息数据访问接口
type SessionMessageRepository interface {
	// Create 追加消息（消息不可修改）
	Create(msg *model.SharedReadingMessage) error
	// FindRecentBySession 查找会话最近的 limit 条消息，按时间倒序
	FindRecentBySession(sessionUuid string, limit int) ([]model.SharedReadingMessage, error)
	// DeleteBySessionUuid 物理删除会话全部消息
	DeleteBySessionUuid(sessionUuid string) error
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	// Create 创建通知行
	Create(n *model.Notification) error
	// FindByRecipient 查找用户的通知，按时间倒序，limit<=0 表示不限制
	FindByRecipient(recipientId string, limit int) ([]model.Notification, error)
	// CountUnreadByRecipient 统计用户未读通知数量
	CountUnreadByRecipient(recipientId string) (int64, error)
	// MarkRead 将指定通知标记为已读（仅限接收人本人）
	MarkRead(uuid, recipientId string) error
	// MarkAllRead 将用户全部未读通知标记为已读
	MarkAllRead(recipientId string) error
}

// BadgeRepository 徽章数据访问接口
type BadgeRepository interface {
	// FindAll 查找全部徽章字典
	FindAll() ([]model.Badge, error)
	// FindByCodes 批量查找徽章字典
	FindByCodes(codes []string) ([]model.Badge, error)
	// CreateBadge 写入字典数据（仅用于种子初始化）
	CreateBadge(b *model.Badge) error
	// GrantIfAbsent 幂等授予徽章，返回是否为新授予
	GrantIfAbsent(ub *model.UserBadge) (bool, error)
	// FindByUser 查找用户已获得的徽章
	FindByUser(userUuid string) ([]model.UserBadge, error)
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db               *gorm.DB
	User             UserRepository
	Book             BookRepository
	UserBook         UserBookRepository
	RelationshipType RelationshipTypeRepository
	Relationship     RelationshipRepository
	Library          LibraryRepository
	LibraryMember    LibraryMemberRepository
	LibraryBook      LibraryBookRepository
	Group            GroupRepository
	GroupMember      GroupMemberRepository
	Session          SessionRepository
	Progress         ProgressRepository
	SessionMessage   SessionMessageRepository
	Notification     NotificationRepository
	Badge            BadgeRepository
}

// NewRepositories 创建所有 Repository 实例
// db: GORM 数据库实例（需开启 TranslateError）
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:               db,
		User:             NewUserRepository(db),
		Book:             NewBookRepository(db),
		UserBook:         NewUserBookRepository(db),
		RelationshipType: NewRelationshipTypeRepository(db),
		Relationship:     NewRelationshipRepository(db),
		Library:          NewLibraryRepository(db),
		LibraryMember:    NewLibraryMemberRepository(db),
		LibraryBook:      NewLibraryBookRepository(db),
		Group:            NewGroupRepository(db),
		GroupMember:      NewGroupMemberRepository(db),
		Session:          NewSessionRepository(db),
		Progress:         NewProgressRepository(db),
		SessionMessage:   NewSessionMessageRepository(db),
		Notification:     NewNotificationRepository(db),
		Badge:            NewBadgeRepository(db),
	}
}

// DB 暴露底层 GORM 连接
// 用于单测播种外部子系统维护的只读表（user_info/book/user_book），
// 业务代码不应直接使用
func (r *Repositories) DB() *gorm.DB {
	return r.db
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
// fn: 事务执行函数，接收事务内的 Repositories 实例
func (r *Repositories) Transaction(fn func(txRepos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 使用事务 db 创建新的 Repositories 实例
		return fn(NewRepositories(tx))
	})
}
