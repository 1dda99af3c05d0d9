// Package mysql 提供数据访问层的初始化
// 负责建立数据库连接、自动迁移表结构、写入字典种子数据，
// 并返回 Repository 聚合；不持有任何包级单例，便于按测试隔离存储
package mysql

import (
	"fmt"

	"bookmate_server/internal/config"
	"bookmate_server/internal/dao/mysql/repository"
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/badge/badge_code_enum"

	"go.uber.org/zap"
	mysqldriver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Init 根据配置初始化 MySQL 连接并返回 Repository 聚合
// 连接或迁移失败时 Fatal 退出（启动期失败没有降级空间）
func Init(conf *config.Config) *repository.Repositories {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.MysqlConfig.User,
		conf.MysqlConfig.Password,
		conf.MysqlConfig.Host,
		conf.MysqlConfig.Port,
		conf.MysqlConfig.DatabaseName,
	)

	repos, err := Open(mysqldriver.Open(dsn))
	if err != nil {
		zap.L().Fatal("init mysql failed", zap.Error(err))
	}
	return repos
}

// Open 基于任意 GORM Dialector 建立存储
// 单测使用 sqlite 内存库走同一入口，保证迁移和种子逻辑一致
func Open(dialector gorm.Dialector) (*repository.Repositories, error) {
	// TranslateError 将各驱动的唯一键冲突归一化为 gorm.ErrDuplicatedKey，
	// Repository 层据此翻译为业务冲突错误
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// AutoMigrate 自动迁移表结构
	// user_info/book/user_book 属于外部子系统，这里迁移仅为本地联调方便，核心不写入
	err = db.AutoMigrate(
		&model.UserInfo{},
		&model.Book{},
		&model.UserBook{},
		&model.RelationshipType{},
		&model.UserRelationship{},
		&model.SharedLibrary{},
		&model.SharedLibraryMember{},
		&model.SharedLibraryBook{},
		&model.ReadingGroup{},
		&model.ReadingGroupMember{},
		&model.SharedReadingSession{},
		&model.SharedReadingProgress{},
		&model.SharedReadingMessage{},
		&model.Notification{},
		&model.Badge{},
		&model.UserBadge{},
	)
	if err != nil {
		return nil, err
	}

	repos := repository.NewRepositories(db)
	if err := seedDictionaries(db); err != nil {
		return nil, err
	}
	return repos, nil
}

// seedDictionaries 写入关系类型与徽章字典的种子数据（表为空时）
func seedDictionaries(db *gorm.DB) error {
	var typeCnt int64
	if err := db.Model(&model.RelationshipType{}).Count(&typeCnt).Error; err != nil {
		return err
	}
	if typeCnt == 0 {
		types := []model.RelationshipType{
			{Code: "reading-buddy", Name: "书友", Icon: "book-open", Color: "#409EFF"},
			{Code: "family", Name: "家人", Icon: "home", Color: "#67C23A"},
			{Code: "classmate", Name: "同学", Icon: "school", Color: "#E6A23C"},
			{Code: "partner", Name: "伴侣", Icon: "heart", Color: "#F56C6C"},
		}
		if err := db.Create(&types).Error; err != nil {
			return err
		}
	}

	var badgeCnt int64
	if err := db.Model(&model.Badge{}).Count(&badgeCnt).Error; err != nil {
		return err
	}
	if badgeCnt == 0 {
		badges := []model.Badge{
			{Code: badge_code_enum.FIRST_FRIEND, Name: "初识书友", Description: "添加第一位书友", Icon: "user-plus"},
			{Code: badge_code_enum.SOCIAL_CIRCLE, Name: "书友圈", Description: "书友达到 5 位", Icon: "users"},
			{Code: badge_code_enum.FIRST_BOOK_FINISHED, Name: "初读告捷", Description: "第一次读完共读书目", Icon: "flag"},
			{Code: badge_code_enum.READING_STREAK_5, Name: "共读常客", Description: "读完 5 次共读", Icon: "trophy"},
		}
		if err := db.Create(&badges).Error; err != nil {
			return err
		}
	}
	return nil
}
