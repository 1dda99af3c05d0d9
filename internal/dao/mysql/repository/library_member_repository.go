// 本文件实现 LibraryMemberRepository 接口
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// libraryMemberRepository LibraryMemberRepository 接口的实现
type libraryMemberRepository struct {
	db *gorm.DB
}

// NewLibraryMemberRepository 创建 LibraryMemberRepository 实例
func NewLibraryMemberRepository(db *gorm.DB) LibraryMemberRepository {
	return &libraryMemberRepository{db: db}
}

// Create 添加成员
func (r *libraryMemberRepository) Create(member *model.SharedLibraryMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建书架成员")
	}
	return nil
}

// FindByLibraryAndUser 查找成员行，用于权限校验
func (r *libraryMemberRepository) FindByLibraryAndUser(libraryUuid, userUuid string) (*model.SharedLibraryMember, error) {
	var member model.SharedLibraryMember
	err := r.db.Where("library_uuid = ? AND user_uuid = ?", libraryUuid, userUuid).First(&member).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询书架成员 library=%s user=%s", libraryUuid, userUuid)
	}
	return &member, nil
}

// FindByLibrary 查找书架全部成员
func (r *libraryMemberRepository) FindByLibrary(libraryUuid string) ([]model.SharedLibraryMember, error) {
	var members []model.SharedLibraryMember
	if err := r.db.Where("library_uuid = ?", libraryUuid).Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询书架成员列表 library=%s", libraryUuid)
	}
	return members, nil
}

// FindLibraryUuidsByUser 查找用户参与的全部书架 UUID
func (r *libraryMemberRepository) FindLibraryUuidsByUser(userUuid string) ([]string, error) {
	var uuids []string
	err := r.db.Model(&model.SharedLibraryMember{}).
		Where("user_uuid = ?", userUuid).
		Pluck("library_uuid", &uuids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户书架列表 user=%s", userUuid)
	}
	return uuids, nil
}

// DeleteByLibraryUuid 物理删除书架全部成员行
func (r *libraryMemberRepository) DeleteByLibraryUuid(libraryUuid string) error {
	err := r.db.Unscoped().Where("library_uuid = ?", libraryUuid).Delete(&model.SharedLibraryMember{}).Error
	if err != nil {
		return wrapDBErrorf(err, "删除书架成员 library=%s", libraryUuid)
	}
	return nil
}
