// 本文件实现 GroupMemberRepository 接口
package repository

import (
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/group/group_status_enum"

	"gorm.io/gorm"
)

// groupMemberRepository GroupMemberRepository 接口的实现
type groupMemberRepository struct {
	db *gorm.DB
}

// NewGroupMemberRepository 创建 GroupMemberRepository 实例
func NewGroupMemberRepository(db *gorm.DB) GroupMemberRepository {
	return &groupMemberRepository{db: db}
}

// Create 添加小组成员
func (r *groupMemberRepository) Create(member *model.ReadingGroupMember) error {
	if err := r.db.Create(member).Error; err != nil {
		return wrapDBError(err, "创建小组成员")
	}
	return nil
}

// FindActiveByGroup 查找小组的在组成员
func (r *groupMemberRepository) FindActiveByGroup(groupUuid string) ([]model.ReadingGroupMember, error) {
	var members []model.ReadingGroupMember
	err := r.db.Where("group_uuid = ? AND status = ?", groupUuid, group_status_enum.NORMAL).Find(&members).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询小组成员 group=%s", groupUuid)
	}
	return members, nil
}

// FindByGroupAndUser 查找成员行，用于权限校验
func (r *groupMemberRepository) FindByGroupAndUser(groupUuid, userUuid string) (*model.ReadingGroupMember, error) {
	var member model.ReadingGroupMember
	err := r.db.Where("group_uuid = ? AND user_uuid = ?", groupUuid, userUuid).First(&member).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询小组成员 group=%s user=%s", groupUuid, userUuid)
	}
	return &member, nil
}

// FindGroupUuidsByUser 查找用户参与的全部小组 UUID
func (r *groupMemberRepository) FindGroupUuidsByUser(userUuid string) ([]string, error) {
	var uuids []string
	err := r.db.Model(&model.ReadingGroupMember{}).
		Where("user_uuid = ? AND status = ?", userUuid, group_status_enum.NORMAL).
		Pluck("group_uuid", &uuids).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询用户小组列表 user=%s", userUuid)
	}
	return uuids, nil
}
