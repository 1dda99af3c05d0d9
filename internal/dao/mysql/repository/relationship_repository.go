// 本文件实现 RelationshipRepository 接口，处理好友申请与好友关系的数据库操作
package repository

import (
	"bookmate_server/internal/model"
	"bookmate_server/pkg/enum/relationship/relationship_status_enum"

	"gorm.io/gorm"
)

// relationshipRepository RelationshipRepository 接口的实现
type relationshipRepository struct {
	db *gorm.DB
}

// NewRelationshipRepository 创建 RelationshipRepository 实例
func NewRelationshipRepository(db *gorm.DB) RelationshipRepository {
	return &relationshipRepository{db: db}
}

// FindByUuid 根据 UUID 查找关系
func (r *relationshipRepository) FindByUuid(uuid string) (*model.UserRelationship, error) {
	var rel model.UserRelationship
	if err := r.db.First(&rel, "uuid = ?", uuid).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询关系 uuid=%s", uuid)
	}
	return &rel, nil
}

// FindByPair 对称查找：无论申请方向，同一对用户的关系行
// 无序用户对至多一行的不变量靠有向唯一索引 + 本方法的对称检查共同保证
func (r *relationshipRepository) FindByPair(userA, userB string) (*model.UserRelationship, error) {
	var rel model.UserRelationship
	err := r.db.Where(
		"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
		userA, userB, userB, userA,
	).First(&rel).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询关系 pair=(%s,%s)", userA, userB)
	}
	return &rel, nil
}

// FindAcceptedByUser 查找用户的全部已接受关系（双向）
func (r *relationshipRepository) FindAcceptedByUser(userId string) ([]model.UserRelationship, error) {
	var rels []model.UserRelationship
	err := r.db.Where(
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		userId, userId, relationship_status_enum.ACCEPTED,
	).Find(&rels).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询好友列表 user=%s", userId)
	}
	return rels, nil
}

// FindPendingByAddressee 查找用户收到的待处理申请
func (r *relationshipRepository) FindPendingByAddressee(userId string) ([]model.UserRelationship, error) {
	var rels []model.UserRelationship
	err := r.db.Where(
		"addressee_id = ? AND status = ?",
		userId, relationship_status_enum.PENDING,
	).Order("created_at DESC").Find(&rels).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询收到的申请 user=%s", userId)
	}
	return rels, nil
}

// FindOutgoingByRequester 查找用户发出的未被拒绝的申请
func (r *relationshipRepository) FindOutgoingByRequester(userId string) ([]model.UserRelationship, error) {
	var rels []model.UserRelationship
	err := r.db.Where(
		"requester_id = ? AND status <> ?",
		userId, relationship_status_enum.REJECTED,
	).Order("created_at DESC").Find(&rels).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询发出的申请 user=%s", userId)
	}
	return rels, nil
}

// CountAcceptedByUser 统计用户的好友数量
func (r *relationshipRepository) CountAcceptedByUser(userId string) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserRelationship{}).Where(
		"(requester_id = ? OR addressee_id = ?) AND status = ?",
		userId, userId, relationship_status_enum.ACCEPTED,
	).Count(&count).Error
	if err != nil {
		return 0, wrapDBErrorf(err, "统计好友数 user=%s", userId)
	}
	return count, nil
}

// Create 创建关系行
func (r *relationshipRepository) Create(rel *model.UserRelationship) error {
	if err := r.db.Create(rel).Error; err != nil {
		return wrapDBError(err, "创建好友申请")
	}
	return nil
}

// Update 全字段更新关系行
func (r *relationshipRepository) Update(rel *model.UserRelationship) error {
	if err := r.db.Save(rel).Error; err != nil {
		return wrapDBError(err, "更新好友关系")
	}
	return nil
}
