// 本文件实现 RelationshipTypeRepository 接口（关系类型字典）
package repository

import (
	"bookmate_server/internal/model"

	"gorm.io/gorm"
)

// relationshipTypeRepository RelationshipTypeRepository 接口的实现
type relationshipTypeRepository struct {
	db *gorm.DB
}

// NewRelationshipTypeRepository 创建 RelationshipTypeRepository 实例
func NewRelationshipTypeRepository(db *gorm.DB) RelationshipTypeRepository {
	return &relationshipTypeRepository{db: db}
}

// FindByCode 根据编码查找关系类型
func (r *relationshipTypeRepository) FindByCode(code string) (*model.RelationshipType, error) {
	var rt model.RelationshipType
	if err := r.db.First(&rt, "code = ?", code).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询关系类型 code=%s", code)
	}
	return &rt, nil
}

// FindAll 查找全部关系类型
func (r *relationshipTypeRepository) FindAll() ([]model.RelationshipType, error) {
	var rts []model.RelationshipType
	if err := r.db.Find(&rts).Error; err != nil {
		return nil, wrapDBError(err, "查询关系类型列表")
	}
	return rts, nil
}

// Create 写入字典数据（仅用于种子初始化）
func (r *relationshipTypeRepository) Create(rt *model.RelationshipType) error {
	if err := r.db.Create(rt).Error; err != nil {
		return wrapDBError(err, "创建关系类型")
	}
	return nil
}
