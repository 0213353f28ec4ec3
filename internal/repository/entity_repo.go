package repository

import (
	"Reachboard/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type EntityRepo interface {
	CreateEntity(ctx context.Context, entity *model.Entity) error
	// GetEntityWithMeasurements 按 ID 取账号及名下全部链接与测量记录，不存在返回 nil
	GetEntityWithMeasurements(ctx context.Context, id uint64) (*model.Entity, error)
	// GetEntitiesWithMeasurements 一次性取全量账号与测量记录，避免逐账号查询
	GetEntitiesWithMeasurements(ctx context.Context) ([]*model.Entity, error)
	// DeleteEntity 级联删除账号、链接与测量记录
	DeleteEntity(ctx context.Context, id uint64) error
}

type entityRepoImpl struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) EntityRepo {
	return &entityRepoImpl{db: db}
}

func (r *entityRepoImpl) CreateEntity(ctx context.Context, entity *model.Entity) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *entityRepoImpl) GetEntityWithMeasurements(ctx context.Context, id uint64) (*model.Entity, error) {
	var entity model.Entity
	err := r.db.WithContext(ctx).
		Preload("URLs").
		Preload("URLs.Posts").
		Preload("URLs.Blogs").
		First(&entity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *entityRepoImpl) GetEntitiesWithMeasurements(ctx context.Context) ([]*model.Entity, error) {
	entities := make([]*model.Entity, 0)
	err := r.db.WithContext(ctx).
		Preload("URLs").
		Preload("URLs.Posts").
		Preload("URLs.Blogs").
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// DeleteEntity 账号独占其链接，链接独占其测量记录，删除在一个事务内级联完成
func (r *entityRepoImpl) DeleteEntity(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var urlIDs []uint64
		if err := tx.Model(&model.URL{}).Where("entity_id = ?", id).Pluck("id", &urlIDs).Error; err != nil {
			return err
		}
		if len(urlIDs) > 0 {
			if err := tx.Delete(&model.PostAnalysis{}, "url_id IN ?", urlIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.BlogAnalysis{}, "url_id IN ?", urlIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.URL{}, "id IN ?", urlIDs).Error; err != nil {
				return err
			}
		}
		result := tx.Delete(&model.Entity{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
