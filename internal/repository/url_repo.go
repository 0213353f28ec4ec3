package repository

import (
	"Reachboard/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type URLRepo interface {
	// CreateURLWithShell 创建链接并按类型附带一条零值测量记录
	CreateURLWithShell(ctx context.Context, url *model.URL) error
	// GetURLByRawURL 按原始链接查重，不存在返回 nil
	GetURLByRawURL(ctx context.Context, raw string) (*model.URL, error)
	// GetURLWithMeasurements 按 ID 取链接、所属账号与全部测量记录，不存在返回 nil
	GetURLWithMeasurements(ctx context.Context, id uint64) (*model.URL, error)
	// ListURLsCreatedBetween 取上传时间落在 [start, end) 内的链接，全量批量读取
	ListURLsCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.URL, error)
	// ListURLs 取全部链接与测量记录
	ListURLs(ctx context.Context) ([]*model.URL, error)
	CountURLs(ctx context.Context) (int64, error)
	// ListUnfetchedURLs 取存在未抓取测量记录的链接，重派发任务使用
	ListUnfetchedURLs(ctx context.Context) ([]*model.URL, error)
	// ResetFetchFlags 在事务内重置链接全部测量记录的抓取标记，
	// afterUpdate 在同一事务内执行，失败则回滚标记变更
	ResetFetchFlags(ctx context.Context, url *model.URL, afterUpdate func() error) error
}

type urlRepoImpl struct {
	db *gorm.DB
}

func NewURLRepository(db *gorm.DB) URLRepo {
	return &urlRepoImpl{db: db}
}

// CreateURLWithShell 零值测量记录挂在关联上随链接一并写入，ID 回填到 url.Posts / url.Blogs
func (r *urlRepoImpl) CreateURLWithShell(ctx context.Context, url *model.URL) error {
	if url.Type == model.URLTypePost {
		url.Posts = []model.PostAnalysis{{}}
	} else {
		url.Blogs = []model.BlogAnalysis{{}}
	}
	return r.db.WithContext(ctx).Create(url).Error
}

func (r *urlRepoImpl) GetURLByRawURL(ctx context.Context, raw string) (*model.URL, error) {
	var url model.URL
	err := r.db.WithContext(ctx).Where("url = ?", raw).First(&url).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &url, nil
}

func (r *urlRepoImpl) GetURLWithMeasurements(ctx context.Context, id uint64) (*model.URL, error) {
	var url model.URL
	err := r.db.WithContext(ctx).
		Preload("Entity").
		Preload("Posts").
		Preload("Blogs").
		First(&url, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &url, nil
}

func (r *urlRepoImpl) ListURLsCreatedBetween(ctx context.Context, start, end time.Time) ([]*model.URL, error) {
	urls := make([]*model.URL, 0)
	err := r.db.WithContext(ctx).
		Preload("Entity").
		Preload("Posts").
		Preload("Blogs").
		Where("created_date >= ? AND created_date < ?", start, end).
		Find(&urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *urlRepoImpl) ListURLs(ctx context.Context) ([]*model.URL, error) {
	urls := make([]*model.URL, 0)
	err := r.db.WithContext(ctx).
		Preload("Entity").
		Preload("Posts").
		Preload("Blogs").
		Find(&urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *urlRepoImpl) ListUnfetchedURLs(ctx context.Context) ([]*model.URL, error) {
	urls := make([]*model.URL, 0)
	postSub := r.db.Model(&model.PostAnalysis{}).Select("url_id").Where("is_fetched = ?", false)
	blogSub := r.db.Model(&model.BlogAnalysis{}).Select("url_id").Where("is_fetched = ?", false)
	err := r.db.WithContext(ctx).
		Preload("Entity").
		Where("id IN (?)", postSub).
		Or("id IN (?)", blogSub).
		Find(&urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}

func (r *urlRepoImpl) CountURLs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.URL{}).Count(&count).Error
	return count, err
}

func (r *urlRepoImpl) ResetFetchFlags(ctx context.Context, url *model.URL, afterUpdate func() error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if url.Type == model.URLTypePost {
			if err := tx.Model(&model.PostAnalysis{}).Where("url_id = ?", url.ID).
				Update("is_fetched", false).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Model(&model.BlogAnalysis{}).Where("url_id = ?", url.ID).
				Update("is_fetched", false).Error; err != nil {
				return err
			}
		}
		if afterUpdate != nil {
			return afterUpdate()
		}
		return nil
	})
}
