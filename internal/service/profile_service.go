package service

import (
	"Reachboard/internal/api/dto"
	"Reachboard/internal/model"
	"Reachboard/internal/pkg/analytics"
	"Reachboard/internal/pkg/consts"
	"Reachboard/internal/pkg/redis"
	"Reachboard/internal/repository"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

type ProfileService interface {
	// GetProfileMetrics 全量账号聚合视图。platformFilter 只作用于 profiles 列表，
	// top_performer / most_used_platform / 开户分布始终基于全量数据
	GetProfileMetrics(ctx context.Context, platformFilter string, sortBy string) (*dto.ProfileMetricsDTO, error)
	// GetProfileAnalytics 单账号聚合与逐链接对比
	GetProfileAnalytics(ctx context.Context, entityID uint64) (*dto.ProfileAnalyticsDTO, error)
	CreateProfile(ctx context.Context, d *dto.CreateProfileDTO) (*dto.ProfileDTO, error)
	DeleteProfile(ctx context.Context, entityID uint64) error
}

type profileServiceImpl struct {
	entityRepo repository.EntityRepo
	policy     analytics.Policy
	cacheTTL   time.Duration
}

func NewProfileService(entityRepo repository.EntityRepo, policy analytics.Policy, cacheTTL time.Duration) ProfileService {
	return &profileServiceImpl{
		entityRepo: entityRepo,
		policy:     policy,
		cacheTTL:   cacheTTL,
	}
}

func (s *profileServiceImpl) GetProfileMetrics(ctx context.Context, platformFilter string, sortBy string) (*dto.ProfileMetricsDTO, error) {
	sort := analytics.ParseSortBy(sortBy, analytics.SortCreatedDesc)

	// 只缓存未过滤的全量视图
	unfiltered := strings.EqualFold(platformFilter, consts.PlatformFilterAll)
	cacheKey := consts.ProfileMetricsKey + string(sort)
	if unfiltered {
		if val, err := redis.GetValue(ctx, cacheKey); err == nil && val != "" {
			var res dto.ProfileMetricsDTO
			if err = json.Unmarshal([]byte(val), &res); err == nil {
				return &res, nil
			}
		}
	}

	entities, err := s.entityRepo.GetEntitiesWithMeasurements(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]analytics.EntityRecord, 0, len(entities))
	for _, e := range entities {
		records = append(records, toEntityRecord(e))
	}

	rollup := analytics.ProfileRollup(records, s.policy)

	buckets := rollup.Buckets
	if !unfiltered {
		filtered := make([]analytics.ProfileBucket, 0, len(buckets))
		for _, b := range buckets {
			if strings.EqualFold(platformFilter, string(b.Platform)) {
				filtered = append(filtered, b)
			}
		}
		buckets = filtered
	}
	analytics.SortProfileBuckets(buckets, sort)

	res := &dto.ProfileMetricsDTO{
		Profiles:         make([]dto.ProfileMetricsRowDTO, 0, len(buckets)),
		MostUsedPlatform: rollup.MostUsedPlatform,
		ProfileOnboarded: dto.ProfileOnboardedDTO{
			TotalProfiles:        rollup.TotalProfiles,
			PlatformDistribution: make(map[model.Platform]dto.PlatformDistributionDTO, len(rollup.Onboarding)),
		},
	}
	for _, b := range buckets {
		res.Profiles = append(res.Profiles, dto.ProfileMetricsRowDTO{
			ID:                   b.EntityID,
			Username:             b.Username,
			Fullname:             b.Fullname,
			Platform:             b.Platform,
			Followers:            b.Followers,
			CreatedDate:          b.CreatedDate,
			TotalLikes:           b.TotalLikes,
			TotalComments:        b.TotalComments,
			TotalViews:           b.TotalViews,
			TotalEngagementRate:  b.AvgEngagementRate,
			BrokenOrDeletedCount: b.BrokenOrDeletedCount,
		})
	}
	if rollup.Top != nil {
		res.TopPerformer = &dto.TopPerformerDTO{
			ID:                    rollup.Top.EntityID,
			Username:              rollup.Top.Username,
			Fullname:              rollup.Top.Fullname,
			Platform:              rollup.Top.Platform,
			AverageEngagementRate: rollup.Top.AvgEngagementRate,
		}
	}
	for plat, share := range rollup.Onboarding {
		res.ProfileOnboarded.PlatformDistribution[plat] = dto.PlatformDistributionDTO{
			Count:      share.Count,
			Percentage: share.Percentage,
		}
	}

	if unfiltered {
		if body, err := json.Marshal(res); err == nil {
			_ = redis.SetWithExpiration(ctx, cacheKey, body, s.cacheTTL)
		}
	}

	return res, nil
}

func (s *profileServiceImpl) GetProfileAnalytics(ctx context.Context, entityID uint64) (*dto.ProfileAnalyticsDTO, error) {
	entity, err := s.entityRepo.GetEntityWithMeasurements(ctx, entityID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, ErrEntityNotFound
	}

	result := analytics.AnalyzeEntity(toEntityRecord(entity), s.policy)

	res := &dto.ProfileAnalyticsDTO{
		ID:       entity.ID,
		Username: entity.Username,
		Fullname: entity.Fullname,
		Platform: entity.Platform,
		ProfileAnalysis: dto.ProfileAnalysisDTO{
			AvgEngagementRate: result.AvgEngagementRate,
			TotalViews:        result.TotalViews,
			TotalComments:     result.TotalComments,
			TotalLikes:        result.TotalLikes,
		},
		ComparisonAnalysis: make([]dto.ComparisonRowDTO, 0, len(result.Comparison)),
	}
	for _, row := range result.Comparison {
		res.ComparisonAnalysis = append(res.ComparisonAnalysis, dto.ComparisonRowDTO{
			ID:             row.URLID,
			URL:            row.URL,
			Platform:       row.Platform,
			EngagementRate: row.EngagementRate,
		})
	}

	return res, nil
}

func (s *profileServiceImpl) CreateProfile(ctx context.Context, d *dto.CreateProfileDTO) (*dto.ProfileDTO, error) {
	platform, ok := model.ParsePlatform(strings.ToUpper(d.Platform))
	if !ok {
		return nil, ErrPlatformInvalid
	}

	entity := &model.Entity{
		Username:  d.Username,
		Fullname:  d.Fullname,
		Followers: d.Followers,
		Platform:  platform,
	}
	if err := s.entityRepo.CreateEntity(ctx, entity); err != nil {
		return nil, err
	}

	invalidateSummaryCaches(ctx)

	return &dto.ProfileDTO{
		ID:          entity.ID,
		Username:    entity.Username,
		Fullname:    entity.Fullname,
		Followers:   entity.Followers,
		Platform:    entity.Platform,
		CreatedDate: entity.CreatedDate,
	}, nil
}

func (s *profileServiceImpl) DeleteProfile(ctx context.Context, entityID uint64) error {
	err := s.entityRepo.DeleteEntity(ctx, entityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEntityNotFound
		}
		return err
	}

	invalidateSummaryCaches(ctx)
	return nil
}

// invalidateSummaryCaches 任何写路径之后丢弃汇总缓存
func invalidateSummaryCaches(ctx context.Context) {
	_ = redis.DeleteKey(ctx, consts.URLSummaryKey)
	_ = redis.DeleteKey(ctx, consts.ProfileMetricsKey+string(analytics.SortCreatedDesc))
	_ = redis.DeleteKey(ctx, consts.ProfileMetricsKey+string(analytics.SortEngagementRateDesc))
	_ = redis.DeleteKey(ctx, consts.ProfileMetricsKey+string(analytics.SortEngagementRateAsc))
}
