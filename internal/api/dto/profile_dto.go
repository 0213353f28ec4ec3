package dto

import (
	"Reachboard/internal/model"
	"time"
)

// ProfileMetricsRowDTO 单个 (账号, 平台) 桶的聚合指标。
// total_engagement_rate 历史字段名，含义为平均互动率
type ProfileMetricsRowDTO struct {
	ID                   uint64         `json:"id"`
	Username             string         `json:"username"`
	Fullname             string         `json:"fullname"`
	Platform             model.Platform `json:"platform"`
	Followers            *int64         `json:"followers"`
	CreatedDate          time.Time      `json:"created_date"`
	TotalLikes           int64          `json:"total_likes"`
	TotalComments        int64          `json:"total_comments"`
	TotalViews           int64          `json:"total_views"`
	TotalEngagementRate  float64        `json:"total_engagement_rate"`
	BrokenOrDeletedCount int            `json:"broken_or_deleted_count"`
}

// TopPerformerDTO 互动率最高的账号
type TopPerformerDTO struct {
	ID                    uint64         `json:"id"`
	Username              string         `json:"username"`
	Fullname              string         `json:"fullname"`
	Platform              model.Platform `json:"platform"`
	AverageEngagementRate float64        `json:"average_engagement_rate"`
}

type PlatformDistributionDTO struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ProfileOnboardedDTO struct {
	TotalProfiles        int                                        `json:"total_profiles"`
	PlatformDistribution map[model.Platform]PlatformDistributionDTO `json:"platform_distribution"`
}

// ProfileMetricsDTO profile-metrics 接口响应
type ProfileMetricsDTO struct {
	Profiles         []ProfileMetricsRowDTO `json:"profiles"`
	TopPerformer     *TopPerformerDTO       `json:"top_performer"`
	MostUsedPlatform *model.Platform        `json:"most_used_platform"`
	ProfileOnboarded ProfileOnboardedDTO    `json:"profile_onboarded"`
}

type ProfileAnalysisDTO struct {
	AvgEngagementRate float64 `json:"avg_engagement_rate"`
	TotalViews        int64   `json:"total_views"`
	TotalComments     int64   `json:"total_comments"`
	TotalLikes        int64   `json:"total_likes"`
}

type ComparisonRowDTO struct {
	ID             uint64         `json:"id"`
	URL            string         `json:"url"`
	Platform       model.Platform `json:"platform"`
	EngagementRate float64        `json:"engagement_rate"`
}

// ProfileAnalyticsDTO 单账号分析接口响应
type ProfileAnalyticsDTO struct {
	ID                 uint64             `json:"id"`
	Username           string             `json:"username"`
	Fullname           string             `json:"fullname"`
	Platform           model.Platform     `json:"platform"`
	ProfileAnalysis    ProfileAnalysisDTO `json:"profile_analysis"`
	ComparisonAnalysis []ComparisonRowDTO `json:"comparison_analysis"`
}

// CreateProfileDTO 创建账号
type CreateProfileDTO struct {
	Username  string `json:"username" binding:"required" validate:"required,min=1,max=100"`
	Fullname  string `json:"fullname" validate:"max=255"`
	Followers *int64 `json:"followers"`
	Platform  string `json:"platform" binding:"required" validate:"required"`
}

type ProfileDTO struct {
	ID          uint64         `json:"id"`
	Username    string         `json:"username"`
	Fullname    string         `json:"fullname"`
	Followers   *int64         `json:"followers"`
	Platform    model.Platform `json:"platform"`
	CreatedDate time.Time      `json:"created_date"`
}
