package dto

import (
	"Reachboard/internal/model"
	"time"
)

// UploadURLsDTO 批量上传链接请求体
type UploadURLsDTO struct {
	URLs []string `json:"urls" binding:"required" validate:"required,min=1"`
}

// URLUploadDTO 批量上传结果，逐条隔离失败
type URLUploadDTO struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	AddedCount int      `json:"added_count"`
	FailedURLs []string `json:"failed_urls"`
}

// URLDetailDTO 链接清单行
type URLDetailDTO struct {
	ID                uint64         `json:"id"`
	URL               string         `json:"url"`
	EngagementRate    float64        `json:"engagement_rate"`
	Platform          model.Platform `json:"platform"`
	DateUploaded      string         `json:"date_uploaded"`
	DateAnalyzed      *string        `json:"date_analyzed"`
	IsFetched         bool           `json:"is_fetched"`
	IsBrokenOrDeleted bool           `json:"is_broken_or_deleted"`
}

type URLListingDTO struct {
	URLs []URLDetailDTO `json:"urls"`
}

type TopPerformingURLDTO struct {
	URLID          uint64         `json:"url_id"`
	URL            string         `json:"url"`
	Platform       model.Platform `json:"platform"`
	EngagementRate float64        `json:"engagement_rate"`
}

// URLSummaryDTO 全量链接平台分布汇总
type URLSummaryDTO struct {
	TotalURLsCount   int                  `json:"total_urls_count"`
	FacebookPercent  float64              `json:"facebook_percent"`
	InstagramPercent float64              `json:"instagram_percent"`
	WebsitePercent   float64              `json:"website_percent"`
	YoutubePercent   float64              `json:"youtube_percent"`
	TopPerformer     *TopPerformingURLDTO `json:"top_performer"`
}

type URLCountDTO struct {
	TotalURLs int64 `json:"total_urls"`
}

// URLAnalysisDTO 单链接最新状态快照
type URLAnalysisDTO struct {
	URLID                uint64          `json:"url_id"`
	PostURL              string          `json:"post_url"`
	UserProfileName      *string         `json:"user_profile_name"`
	URLType              model.URLType   `json:"url_type"`
	Platform             *model.Platform `json:"platform"`
	LatestLikes          *int64          `json:"latest_likes"`
	LatestViews          *int64          `json:"latest_views"`
	LatestComments       *int64          `json:"latest_comments"`
	LatestEngagementRate float64         `json:"latest_engagement_rate"`
	TrafficCount         *int64          `json:"traffic_count"`
}

// EngagementSnapshotDTO 单条测量记录的历史视图
type EngagementSnapshotDTO struct {
	DateAnalyzed   time.Time `json:"date_analyzed"`
	Likes          *int64    `json:"likes"`
	Views          *int64    `json:"views"`
	Comments       *int64    `json:"comments"`
	TrafficCount   *int64    `json:"traffic_count"`
	EngagementRate float64   `json:"engagement_rate"`
}
