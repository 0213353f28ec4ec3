package model

import (
	"time"
)

// BlogAnalysis 博客/网站文章的一次抓取分析快照
type BlogAnalysis struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	URLID             uint64    `gorm:"column:url_id;not null;index:idx_blog_url_id" json:"url_id"`
	TrafficCount      int64     `gorm:"column:traffic_count;not null;default:0" json:"traffic_count"`
	EngagementRate    float64   `gorm:"column:engagement_rate;not null;default:0" json:"engagement_rate"`
	DateAnalyzed      time.Time `gorm:"column:date_analyzed" json:"date_analyzed"`
	IsBrokenOrDeleted bool      `gorm:"column:is_broken_or_deleted;type:tinyint(1);not null;default:0" json:"is_broken_or_deleted"`
	IsFetched         bool      `gorm:"column:is_fetched;type:tinyint(1);not null;default:0" json:"is_fetched"`
}

func (BlogAnalysis) TableName() string {
	return "blog_analysis"
}
