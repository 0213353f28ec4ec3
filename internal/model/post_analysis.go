package model

import (
	"time"
)

// PostAnalysis 社媒帖子的一次抓取分析快照。
// DateAnalyzed 统一使用 UTC DATETIME，零值表示尚未分析过；
// 旧数据中的 YYYYMMDD 整型伪日期在导入时换算为当日 UTC 零点。
type PostAnalysis struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	URLID             uint64    `gorm:"column:url_id;not null;index:idx_post_url_id" json:"url_id"`
	Likes             int64     `gorm:"not null;default:0" json:"likes"`
	Comments          int64     `gorm:"not null;default:0" json:"comments"`
	Views             *int64    `json:"views"`
	EngagementRate    float64   `gorm:"column:engagement_rate;not null;default:0" json:"engagement_rate"`
	DateAnalyzed      time.Time `gorm:"column:date_analyzed" json:"date_analyzed"`
	IsBrokenOrDeleted bool      `gorm:"column:is_broken_or_deleted;type:tinyint(1);not null;default:0" json:"is_broken_or_deleted"`
	IsFetched         bool      `gorm:"column:is_fetched;type:tinyint(1);not null;default:0" json:"is_fetched"`
}

func (PostAnalysis) TableName() string {
	return "post_analysis"
}
