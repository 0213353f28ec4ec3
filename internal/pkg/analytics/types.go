package analytics

import (
	"Reachboard/internal/model"
	"time"
)

// Policy 聚合口径。latest 只取每条链接最近一次分析，sum_all 累加全部历史
type Policy string

const (
	PolicyLatest Policy = "latest"
	PolicySumAll Policy = "sum_all"
)

// ParsePolicy 非法值回落到 latest
func ParsePolicy(s string) Policy {
	if Policy(s) == PolicySumAll {
		return PolicySumAll
	}
	return PolicyLatest
}

// MeasurementKind 测量记录变体标记
type MeasurementKind int

const (
	KindPost MeasurementKind = iota
	KindBlog
)

// Measurement 对 PostAnalysis / BlogAnalysis 的统一视图，
// 只暴露聚合引擎需要的字段。Blog 记录的 Views 即流量计数
type Measurement struct {
	Kind              MeasurementKind
	Likes             int64
	Comments          int64
	Views             int64
	EngagementRate    float64
	DateAnalyzed      time.Time
	IsBrokenOrDeleted bool
	IsFetched         bool
}

// FromPost 由帖子分析快照构造统一测量记录
func FromPost(p *model.PostAnalysis) Measurement {
	var views int64
	if p.Views != nil {
		views = *p.Views
	}
	return Measurement{
		Kind:              KindPost,
		Likes:             p.Likes,
		Comments:          p.Comments,
		Views:             views,
		EngagementRate:    p.EngagementRate,
		DateAnalyzed:      p.DateAnalyzed,
		IsBrokenOrDeleted: p.IsBrokenOrDeleted,
		IsFetched:         p.IsFetched,
	}
}

// FromBlog 由博客分析快照构造统一测量记录
func FromBlog(b *model.BlogAnalysis) Measurement {
	return Measurement{
		Kind:              KindBlog,
		Views:             b.TrafficCount,
		EngagementRate:    b.EngagementRate,
		DateAnalyzed:      b.DateAnalyzed,
		IsBrokenOrDeleted: b.IsBrokenOrDeleted,
		IsFetched:         b.IsFetched,
	}
}

// URLRecord 一条链接及其全部测量记录
type URLRecord struct {
	ID           uint64
	URL          string
	Type         model.URLType
	CreatedDate  time.Time
	Measurements []Measurement
}

// EntityRecord 一个账号及其名下链接
type EntityRecord struct {
	ID          uint64
	Username    string
	Fullname    string
	Followers   *int64
	Platform    model.Platform
	CreatedDate time.Time
	URLs        []URLRecord
}

// ProfileBucket (账号, 平台) 维度的聚合结果
type ProfileBucket struct {
	EntityID             uint64
	Username             string
	Fullname             string
	Platform             model.Platform
	Followers            *int64
	CreatedDate          time.Time
	TotalLikes           int64
	TotalComments        int64
	TotalViews           int64
	AvgEngagementRate    float64
	BrokenOrDeletedCount int
}

// TopProfile 互动率最高的账号桶
type TopProfile struct {
	EntityID          uint64
	Username          string
	Fullname          string
	Platform          model.Platform
	AvgEngagementRate float64
}

// PlatformShare 平台维度的数量与百分比
type PlatformShare struct {
	Count      int
	Percentage float64
}

// ProfileRollupResult 全量账号聚合结果
type ProfileRollupResult struct {
	Buckets          []ProfileBucket
	Top              *TopProfile
	MostUsedPlatform *model.Platform
	TotalProfiles    int
	Onboarding       map[model.Platform]PlatformShare
}

// ComparisonRow 账号分析中单条链接的贡献明细
type ComparisonRow struct {
	URLID          uint64
	URL            string
	Platform       model.Platform
	EngagementRate float64
}

// EntityAnalytics 单账号聚合结果
type EntityAnalytics struct {
	AvgEngagementRate float64
	TotalViews        int64
	TotalComments     int64
	TotalLikes        int64
	Comparison        []ComparisonRow
}

// URLRow 链接清单/汇总使用的展开行，一条测量记录对应一行
type URLRow struct {
	URLID             uint64
	URL               string
	Platform          model.Platform
	EngagementRate    float64
	DateUploaded      time.Time
	DateAnalyzed      time.Time
	IsFetched         bool
	IsBrokenOrDeleted bool
}

// URLSummary 全量链接平台分布汇总
type URLSummary struct {
	TotalURLs       int
	PlatformPercent map[model.Platform]float64
	Top             *URLRow
}
