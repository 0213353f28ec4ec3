package analytics

import (
	"sort"
)

// SortBy 列表排序方式
type SortBy string

const (
	SortCreatedDesc        SortBy = "created_desc"
	SortEngagementRateDesc SortBy = "engagement_rate_desc"
	SortEngagementRateAsc  SortBy = "engagement_rate_asc"
)

// ParseSortBy 非法值回落到默认排序
func ParseSortBy(s string, def SortBy) SortBy {
	switch SortBy(s) {
	case SortCreatedDesc, SortEngagementRateDesc, SortEngagementRateAsc:
		return SortBy(s)
	}
	return def
}

// SortProfileBuckets 账号桶排序。created_desc 按创建时间倒序（零值时间最小），
// engagement_rate_desc 按平均互动率倒序，并列按创建时间升序保证稳定
func SortProfileBuckets(buckets []ProfileBucket, sortBy SortBy) {
	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if sortBy == SortEngagementRateDesc {
			if a.AvgEngagementRate != b.AvgEngagementRate {
				return a.AvgEngagementRate > b.AvgEngagementRate
			}
			return a.CreatedDate.Before(b.CreatedDate)
		}
		return a.CreatedDate.After(b.CreatedDate)
	})
}

// SortURLRows 链接行排序，互动率并列时统一按上传时间升序
func SortURLRows(rows []URLRow, sortBy SortBy) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch sortBy {
		case SortEngagementRateAsc:
			if a.EngagementRate != b.EngagementRate {
				return a.EngagementRate < b.EngagementRate
			}
		case SortCreatedDesc:
			return a.DateUploaded.After(b.DateUploaded)
		default: // engagement_rate_desc
			if a.EngagementRate != b.EngagementRate {
				return a.EngagementRate > b.EngagementRate
			}
		}
		return a.DateUploaded.Before(b.DateUploaded)
	})
}
