package service

import (
	"Reachboard/internal/model"
	"Reachboard/internal/pkg/analytics"
)

// toURLRecord 将链接及其测量记录转换为引擎输入
func toURLRecord(u *model.URL) analytics.URLRecord {
	rec := analytics.URLRecord{
		ID:          u.ID,
		URL:         u.URL,
		Type:        u.Type,
		CreatedDate: u.CreatedDate,
	}
	for i := range u.Posts {
		rec.Measurements = append(rec.Measurements, analytics.FromPost(&u.Posts[i]))
	}
	for i := range u.Blogs {
		rec.Measurements = append(rec.Measurements, analytics.FromBlog(&u.Blogs[i]))
	}
	return rec
}

// toEntityRecord 将账号及名下链接转换为引擎输入
func toEntityRecord(e *model.Entity) analytics.EntityRecord {
	rec := analytics.EntityRecord{
		ID:          e.ID,
		Username:    e.Username,
		Fullname:    e.Fullname,
		Followers:   e.Followers,
		Platform:    e.Platform,
		CreatedDate: e.CreatedDate,
	}
	for i := range e.URLs {
		rec.URLs = append(rec.URLs, toURLRecord(&e.URLs[i]))
	}
	return rec
}

// toURLRows 将链接展开为清单/汇总行，一条测量记录一行。
// 行的平台取所属账号声明的平台，没有账号的链接不参与统计
func toURLRows(urls []*model.URL) []analytics.URLRow {
	rows := make([]analytics.URLRow, 0, len(urls))
	for _, u := range urls {
		if u.Entity == nil {
			continue
		}
		base := analytics.URLRow{
			URLID:        u.ID,
			URL:          u.URL,
			Platform:     u.Entity.Platform,
			DateUploaded: u.CreatedDate,
		}
		if u.Type == model.URLTypePost {
			for i := range u.Posts {
				row := base
				row.EngagementRate = u.Posts[i].EngagementRate
				row.DateAnalyzed = u.Posts[i].DateAnalyzed
				row.IsFetched = u.Posts[i].IsFetched
				row.IsBrokenOrDeleted = u.Posts[i].IsBrokenOrDeleted
				rows = append(rows, row)
			}
		} else {
			for i := range u.Blogs {
				row := base
				row.EngagementRate = u.Blogs[i].EngagementRate
				row.DateAnalyzed = u.Blogs[i].DateAnalyzed
				row.IsFetched = u.Blogs[i].IsFetched
				row.IsBrokenOrDeleted = u.Blogs[i].IsBrokenOrDeleted
				rows = append(rows, row)
			}
		}
	}
	return rows
}
