package analytics

import (
	"Reachboard/internal/model"
)

// DeduplicateURLRows 按链接去重：同一链接保留互动率最高的一行，
// 比较键是互动率而非分析时间；并列保留先出现的一行
func DeduplicateURLRows(rows []URLRow) []URLRow {
	index := make(map[uint64]int, len(rows))
	out := make([]URLRow, 0, len(rows))

	for _, row := range rows {
		i, ok := index[row.URLID]
		if !ok {
			index[row.URLID] = len(out)
			out = append(out, row)
			continue
		}
		if row.EngagementRate > out[i].EngagementRate {
			out[i] = row
		}
	}
	return out
}

// SummarizeURLs 链接维度汇总：去重后统计总数、四个平台的百分比占比
// 与互动率最高的单条链接。空集合时占比全为 0，Top 为 nil
func SummarizeURLs(rows []URLRow) URLSummary {
	deduped := DeduplicateURLRows(rows)

	counter := make(map[model.Platform]int, len(model.AllPlatforms))
	summary := URLSummary{
		TotalURLs:       len(deduped),
		PlatformPercent: make(map[model.Platform]float64, len(model.AllPlatforms)),
	}

	for i := range deduped {
		counter[deduped[i].Platform]++
		if summary.Top == nil || deduped[i].EngagementRate > summary.Top.EngagementRate {
			top := deduped[i]
			summary.Top = &top
		}
	}

	for _, plat := range model.AllPlatforms {
		pct := 0.0
		if summary.TotalURLs > 0 {
			pct = round2(float64(counter[plat]) / float64(summary.TotalURLs) * 100)
		}
		summary.PlatformPercent[plat] = pct
	}

	return summary
}
