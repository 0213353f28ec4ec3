package analytics

import (
	"Reachboard/internal/model"
)

// bucketAcc 聚合中间态，平均值在收尾时才计算
type bucketAcc struct {
	bucket  ProfileBucket
	rateSum float64
	count   int
}

// ProfileRollup 全量账号聚合：按 (账号, 平台) 分桶，
// WEB_POST 测量一律归入 WEBSITE 桶，与账号声明的平台无关。
// 同时在一次遍历中完成最佳账号、平台众数与开户分布统计
func ProfileRollup(entities []EntityRecord, policy Policy) ProfileRollupResult {
	res := ProfileRollupResult{
		Onboarding: make(map[model.Platform]PlatformShare, len(model.AllPlatforms)),
	}

	highest := -1.0
	platformCounter := make(map[model.Platform]int)
	onboardCounter := make(map[model.Platform]int)

	for _, entity := range entities {
		onboardCounter[entity.Platform]++
		res.TotalProfiles++

		// 桶按首次出现顺序收尾，保证结果确定
		accs := make(map[model.Platform]*bucketAcc, 2)
		var order []model.Platform

		for _, u := range entity.URLs {
			for _, m := range contributions(u, policy) {
				plat := entity.Platform
				if m.Kind == KindBlog {
					plat = model.PlatformWebsite
				}

				acc, ok := accs[plat]
				if !ok {
					acc = &bucketAcc{bucket: ProfileBucket{
						EntityID:    entity.ID,
						Username:    entity.Username,
						Fullname:    entity.Fullname,
						Platform:    plat,
						Followers:   entity.Followers,
						CreatedDate: entity.CreatedDate,
					}}
					accs[plat] = acc
					order = append(order, plat)
				}

				acc.bucket.TotalLikes += m.Likes
				acc.bucket.TotalComments += m.Comments
				acc.bucket.TotalViews += m.Views
				acc.rateSum += m.EngagementRate
				acc.count++
				if m.IsBrokenOrDeleted {
					acc.bucket.BrokenOrDeletedCount++
				}
			}
		}

		for _, plat := range order {
			acc := accs[plat]

			avg := 0.0
			if acc.count > 0 {
				avg = round2(acc.rateSum / float64(acc.count))
			}
			acc.bucket.AvgEngagementRate = avg

			// 严格大于：并列保留先出现的桶
			if avg > highest {
				highest = avg
				res.Top = &TopProfile{
					EntityID:          acc.bucket.EntityID,
					Username:          acc.bucket.Username,
					Fullname:          acc.bucket.Fullname,
					Platform:          plat,
					AvgEngagementRate: avg,
				}
			}

			platformCounter[plat]++
			res.Buckets = append(res.Buckets, acc.bucket)
		}
	}

	res.MostUsedPlatform = mostUsed(platformCounter)

	for _, plat := range model.AllPlatforms {
		count := onboardCounter[plat]
		pct := 0.0
		if res.TotalProfiles > 0 {
			pct = round2(float64(count) / float64(res.TotalProfiles) * 100)
		}
		res.Onboarding[plat] = PlatformShare{Count: count, Percentage: pct}
	}

	return res
}

// mostUsed 桶数最多的平台，无桶时返回 nil，并列取 AllPlatforms 中靠前者
func mostUsed(counter map[model.Platform]int) *model.Platform {
	var best *model.Platform
	bestCount := 0
	for _, plat := range model.AllPlatforms {
		if c := counter[plat]; c > bestCount {
			p := plat
			best = &p
			bestCount = c
		}
	}
	return best
}

// AnalyzeEntity 单账号聚合：总量、平均互动率与逐链接对比明细。
// WEB_POST 贡献的流量计入 TotalViews，平台在明细中标记为 WEBSITE
func AnalyzeEntity(entity EntityRecord, policy Policy) EntityAnalytics {
	var res EntityAnalytics
	var rateSum float64
	var count int

	for _, u := range entity.URLs {
		for _, m := range contributions(u, policy) {
			plat := entity.Platform
			if m.Kind == KindBlog {
				plat = model.PlatformWebsite
			}

			res.TotalLikes += m.Likes
			res.TotalComments += m.Comments
			res.TotalViews += m.Views
			rateSum += m.EngagementRate
			count++

			res.Comparison = append(res.Comparison, ComparisonRow{
				URLID:          u.ID,
				URL:            u.URL,
				Platform:       plat,
				EngagementRate: m.EngagementRate,
			})
		}
	}

	if count > 0 {
		res.AvgEngagementRate = round2(rateSum / float64(count))
	}
	if res.Comparison == nil {
		res.Comparison = []ComparisonRow{}
	}
	return res
}
