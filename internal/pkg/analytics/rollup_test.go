package analytics

import (
	"Reachboard/internal/model"
	"testing"
)

func postURL(id uint64, ms ...Measurement) URLRecord {
	return URLRecord{ID: id, Type: model.URLTypePost, Measurements: ms}
}

func TestProfileRollupLatestPolicy(t *testing.T) {
	entities := []EntityRecord{{
		ID:       1,
		Username: "alice",
		Platform: model.PlatformFacebook,
		URLs: []URLRecord{postURL(10,
			Measurement{Likes: 5, Comments: 1, EngagementRate: 10, DateAnalyzed: day(1)},
			Measurement{Likes: 8, Comments: 2, EngagementRate: 30, DateAnalyzed: day(5)},
		)},
	}}

	res := ProfileRollup(entities, PolicyLatest)

	if len(res.Buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(res.Buckets))
	}
	b := res.Buckets[0]
	if b.AvgEngagementRate != 30 {
		t.Errorf("only the latest measurement should count, got avg %v", b.AvgEngagementRate)
	}
	if b.TotalLikes != 8 || b.TotalComments != 2 {
		t.Errorf("totals must come from the latest measurement, got likes=%d comments=%d", b.TotalLikes, b.TotalComments)
	}
}

func TestProfileRollupSumAllPolicy(t *testing.T) {
	entities := []EntityRecord{{
		ID:       1,
		Platform: model.PlatformFacebook,
		URLs: []URLRecord{postURL(10,
			Measurement{Likes: 5, EngagementRate: 10, DateAnalyzed: day(1)},
			Measurement{Likes: 8, EngagementRate: 30, DateAnalyzed: day(5)},
		)},
	}}

	res := ProfileRollup(entities, PolicySumAll)

	b := res.Buckets[0]
	if b.TotalLikes != 13 {
		t.Errorf("sum_all should accumulate likes, got %d", b.TotalLikes)
	}
	if b.AvgEngagementRate != 20 {
		t.Errorf("expected avg 20, got %v", b.AvgEngagementRate)
	}
}

func TestProfileRollupBlogGoesToWebsiteBucket(t *testing.T) {
	entities := []EntityRecord{{
		ID:       1,
		Platform: model.PlatformInstagram,
		URLs: []URLRecord{
			postURL(10, Measurement{EngagementRate: 4, DateAnalyzed: day(1)}),
			{ID: 11, Type: model.URLTypeWebPost, Measurements: []Measurement{
				{Kind: KindBlog, Views: 100, EngagementRate: 2, DateAnalyzed: day(2)},
			}},
		},
	}}

	res := ProfileRollup(entities, PolicyLatest)

	if len(res.Buckets) != 2 {
		t.Fatalf("expected separate INSTAGRAM and WEBSITE buckets, got %d", len(res.Buckets))
	}
	platforms := map[model.Platform]bool{}
	for _, b := range res.Buckets {
		platforms[b.Platform] = true
	}
	if !platforms[model.PlatformWebsite] {
		t.Error("blog measurements must land in the WEBSITE bucket")
	}
	if !platforms[model.PlatformInstagram] {
		t.Error("post measurements must stay on the entity platform")
	}
}

func TestProfileRollupTopPerformer(t *testing.T) {
	entities := []EntityRecord{
		{ID: 1, Username: "a", Platform: model.PlatformFacebook,
			URLs: []URLRecord{postURL(10, Measurement{EngagementRate: 5, DateAnalyzed: day(1)})}},
		{ID: 2, Username: "b", Platform: model.PlatformYoutube,
			URLs: []URLRecord{postURL(11, Measurement{EngagementRate: 9, DateAnalyzed: day(1)})}},
		{ID: 3, Username: "c", Platform: model.PlatformInstagram,
			URLs: []URLRecord{postURL(12, Measurement{EngagementRate: 9, DateAnalyzed: day(1)})}},
	}

	res := ProfileRollup(entities, PolicyLatest)

	if res.Top == nil {
		t.Fatal("expected a top performer")
	}
	if res.Top.EntityID != 2 {
		t.Errorf("tie on rate must keep the earlier bucket, got entity %d", res.Top.EntityID)
	}
}

func TestProfileRollupAllZeroRatesStillHasTop(t *testing.T) {
	entities := []EntityRecord{{
		ID: 1, Username: "a", Platform: model.PlatformFacebook,
		URLs: []URLRecord{postURL(10, Measurement{EngagementRate: 0, DateAnalyzed: day(1)})},
	}}

	res := ProfileRollup(entities, PolicyLatest)

	if res.Top == nil {
		t.Fatal("a zero-rate bucket still beats no bucket at all")
	}
	if res.Top.AvgEngagementRate != 0 {
		t.Errorf("expected top rate 0, got %v", res.Top.AvgEngagementRate)
	}
}

func TestProfileRollupEmpty(t *testing.T) {
	res := ProfileRollup(nil, PolicyLatest)

	if res.Top != nil {
		t.Error("no entities means no top performer")
	}
	if res.MostUsedPlatform != nil {
		t.Error("no buckets means no most used platform")
	}
	if res.TotalProfiles != 0 {
		t.Errorf("expected 0 profiles, got %d", res.TotalProfiles)
	}
	if len(res.Onboarding) != len(model.AllPlatforms) {
		t.Fatalf("onboarding must always cover all platforms, got %d", len(res.Onboarding))
	}
	for plat, share := range res.Onboarding {
		if share.Count != 0 || share.Percentage != 0 {
			t.Errorf("empty dataset should report zero share for %s", plat)
		}
	}
}

func TestProfileRollupOnboarding(t *testing.T) {
	entities := []EntityRecord{
		{ID: 1, Platform: model.PlatformFacebook},
		{ID: 2, Platform: model.PlatformFacebook},
		{ID: 3, Platform: model.PlatformYoutube},
		{ID: 4, Platform: model.PlatformInstagram},
	}

	res := ProfileRollup(entities, PolicyLatest)

	if res.TotalProfiles != 4 {
		t.Fatalf("expected 4 profiles, got %d", res.TotalProfiles)
	}
	if got := res.Onboarding[model.PlatformFacebook].Percentage; got != 50 {
		t.Errorf("expected FACEBOOK 50%%, got %v", got)
	}
	if got := res.Onboarding[model.PlatformYoutube].Percentage; got != 25 {
		t.Errorf("expected YOUTUBE 25%%, got %v", got)
	}
	if got := res.Onboarding[model.PlatformWebsite].Percentage; got != 0 {
		t.Errorf("expected WEBSITE 0%%, got %v", got)
	}
}

func TestProfileRollupCountsBrokenLinks(t *testing.T) {
	entities := []EntityRecord{{
		ID: 1, Platform: model.PlatformFacebook,
		URLs: []URLRecord{
			postURL(10, Measurement{EngagementRate: 1, DateAnalyzed: day(1), IsBrokenOrDeleted: true}),
			postURL(11, Measurement{EngagementRate: 2, DateAnalyzed: day(1)}),
		},
	}}

	res := ProfileRollup(entities, PolicyLatest)

	if res.Buckets[0].BrokenOrDeletedCount != 1 {
		t.Errorf("expected 1 broken link, got %d", res.Buckets[0].BrokenOrDeletedCount)
	}
}

func TestAnalyzeEntity(t *testing.T) {
	entity := EntityRecord{
		ID: 1, Platform: model.PlatformYoutube,
		URLs: []URLRecord{
			{ID: 10, URL: "https://youtube.com/watch?v=a", Type: model.URLTypePost, Measurements: []Measurement{
				{Likes: 10, Comments: 2, Views: 100, EngagementRate: 4, DateAnalyzed: day(1)},
			}},
			{ID: 11, URL: "https://example.com/post", Type: model.URLTypeWebPost, Measurements: []Measurement{
				{Kind: KindBlog, Views: 50, EngagementRate: 2, DateAnalyzed: day(2)},
			}},
		},
	}

	res := AnalyzeEntity(entity, PolicyLatest)

	if res.TotalLikes != 10 || res.TotalComments != 2 {
		t.Errorf("unexpected totals: likes=%d comments=%d", res.TotalLikes, res.TotalComments)
	}
	if res.TotalViews != 150 {
		t.Errorf("blog traffic must count towards views, got %d", res.TotalViews)
	}
	if res.AvgEngagementRate != 3 {
		t.Errorf("expected avg 3, got %v", res.AvgEngagementRate)
	}
	if len(res.Comparison) != 2 {
		t.Fatalf("expected 2 comparison rows, got %d", len(res.Comparison))
	}
	if res.Comparison[1].Platform != model.PlatformWebsite {
		t.Errorf("blog row must be labelled WEBSITE, got %s", res.Comparison[1].Platform)
	}
}

func TestAnalyzeEntityEmpty(t *testing.T) {
	res := AnalyzeEntity(EntityRecord{ID: 1, Platform: model.PlatformFacebook}, PolicyLatest)

	if res.AvgEngagementRate != 0 {
		t.Errorf("expected avg 0 for empty entity, got %v", res.AvgEngagementRate)
	}
	if res.Comparison == nil {
		t.Error("comparison must be an empty slice, not nil")
	}
}
