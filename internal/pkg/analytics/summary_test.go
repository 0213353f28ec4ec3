package analytics

import (
	"Reachboard/internal/model"
	"testing"
)

func TestDeduplicateURLRowsKeepsHighestRate(t *testing.T) {
	rows := []URLRow{
		{URLID: 1, EngagementRate: 2, DateAnalyzed: day(1)},
		{URLID: 1, EngagementRate: 5, DateAnalyzed: day(2)},
		{URLID: 2, EngagementRate: 1, DateAnalyzed: day(1)},
	}

	out := DeduplicateURLRows(rows)

	if len(out) != 2 {
		t.Fatalf("expected 2 rows after dedup, got %d", len(out))
	}
	if out[0].URLID != 1 || out[0].EngagementRate != 5 {
		t.Errorf("expected url 1 kept with rate 5, got %+v", out[0])
	}
}

func TestDeduplicateURLRowsTieKeepsFirst(t *testing.T) {
	rows := []URLRow{
		{URLID: 1, EngagementRate: 3, DateAnalyzed: day(1)},
		{URLID: 1, EngagementRate: 3, DateAnalyzed: day(9)},
	}

	out := DeduplicateURLRows(rows)

	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}
	if !out[0].DateAnalyzed.Equal(day(1)) {
		t.Error("tie on rate must keep the first row")
	}
}

func TestSummarizeURLs(t *testing.T) {
	rows := []URLRow{
		{URLID: 1, URL: "https://facebook.com/p/1", Platform: model.PlatformFacebook, EngagementRate: 2},
		{URLID: 1, URL: "https://facebook.com/p/1", Platform: model.PlatformFacebook, EngagementRate: 7},
		{URLID: 2, URL: "https://youtube.com/watch?v=a", Platform: model.PlatformYoutube, EngagementRate: 3},
		{URLID: 3, URL: "https://example.com/a", Platform: model.PlatformWebsite, EngagementRate: 1},
	}

	summary := SummarizeURLs(rows)

	if summary.TotalURLs != 3 {
		t.Fatalf("duplicates must not inflate the total, got %d", summary.TotalURLs)
	}
	if got := summary.PlatformPercent[model.PlatformFacebook]; got != 33.33 {
		t.Errorf("expected FACEBOOK 33.33, got %v", got)
	}
	if got := summary.PlatformPercent[model.PlatformInstagram]; got != 0 {
		t.Errorf("expected INSTAGRAM 0, got %v", got)
	}
	if summary.Top == nil || summary.Top.URLID != 1 || summary.Top.EngagementRate != 7 {
		t.Errorf("expected url 1 with rate 7 as top performer, got %+v", summary.Top)
	}
}

func TestSummarizeURLsEmpty(t *testing.T) {
	summary := SummarizeURLs(nil)

	if summary.TotalURLs != 0 {
		t.Errorf("expected total 0, got %d", summary.TotalURLs)
	}
	if summary.Top != nil {
		t.Error("expected no top performer for empty input")
	}
	if len(summary.PlatformPercent) != len(model.AllPlatforms) {
		t.Fatalf("percentages must cover all platforms, got %d", len(summary.PlatformPercent))
	}
	for plat, pct := range summary.PlatformPercent {
		if pct != 0 {
			t.Errorf("expected 0%% for %s on empty input, got %v", plat, pct)
		}
	}
}
