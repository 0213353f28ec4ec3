package analytics

import (
	"testing"
)

func TestParseSortByFallback(t *testing.T) {
	if ParseSortBy("engagement_rate_asc", SortCreatedDesc) != SortEngagementRateAsc {
		t.Error("known value should parse")
	}
	if ParseSortBy("bogus", SortCreatedDesc) != SortCreatedDesc {
		t.Error("unknown value should fall back to the default")
	}
	if ParseSortBy("", SortEngagementRateDesc) != SortEngagementRateDesc {
		t.Error("empty value should fall back to the default")
	}
}

func TestSortURLRowsByRateDesc(t *testing.T) {
	rows := []URLRow{
		{URLID: 1, EngagementRate: 2, DateUploaded: day(3)},
		{URLID: 2, EngagementRate: 5, DateUploaded: day(1)},
		{URLID: 3, EngagementRate: 5, DateUploaded: day(2)},
	}

	SortURLRows(rows, SortEngagementRateDesc)

	if rows[0].URLID != 2 || rows[1].URLID != 3 || rows[2].URLID != 1 {
		t.Errorf("expected order 2,3,1 got %d,%d,%d", rows[0].URLID, rows[1].URLID, rows[2].URLID)
	}
}

func TestSortURLRowsByCreatedDesc(t *testing.T) {
	rows := []URLRow{
		{URLID: 1, DateUploaded: day(1)},
		{URLID: 2, DateUploaded: day(5)},
	}

	SortURLRows(rows, SortCreatedDesc)

	if rows[0].URLID != 2 {
		t.Errorf("expected newest first, got url %d", rows[0].URLID)
	}
}

func TestSortProfileBucketsByRateDesc(t *testing.T) {
	buckets := []ProfileBucket{
		{EntityID: 1, AvgEngagementRate: 3, CreatedDate: day(2)},
		{EntityID: 2, AvgEngagementRate: 9, CreatedDate: day(1)},
		{EntityID: 3, AvgEngagementRate: 9, CreatedDate: day(3)},
	}

	SortProfileBuckets(buckets, SortEngagementRateDesc)

	if buckets[0].EntityID != 2 || buckets[1].EntityID != 3 || buckets[2].EntityID != 1 {
		t.Errorf("expected order 2,3,1 got %d,%d,%d", buckets[0].EntityID, buckets[1].EntityID, buckets[2].EntityID)
	}
}

func TestSortProfileBucketsByCreatedDesc(t *testing.T) {
	buckets := []ProfileBucket{
		{EntityID: 1, CreatedDate: day(1)},
		{EntityID: 2, CreatedDate: day(9)},
	}

	SortProfileBuckets(buckets, SortCreatedDesc)

	if buckets[0].EntityID != 2 {
		t.Errorf("expected newest profile first, got entity %d", buckets[0].EntityID)
	}
}
