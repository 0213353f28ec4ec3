package util

import (
	"time"
)

// 历史数据的"上传日"按 IST(+05:30) 业务日解释
var istLocation = time.FixedZone("IST", 5*3600+30*60)

// DayWindowIST 将 YYYY-MM-DD 解释为 IST 日历日，
// 换算为 UTC 半开区间 [start, end) 用于过滤创建时间
func DayWindowIST(s string) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(time.DateOnly, s, istLocation)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return day.UTC(), day.AddDate(0, 0, 1).UTC(), nil
}

// FormatDateIST 按 IST 业务日输出 YYYY-MM-DD
func FormatDateIST(t time.Time) string {
	return t.In(istLocation).Format(time.DateOnly)
}
