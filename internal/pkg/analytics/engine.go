package analytics

import (
	"math"
)

// SelectRecord 返回分析时间最新的一条测量记录。
// 零值时间视为未分析并跳过；时间相同保留先出现的一条；无有效记录返回 false
func SelectRecord(ms []Measurement) (Measurement, bool) {
	i, ok := SelectIndex(ms)
	if !ok {
		return Measurement{}, false
	}
	return ms[i], true
}

// SelectIndex SelectRecord 的下标版本，调用方需要回查原始记录时使用
func SelectIndex(ms []Measurement) (int, bool) {
	best := -1
	for i, m := range ms {
		if m.DateAnalyzed.IsZero() {
			continue
		}
		if best < 0 || m.DateAnalyzed.After(ms[best].DateAnalyzed) {
			best = i
		}
	}
	return best, best >= 0
}

// contributions 按聚合口径展开一条链接参与聚合的测量记录
func contributions(u URLRecord, policy Policy) []Measurement {
	if policy == PolicySumAll {
		return u.Measurements
	}
	if m, ok := SelectRecord(u.Measurements); ok {
		return []Measurement{m}
	}
	return nil
}

// round2 保留两位小数
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
