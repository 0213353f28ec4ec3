package consts

const (
	ProfileMetricsKey = "profile:metrics:"
	URLSummaryKey     = "url:summary:all"
)
