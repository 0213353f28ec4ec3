package consts

const (
	// PlatformFilterAll profile-metrics 接口的平台过滤通配值
	PlatformFilterAll = "all"

	// DispatchBatchSize 单次派发到队列的最大消息条数
	DispatchBatchSize = 10
)
