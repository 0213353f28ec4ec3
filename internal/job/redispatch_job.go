package job

import (
	"Reachboard/internal/pkg/logger"
	"Reachboard/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// RedispatchJob 周期性重新派发存在未抓取测量记录的链接，
// 兜底丢失或处理失败的分析任务
type RedispatchJob struct {
	urlSvc service.URLService
}

func NewRedispatchJob(urlSvc service.URLService) *RedispatchJob {
	return &RedispatchJob{
		urlSvc: urlSvc,
	}
}

func (s *RedispatchJob) Run() {
	traceID := "job-redispatch-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	count, err := s.urlSvc.RedispatchUnfetched(ctx)
	if err != nil {
		log.ErrorContext(ctx, "redispatch unfetched urls error", "err", err)
		return
	}

	log.InfoContext(ctx, "redispatch unfetched urls success", "count", count)
}
