package cron

import (
	"Reachboard/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine         *cron.Cron
	redispatchSpec string
	redispatchJob  *job.RedispatchJob
}

func NewCronManager(redispatchSpec string, redispatchJob *job.RedispatchJob) *Manager {
	if redispatchSpec == "" {
		redispatchSpec = "@daily"
	}
	return &Manager{
		engine:         cron.New(cron.WithSeconds()),
		redispatchSpec: redispatchSpec,
		redispatchJob:  redispatchJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.redispatchSpec, s.redispatchJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
