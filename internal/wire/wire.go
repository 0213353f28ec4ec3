package wire

import (
	"Reachboard/internal/api"
	"Reachboard/internal/api/config"
	"Reachboard/internal/api/handler"
	"Reachboard/internal/job"
	"Reachboard/internal/pkg/analytics"
	"Reachboard/internal/pkg/cron"
	"Reachboard/internal/pkg/kafka"
	"Reachboard/internal/repository"
	"Reachboard/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router   *gin.Engine
	DB       *gorm.DB
	Producer *kafka.Producer
	CronMgr  *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	entityRepo := repository.NewEntityRepository(db)
	urlRepo := repository.NewURLRepository(db)

	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}

	policy := analytics.ParsePolicy(cfg.Analytics.Policy)
	cacheTTL := time.Duration(cfg.Cache.TTLMinutes) * time.Minute

	profileService := service.NewProfileService(entityRepo, policy, cacheTTL)
	urlService := service.NewURLService(urlRepo, producer, cacheTTL)

	handlers := &api.HandlersGroup{
		ProfileHandler: handler.NewProfileHandler(profileService),
		URLHandler:     handler.NewURLHandler(urlService),
	}

	router := api.SetupRouter(handlers)

	redispatchJob := job.NewRedispatchJob(urlService)
	cronMgr := cron.NewCronManager(cfg.Cron.RedispatchSpec, redispatchJob)

	return &ApplicationContainer{
		Router:   router,
		DB:       db,
		Producer: producer,
		CronMgr:  cronMgr,
	}, nil
}
