package kafka

import (
	"Reachboard/internal/api/config"
	"Reachboard/internal/model"
	"Reachboard/internal/pkg/consts"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// Notification 派发给下游分析 worker 的消息体
type Notification struct {
	URLID    uint64         `json:"url_id"`
	URL      string         `json:"url"`
	Platform model.Platform `json:"platform"`
	PostID   *uint64        `json:"post_id,omitempty"`
	WebID    *uint64        `json:"web_id,omitempty"`
}

// Producer 派发生产者。启动时构造一次并注入使用，进程退出时 Close
type Producer struct {
	producer sarama.SyncProducer
	topics   map[model.Platform]string
}

func NewProducer(cfg *config.Config) (*Producer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &Producer{
		producer: producer,
		topics: map[model.Platform]string{
			model.PlatformFacebook:  cfg.Kafka.Topics.Facebook,
			model.PlatformInstagram: cfg.Kafka.Topics.Instagram,
			model.PlatformYoutube:   cfg.Kafka.Topics.Youtube,
			model.PlatformWebsite:   cfg.Kafka.Topics.Website,
		},
	}, nil
}

// Dispatch 按平台分组派发，每批最多 DispatchBatchSize 条。
// 返回的错误表示没有任何消息成功入队；部分批次失败只记日志
func (p *Producer) Dispatch(ctx context.Context, items []Notification) error {
	groups := make(map[model.Platform][]Notification)
	for _, item := range items {
		if _, ok := p.topics[item.Platform]; !ok {
			continue
		}
		groups[item.Platform] = append(groups[item.Platform], item)
	}

	var firstErr error
	sent := 0

	for platform, group := range groups {
		topic := p.topics[platform]

		for start := 0; start < len(group); start += consts.DispatchBatchSize {
			end := start + consts.DispatchBatchSize
			if end > len(group) {
				end = len(group)
			}

			batch := make([]*sarama.ProducerMessage, 0, end-start)
			for _, item := range group[start:end] {
				body, err := json.Marshal(item)
				if err != nil {
					log.ErrorContext(ctx, "marshal dispatch message failed", "url_id", item.URLID, "err", err)
					continue
				}
				batch = append(batch, &sarama.ProducerMessage{
					Topic: topic,
					Value: sarama.ByteEncoder(body),
				})
			}
			if len(batch) == 0 {
				continue
			}

			if err := p.producer.SendMessages(batch); err != nil {
				log.ErrorContext(ctx, "dispatch batch failed", "topic", topic, "count", len(batch), "err", err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			sent += len(batch)
		}
	}

	if sent == 0 && firstErr != nil {
		return firstErr
	}
	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
