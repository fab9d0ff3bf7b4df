package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

const (
	ActivityTopic = "bookburst.activity"
	RescanTopic   = "bookburst.rating-rescan"

	RescanConsumerGroup = "bookburst-rescan"
)

type Config struct {
	Addrs []string `yaml:"addrs" envconfig:"KAFKA_ADDRS" default:"localhost:9092"`
}

// ActivityEvent is published on ActivityTopic whenever a shelf entry or a
// review is written.
type ActivityEvent struct {
	Type     string    `json:"type"`
	Username string    `json:"username"`
	BookUid  string    `json:"bookUid"`
	At       time.Time `json:"at"`
}

const (
	ActivityShelfUpsert   = "shelf-upsert"
	ActivityReviewCreated = "review-created"
)

// RescanRequest asks the consumer to recompute a book's cached rating fields.
type RescanRequest struct {
	BookUid string `json:"bookUid"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config, group string) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest

	return sarama.NewConsumerGroup(cfg.Addrs, group, defaultCfg)
}

// Consume loops a consumer group over a single topic until the group is closed.
func Consume(consumer sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, topic string) {
	log := zap.L().Named("kafka")
	ctx := context.Background()
	for {
		if err := consumer.Consume(ctx, []string{topic}, handler); err != nil {
			if err == sarama.ErrClosedConsumerGroup {
				return
			}
			log.Error("consume", zap.String("topic", topic), zap.Error(err))
			time.Sleep(time.Second)
		}
	}
}
