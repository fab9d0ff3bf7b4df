package handler

import (
	"context"
	"encoding/json"

	"github.com/bookburst/bookburst-service/internal/model"
	"github.com/bookburst/bookburst-service/pkg/kafka"
	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

type rescan func(ctx context.Context, bookUid string) (model.Book, error)

type Consumer struct {
	rescanHandler rescan
	log           *zap.Logger
	ready         chan bool
}

func NewConsumer(rescan rescan, log *zap.Logger) *Consumer {
	return &Consumer{
		rescanHandler: rescan,
		log:           log.Named("consumer"),
		ready:         make(chan bool),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	// Mark the consumer as ready
	close(consumer.ready)
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var req kafka.RescanRequest
			if err := json.Unmarshal(message.Value, &req); err != nil {
				consumer.log.Error("", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if _, err := consumer.rescanHandler(context.Background(), req.BookUid); err != nil {
				consumer.log.Error("consumer.rescanHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
