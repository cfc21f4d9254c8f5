package pubsub

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/prepbuddy/prepbuddy/pkg/errors"
	"github.com/prepbuddy/prepbuddy/pkg/logger"
)

// Event is a broadcast record of an interview lifecycle change.
type Event struct {
	Type        string `json:"type"`
	InterviewID string `json:"interview_id"`
	Actor       string `json:"actor"`
	At          int64  `json:"at"`
}

const (
	EventRequested = "interview.requested"
	EventAccepted  = "interview.accepted"
	EventCompleted = "interview.completed"
	EventDeleted   = "interview.deleted"
)

func NewKafkaProducer(cfg Config, log logger.Logger) *KafkaProducer {
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		log: log.With("kafka_producer"),
	}
}

type KafkaProducer struct {
	writer *kafka.Writer
	log    logger.Logger
}

func (p *KafkaProducer) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WrapFail(err, "marshal event to json")
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.InterviewID),
		Value: data,
	})
	return errors.WrapFail(err, "write event message")
}

func (p *KafkaProducer) Close() error {
	return errors.WrapFail(p.writer.Close(), "close kafka writer")
}
