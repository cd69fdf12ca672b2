package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

const (
	TopicInterviewEvents = "interview.events"
	TopicStandupEvents   = "standup.events"
)

// Topics lists every topic the revalidation worker consumes.
var Topics = []string{TopicInterviewEvents, TopicStandupEvents}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	InterviewEventsWriter messageWriter
	StandupEventsWriter   messageWriter
	logger                logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func newWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	log.Info("Initialize Kafka Producers successfully.")
	return &KafkaProducerClient{
		InterviewEventsWriter: newWriter(brokers, TopicInterviewEvents),
		StandupEventsWriter:   newWriter(brokers, TopicStandupEvents),
		logger:                log,
	}, nil
}

func publish(ctx context.Context, w messageWriter, evt service.ChangeEvent) error {
	value, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.Resource, err)
	}
	// keyed by owner so one user's events stay ordered on a partition
	msg := kafka.Message{Key: []byte(evt.OwnerID.String()), Value: value}
	if err := w.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write %s event: %w", evt.Resource, err)
	}
	return nil
}

func (c *KafkaProducerClient) PublishInterviewEvent(ctx context.Context, evt service.ChangeEvent) error {
	evt.Resource = "interview"
	return publish(ctx, c.InterviewEventsWriter, evt)
}

func (c *KafkaProducerClient) PublishStandupEvent(ctx context.Context, evt service.ChangeEvent) error {
	evt.Resource = "standup"
	return publish(ctx, c.StandupEventsWriter, evt)
}

func (c *KafkaProducerClient) Close() {
	if c.InterviewEventsWriter != nil {
		c.InterviewEventsWriter.Close()
	}
	if c.StandupEventsWriter != nil {
		c.StandupEventsWriter.Close()
	}
	c.logger.Info("Closed Kafka Producers")
}
