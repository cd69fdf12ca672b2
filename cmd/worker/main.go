package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/interview-tracker/adapters/event"
	"github.com/khoahotran/interview-tracker/adapters/persistence"
	"github.com/khoahotran/interview-tracker/internal/application/service"
	revalidateUC "github.com/khoahotran/interview-tracker/internal/application/usecase/revalidate"
	"github.com/khoahotran/interview-tracker/internal/config"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env, "interview-tracker-worker")
	defer appLogger.Sync()
	appLogger.Info("Starting page revalidation worker...")

	// Redis page cache
	redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	revalidateUseCase := revalidateUC.NewRevalidatePagesUseCase(persistence.NewRedisPageCache(redisClient, appLogger), appLogger)

	// Kafka Consumer
	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     cfg.Kafka.Brokers,
		GroupID:     cfg.Kafka.GroupID,
		GroupTopics: event.Topics,
		MinBytes:    10e3,
		MaxBytes:    10e6,
	})
	defer consumer.Close()

	appLogger.Info("Worker listening", zap.Strings("topics", event.Topics))

	for {
		msg, err := consumer.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				appLogger.Info("Worker stopped")
				return
			}
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var evt service.ChangeEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Warn("Skipping malformed event", zap.String("topic", msg.Topic), zap.Error(err))
			commitMessage(appLogger, consumer, msg)
			continue
		}

		if err := revalidateUseCase.Execute(ctx, evt); err != nil {
			appLogger.Error("Failed to revalidate pages", err,
				zap.String("resource_id", evt.ResourceID.String()), zap.Strings("pages", evt.Pages))
			continue
		}

		commitMessage(appLogger, consumer, msg)
	}
}

func commitMessage(log logger.Logger, consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("Failed to commit message", err)
	}
}
