package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/walterBrayan/BackTalentHub/adapters/event"
	"github.com/walterBrayan/BackTalentHub/adapters/persistence"
	"github.com/walterBrayan/BackTalentHub/internal/application/service"
	"github.com/walterBrayan/BackTalentHub/internal/config"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// The worker tails profile.events and keeps a per-user last-activity marker
// in Redis. The API itself never blocks on this; losing the worker only
// loses the activity feed.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting TalentHub profile-events worker...")

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "profile-activity-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer reader.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicProfileEvents))

	ctx := context.Background()
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("failed to read message from Kafka", err)
			continue
		}

		var evt service.ProfileEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Error("failed to unmarshal profile event, skipping", err,
				zap.String("key", string(msg.Key)))
			continue
		}

		key := "profile:last_activity:" + evt.UserID.String()
		if err := redisClient.Set(ctx, key, evt.OccurredAt.Format(time.RFC3339), 0).Err(); err != nil {
			appLogger.Error("failed to record profile activity", err,
				zap.String("user_id", evt.UserID.String()))
			continue
		}

		appLogger.Info("profile event processed",
			zap.String("type", evt.Type),
			zap.String("collection", evt.Collection),
			zap.String("user_id", evt.UserID.String()))
	}
}
