package websocket

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dynastyhq/gridiron/internal/publisher"
)

const (
	leaderboardStream = "dynasty.leaderboards"
	consumerGroup     = "ws-push"
	batchSize         = 100
	blockDuration     = 1 * time.Second
)

// StreamConsumer tails the leaderboard update stream and forwards events to
// the hub for fan-out
type StreamConsumer struct {
	redis      *redis.Client
	hub        *Hub
	consumerID string
}

// NewStreamConsumer creates a new stream consumer
func NewStreamConsumer(redisClient *redis.Client, h *Hub, consumerID string) *StreamConsumer {
	return &StreamConsumer{
		redis:      redisClient,
		hub:        h,
		consumerID: consumerID,
	}
}

// Start consumes the stream until the context is cancelled
func (sc *StreamConsumer) Start(ctx context.Context) {
	log.Printf("Stream consumer started (stream: %s)", leaderboardStream)

	err := sc.redis.XGroupCreateMkStream(ctx, leaderboardStream, consumerGroup, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		log.Printf("creating consumer group failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
			streams, err := sc.redis.XReadGroup(ctx, &redis.XReadGroupArgs{
				Group:    consumerGroup,
				Consumer: sc.consumerID,
				Streams:  []string{leaderboardStream, ">"},
				Count:    batchSize,
				Block:    blockDuration,
			}).Result()

			if err != nil {
				if err == redis.Nil || ctx.Err() != nil {
					continue
				}
				log.Printf("stream read error: %v", err)
				time.Sleep(time.Second)
				continue
			}

			for _, stream := range streams {
				for _, msg := range stream.Messages {
					sc.processMessage(ctx, msg)
				}
			}
		}
	}
}

func (sc *StreamConsumer) processMessage(ctx context.Context, msg redis.XMessage) {
	defer sc.ack(ctx, msg.ID)

	dataStr, ok := msg.Values["data"].(string)
	if !ok {
		log.Printf("invalid stream message %s: %v", msg.ID, msg.Values)
		return
	}

	var update publisher.LeaderboardUpdate
	if err := json.Unmarshal([]byte(dataStr), &update); err != nil {
		log.Printf("unmarshaling stream message %s: %v", msg.ID, err)
		return
	}

	sc.hub.Broadcast(Event{
		Type:      EventTypeLeaderboardUpdate,
		DynastyID: update.DynastyID,
		Mode:      update.Mode,
		Timestamp: time.Now(),
	})
}

func (sc *StreamConsumer) ack(ctx context.Context, id string) {
	if err := sc.redis.XAck(ctx, leaderboardStream, consumerGroup, id).Err(); err != nil {
		log.Printf("acking stream message %s: %v", id, err)
	}
}
