package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardStream = "dynasty.leaderboards"

// RedisStreamPublisher publishes recompute events to Redis streams
type RedisStreamPublisher struct {
	client *redis.Client
}

// NewRedisStreamPublisher creates a publisher on an existing client
func NewRedisStreamPublisher(client *redis.Client) *RedisStreamPublisher {
	return &RedisStreamPublisher{
		client: client,
	}
}

// LeaderboardUpdate is the payload published after a recompute
type LeaderboardUpdate struct {
	DynastyID string `json:"dynasty_id"`
	Mode      string `json:"mode"`
	Boards    int    `json:"boards"`
}

// PublishLeaderboardUpdate announces that a dynasty's leaderboards changed
func (rsp *RedisStreamPublisher) PublishLeaderboardUpdate(ctx context.Context, update LeaderboardUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return err
	}

	return rsp.client.XAdd(ctx, &redis.XAddArgs{
		Stream: leaderboardStream,
		MaxLen: 1000,
		Approx: true,
		Values: map[string]interface{}{
			"data":      string(data),
			"timestamp": time.Now().Unix(),
		},
	}).Err()
}
