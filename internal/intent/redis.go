package intent

import (
	"context"
	"fmt"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const DefaultChannel = "aiexplorer:intents"

// RedisRecorder publishes intents on a pub/sub channel. Nothing is stored:
// with no subscriber the message is dropped.
type RedisRecorder struct {
	client  *redis.Client
	channel string
	log     *LogRecorder
}

// NewRedisRecorder connects to address and verifies the connection with a PING.
func NewRedisRecorder(ctx context.Context, address, channel string) (*RedisRecorder, error) {
	if channel == "" {
		channel = DefaultChannel
	}
	client := redis.NewClient(&redis.Options{Addr: address})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", address, err)
	}
	slog.Info("intent recorder connected to redis", "address", address, "channel", channel)

	return &RedisRecorder{
		client:  client,
		channel: channel,
		log:     NewLogRecorder(nil),
	}, nil
}

func (r *RedisRecorder) Record(ctx context.Context, intent Intent) error {
	_ = r.log.Record(ctx, intent)

	payload, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to encode intent: %w", err)
	}
	receivers, err := r.client.Publish(ctx, r.channel, payload).Result()
	if err != nil {
		return fmt.Errorf("failed to publish intent: %w", err)
	}
	slog.Debug("intent published", "channel", r.channel, "receivers", receivers)
	return nil
}

func (r *RedisRecorder) Close() error {
	return r.client.Close()
}
