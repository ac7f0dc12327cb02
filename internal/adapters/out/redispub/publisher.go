// Package redispub publishes notifications over Redis pub/sub channels.
// Captain assignment offers and position broadcasts go out through here;
// subscribers are dashboard and captain app gateways.
package redispub

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisEventPublisher implements EventPublisher on top of a Redis client.
type RedisEventPublisher struct {
	client *redis.Client
}

// NewRedisEventPublisher creates a publisher using the given client.
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{client: client}
}

// Publish marshals the payload to JSON and publishes it on the topic.
// Delivery is fire and forget; a topic with no subscribers is not an error.
func (p *RedisEventPublisher) Publish(ctx context.Context, topic string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, topic, raw).Err()
}
