package notify

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type relayEnvelope struct {
	Origin string `json:"origin"`
	Event  Event  `json:"event"`
}

// RedisRelay shares events between API instances. Broadcast publishes a local
// event on the pub/sub channel; Run feeds events published by other
// instances into the local sink.
type RedisRelay struct {
	client  *redis.Client
	channel string
	origin  string
	local   Broadcaster
}

func NewRedisRelay(client *redis.Client, channel string, local Broadcaster) *RedisRelay {
	return &RedisRelay{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		local:   local,
	}
}

func (r *RedisRelay) Name() string { return "redis" }

func (r *RedisRelay) Broadcast(ctx context.Context, e Event) error {
	data, err := json.Marshal(relayEnvelope{Origin: r.origin, Event: e})
	if err != nil {
		return err
	}
	return r.client.Publish(ctx, r.channel, data).Err()
}

// Run blocks until ctx is cancelled.
func (r *RedisRelay) Run(ctx context.Context) error {
	sub := r.client.Subscribe(ctx, r.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	messages := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			r.handle(ctx, msg.Payload)
		}
	}
}

func (r *RedisRelay) handle(ctx context.Context, payload string) {
	var env relayEnvelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		log.Warn().Err(err).Msg("redis relay: bad payload")
		return
	}
	if env.Origin == r.origin {
		return
	}
	if err := r.local.Broadcast(ctx, env.Event); err != nil {
		log.Error().Err(err).Str("channel", string(env.Event.Channel)).Msg("redis relay: local delivery failed")
	}
}
