package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaSinkKeysByChannel(t *testing.T) {
	w := &fakeWriter{}
	sink := &KafkaSink{writer: w}

	e := NewEvent(Orders)
	require.NoError(t, sink.Broadcast(context.Background(), e))
	require.Len(t, w.msgs, 1)
	assert.Equal(t, "WS_ORDERS", string(w.msgs[0].Key))

	var got Event
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &got))
	assert.Equal(t, e.ID, got.ID)

	w.err = errors.New("broker down")
	assert.Error(t, sink.Broadcast(context.Background(), e))
}

func TestSlackAlerterPostsMessage(t *testing.T) {
	var form map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		form = r.PostForm
		assert.Equal(t, "/chat.postMessage", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.0"}`))
	}))
	defer srv.Close()

	alerter := NewSlackAlerter("xoxb-test", "#alerts", slack.OptionAPIURL(srv.URL+"/"))
	require.NoError(t, alerter.Alert(context.Background(), "createOrder", errors.New("db gone")))

	assert.Equal(t, "#alerts", form["channel"][0])
	assert.Equal(t, "[createOrder] db gone", form["text"][0])
}

func TestSlackAlerterReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":false,"error":"channel_not_found"}`))
	}))
	defer srv.Close()

	alerter := NewSlackAlerter("xoxb-test", "#nope", slack.OptionAPIURL(srv.URL+"/"))
	assert.Error(t, alerter.Alert(context.Background(), "op", errors.New("x")))
}

func TestRedisRelaySkipsOwnEvents(t *testing.T) {
	local := &recordingSink{}
	relay := NewRedisRelay(nil, "armory:test", local)

	own, _ := json.Marshal(relayEnvelope{Origin: relay.origin, Event: NewEvent(Carts)})
	remote, _ := json.Marshal(relayEnvelope{Origin: "other", Event: NewEvent(Products)})

	relay.handle(context.Background(), string(own))
	relay.handle(context.Background(), "not json")
	relay.handle(context.Background(), string(remote))

	assert.Equal(t, []Channel{Products}, local.channels())
}

func TestRedisRelayRoundTrip(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	channel := "armory:test:" + NewEvent(Carts).ID.String()
	received := &recordingSink{}
	subscriber := NewRedisRelay(client, channel, received)
	publisher := NewRedisRelay(client, channel, &recordingSink{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = subscriber.Run(ctx) }()

	require.Eventually(t, func() bool {
		_ = publisher.Broadcast(ctx, NewEvent(Orders))
		return len(received.channels()) > 0
	}, 3*time.Second, 100*time.Millisecond)
	assert.Equal(t, Orders, received.channels()[0])
}
