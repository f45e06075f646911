package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisPublisher_PublishesEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	accountID := uuid.New()
	sub := client.Subscribe(ctx, Channel(accountID))
	defer sub.Close()
	_, err := sub.Receive(ctx) // subscription confirmation
	require.NoError(t, err)

	publisher := NewRedisPublisher(client)
	publisher.Celebrate(ctx, accountID, 2)
	publisher.Notify(ctx, accountID, "Investment created!")

	var events []Event
	for i := 0; i < 2; i++ {
		msg, err := sub.ReceiveMessage(ctx)
		require.NoError(t, err)
		var event Event
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &event))
		events = append(events, event)
	}

	assert.Equal(t, EventConfetti, events[0].Type)
	assert.Equal(t, 2, events[0].Intensity)
	assert.Equal(t, accountID, events[0].AccountID)
	assert.Equal(t, EventNotification, events[1].Type)
	assert.Equal(t, "Investment created!", events[1].Message)
	assert.False(t, events[1].SentAt.IsZero())
}

func TestRedisPublisher_FailureIsSwallowed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	publisher := NewRedisPublisher(client)

	assert.NotPanics(t, func() {
		publisher.Notify(context.Background(), uuid.New(), "lost")
	})
}

func TestLogPublisher(t *testing.T) {
	var buf bytes.Buffer
	publisher := NewLogPublisher(log.New(&buf, "", 0))
	accountID := uuid.New()

	publisher.Notify(context.Background(), accountID, "hello")
	publisher.Celebrate(context.Background(), accountID, 2)

	assert.Contains(t, buf.String(), "notification for "+accountID.String()+": hello")
	assert.Contains(t, buf.String(), "confetti for "+accountID.String()+" (intensity 2)")
}
