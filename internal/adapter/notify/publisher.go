package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/simaogato/marketfolio-backend/internal/domain"
)

// Event types published to an account's channel
const (
	EventNotification = "notification"
	EventConfetti     = "confetti"
)

// Event is the payload consumed by the front-end
type Event struct {
	Type      string    `json:"type"`
	AccountID uuid.UUID `json:"accountId"`
	Message   string    `json:"message,omitempty"`
	Intensity int       `json:"intensity,omitempty"`
	SentAt    time.Time `json:"sentAt"`
}

// Channel returns the pub/sub channel of an account
func Channel(accountID uuid.UUID) string {
	return "market:events:" + accountID.String()
}

// RedisPublisher publishes notifications and visual effects on Redis pub/sub.
// Publishing is fire-and-forget: failures are logged, never returned.
type RedisPublisher struct {
	client *redis.Client
}

var (
	_ domain.Notifier      = (*RedisPublisher)(nil)
	_ domain.EffectTrigger = (*RedisPublisher)(nil)
)

// NewRedisPublisher creates a publisher on the given client
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

// Notify publishes a user notification
func (p *RedisPublisher) Notify(ctx context.Context, accountID uuid.UUID, message string) {
	p.publish(ctx, Event{Type: EventNotification, AccountID: accountID, Message: message})
}

// Celebrate publishes a confetti effect
func (p *RedisPublisher) Celebrate(ctx context.Context, accountID uuid.UUID, intensity int) {
	p.publish(ctx, Event{Type: EventConfetti, AccountID: accountID, Intensity: intensity})
}

func (p *RedisPublisher) publish(ctx context.Context, event Event) {
	event.SentAt = time.Now().UTC()
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("notify: encode %s event: %v", event.Type, err)
		return
	}

	if err := p.client.Publish(ctx, Channel(event.AccountID), payload).Err(); err != nil {
		log.Printf("notify: publish %s event for %s: %v", event.Type, event.AccountID, err)
	}
}

// LogPublisher writes notifications and effects to the process log.
// Used when no Redis is configured.
type LogPublisher struct {
	logger *log.Logger
}

var (
	_ domain.Notifier      = (*LogPublisher)(nil)
	_ domain.EffectTrigger = (*LogPublisher)(nil)
)

// NewLogPublisher creates a publisher writing to logger, or the standard logger if nil
func NewLogPublisher(logger *log.Logger) *LogPublisher {
	if logger == nil {
		logger = log.Default()
	}
	return &LogPublisher{logger: logger}
}

// Notify logs a user notification
func (p *LogPublisher) Notify(ctx context.Context, accountID uuid.UUID, message string) {
	p.logger.Printf("notification for %s: %s", accountID, message)
}

// Celebrate logs a confetti effect
func (p *LogPublisher) Celebrate(ctx context.Context, accountID uuid.UUID, intensity int) {
	p.logger.Printf("confetti for %s (intensity %d)", accountID, intensity)
}
