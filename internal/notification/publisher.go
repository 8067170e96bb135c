package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	notificationQueueKey = "responder_notifications"
)

// Event carries everything the gateway needs to reach a responder about a
// fresh assignment: SMS and email go to the listed contact channels, the
// dashboard entry follows from the assignment row itself.
type Event struct {
	AssignmentID  uuid.UUID `json:"assignment_id"`
	ResponderName string    `json:"responder_name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	IncidentType  string    `json:"incident_type"`
	Location      string    `json:"location"`
	Description   string    `json:"description,omitempty"`
	Severity      string    `json:"severity,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher is the interface for queueing responder notifications
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher is a Publisher backed by a Redis list
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher creates a new RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish pushes the notification event onto the Redis delivery queue
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	// LPUSH pairs with the worker's BRPop to form a FIFO queue
	if err := p.redisClient.LPush(ctx, notificationQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification event to Redis: %w", err)
	}
	return nil
}
