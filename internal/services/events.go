package services

import (
	"context"
	"log"
	"time"
)

// Routing keys for the events published on successful writes.
const (
	RoutingKeyUserCreated    = "user.created"
	RoutingKeyExerciseLogged = "exercise.logged"
)

// EventPublisher publishes domain events to a message broker.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// UserCreatedEvent is published after a user registers.
type UserCreatedEvent struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ExerciseLoggedEvent is published after an exercise is stored.
type ExerciseLoggedEvent struct {
	ExerciseID  string    `json:"exercise_id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Date        time.Time `json:"date"`
}

// publish sends an event if a publisher is configured. Failures are logged
// and never fail the request that produced the event.
func publish(ctx context.Context, p EventPublisher, routingKey string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
