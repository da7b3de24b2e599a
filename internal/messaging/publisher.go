package messaging

import (
	"context"

	"github.com/launchos/curve-engine/internal/domain"
)

// Publisher defines the interface for publishing curve events to the message broker
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishEvent publishes a curve event to the message broker
	PublishEvent(ctx context.Context, event *domain.CurveEvent) error
	// Close closes the connection
	Close()
}
