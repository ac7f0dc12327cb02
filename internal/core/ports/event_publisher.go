package ports

import "context"

// EventPublisher pushes realtime notifications to interested parties over a
// fire-and-forget channel. Publish failures must not abort the business
// operation that triggered them; callers log and continue.
type EventPublisher interface {
	// Publish sends a JSON-serializable payload to the given topic.
	Publish(ctx context.Context, topic string, payload any) error
}
