package ports

import "context"

// StatePublisher defines the contract for relaying state snapshots to outside consumers
type StatePublisher interface {
	Publish(ctx context.Context, payload []byte) error
	Ping(ctx context.Context) error
	Close() error
}
